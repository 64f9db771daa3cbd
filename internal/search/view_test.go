package search

import (
	"testing"

	"pincab/internal/domain"
)

func fixtureTables() []domain.Table {
	return []domain.Table{
		{ID: "3", DisplayName: "Medieval Madness"},
		{ID: "1", DisplayName: "Attack from Mars"},
		{ID: "2", DisplayName: "Theatre of Magic"},
	}
}

func ids(tables []domain.Table) []string {
	out := make([]string, len(tables))
	for i, t := range tables {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterSubstring(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty search keeps all", "", []string{"3", "1", "2"}},
		{"substring of name", "madness", []string{"3"}},
		{"case insensitive", "MAGIC", []string{"2"}},
		{"matches id", "1", []string{"1"}},
		{"whitespace padded term is trimmed", " magic ", []string{"2"}},
		{"whitespace only keeps all", "   ", []string{"3", "1", "2"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewTableView()
			v.SetTables(fixtureTables())
			v.SetSearch(tt.search)

			got := ids(v.Filtered())
			if !equalIDs(got, tt.want...) {
				t.Errorf("Filtered() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterMatchesPartialAcrossIDAndName(t *testing.T) {
	v := NewTableView()
	v.SetTables([]domain.Table{
		{ID: "42", DisplayName: "Whirlwind"},
		{ID: "421", DisplayName: "Funhouse"},
		{ID: "7", DisplayName: "wind tunnel 42"},
	})
	v.SetSearch("42")

	got := ids(v.Filtered())
	if !equalIDs(got, "42", "421", "7") {
		t.Errorf("Filtered() = %v", got)
	}
}

func TestSortByName(t *testing.T) {
	v := NewTableView()
	v.SetTables(fixtureTables())
	v.SetSort(domain.SortSpec{Key: domain.SortByName, Dir: domain.SortAsc})

	got := ids(v.Filtered())
	if !equalIDs(got, "1", "3", "2") {
		t.Errorf("name asc = %v", got)
	}

	v.SetSort(domain.SortSpec{Key: domain.SortByName, Dir: domain.SortDesc})
	got = ids(v.Filtered())
	if !equalIDs(got, "2", "3", "1") {
		t.Errorf("name desc = %v", got)
	}
}

func TestSortByNumericID(t *testing.T) {
	v := NewTableView()
	v.SetTables([]domain.Table{
		{ID: "10", DisplayName: "a"},
		{ID: "2", DisplayName: "b"},
		{ID: "100", DisplayName: "c"},
	})
	v.SetSort(domain.SortSpec{Key: domain.SortByID, Dir: domain.SortAsc})

	// Numeric, not lexicographic: 2 < 10 < 100.
	got := ids(v.Filtered())
	if !equalIDs(got, "2", "10", "100") {
		t.Errorf("id asc = %v", got)
	}

	v.SetSort(domain.SortSpec{Key: domain.SortByID, Dir: domain.SortDesc})
	got = ids(v.Filtered())
	if !equalIDs(got, "100", "10", "2") {
		t.Errorf("id desc = %v", got)
	}
}

func TestSortByIndexDescReverses(t *testing.T) {
	v := NewTableView()
	v.SetTables(fixtureTables())
	v.SetSort(domain.SortSpec{Key: domain.SortByIndex, Dir: domain.SortDesc})

	got := ids(v.Filtered())
	if !equalIDs(got, "2", "1", "3") {
		t.Errorf("index desc = %v", got)
	}
}

func TestSortStableForEqualKeys(t *testing.T) {
	v := NewTableView()
	v.SetTables([]domain.Table{
		{ID: "5", DisplayName: "Twin"},
		{ID: "6", DisplayName: "Twin"},
		{ID: "7", DisplayName: "Twin"},
	})
	v.SetSort(domain.SortSpec{Key: domain.SortByName, Dir: domain.SortAsc})

	// Equal names keep fetch order.
	got := ids(v.Filtered())
	if !equalIDs(got, "5", "6", "7") {
		t.Errorf("stable sort broke ties: %v", got)
	}
}

func TestNonNumericIDsKeepRelativeOrder(t *testing.T) {
	v := NewTableView()
	v.SetTables([]domain.Table{
		{ID: "beta", DisplayName: "b"},
		{ID: "alpha", DisplayName: "a"},
	})
	v.SetSort(domain.SortSpec{Key: domain.SortByID, Dir: domain.SortAsc})

	got := ids(v.Filtered())
	if !equalIDs(got, "beta", "alpha") {
		t.Errorf("non-numeric ids reordered: %v", got)
	}
}

func TestToggleSort(t *testing.T) {
	v := NewTableView()
	v.SetTables(fixtureTables())

	s := v.ToggleSort(domain.SortByName)
	if s.Key != domain.SortByName || s.Dir != domain.SortAsc {
		t.Fatalf("first toggle = %+v", s)
	}

	s = v.ToggleSort(domain.SortByName)
	if s.Key != domain.SortByName || s.Dir != domain.SortDesc {
		t.Fatalf("second toggle = %+v", s)
	}

	// Double toggle restores the original order.
	s = v.ToggleSort(domain.SortByName)
	if s.Dir != domain.SortAsc {
		t.Fatalf("third toggle = %+v", s)
	}
	got := ids(v.Filtered())
	if !equalIDs(got, "1", "3", "2") {
		t.Errorf("after double toggle = %v", got)
	}

	// Switching key adopts ascending regardless of previous direction.
	v.ToggleSort(domain.SortByName) // now desc
	s = v.ToggleSort(domain.SortByID)
	if s.Key != domain.SortByID || s.Dir != domain.SortAsc {
		t.Fatalf("key switch = %+v", s)
	}
}

func TestFilterThenSort(t *testing.T) {
	v := NewTableView()
	v.SetTables([]domain.Table{
		{ID: "9", DisplayName: "Star Trek"},
		{ID: "4", DisplayName: "Star Wars"},
		{ID: "5", DisplayName: "Indiana Jones"},
	})
	v.SetSearch("star")
	v.SetSort(domain.SortSpec{Key: domain.SortByID, Dir: domain.SortAsc})

	got := ids(v.Filtered())
	if !equalIDs(got, "4", "9") {
		t.Errorf("filter+sort = %v", got)
	}
	if v.Total() != 3 {
		t.Errorf("Total() = %d, want 3", v.Total())
	}
}
