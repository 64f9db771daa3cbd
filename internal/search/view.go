package search

import (
	"sort"
	"strconv"
	"strings"

	"pincab/internal/domain"
)

// TableView holds the full table set and its filtered, sorted projection.
// Membership is a case-insensitive substring match against id or display
// name; ordering follows exactly one active sort key and direction. The view
// is recomputed fully on any change to the search term, sort, or underlying
// set, never patched incrementally.
type TableView struct {
	tables   []domain.Table
	search   string
	sort     domain.SortSpec
	filtered []domain.Table
}

// NewTableView creates an empty view with the default sort.
func NewTableView() *TableView {
	return &TableView{sort: domain.DefaultSort()}
}

// SetTables replaces the full table set and recomputes the projection.
func (v *TableView) SetTables(tables []domain.Table) {
	v.tables = tables
	v.Recompute()
}

// SetSearch updates the filter term and recomputes the projection.
func (v *TableView) SetSearch(text string) {
	v.search = text
	v.Recompute()
}

// SetSort updates the active sort and recomputes the projection.
func (v *TableView) SetSort(s domain.SortSpec) {
	v.sort = s
	v.Recompute()
}

// ToggleSort flips direction when key is already active, otherwise adopts key
// ascending. This is the one stateful transition a column-header click
// performs.
func (v *TableView) ToggleSort(key domain.SortKey) domain.SortSpec {
	v.sort = v.sort.Toggle(key)
	v.Recompute()
	return v.sort
}

// Sort returns the active sort.
func (v *TableView) Sort() domain.SortSpec {
	return v.sort
}

// Search returns the raw filter term.
func (v *TableView) Search() string {
	return v.search
}

// Total returns the size of the full table set.
func (v *TableView) Total() int {
	return len(v.tables)
}

// Filtered returns the current projection.
func (v *TableView) Filtered() []domain.Table {
	return v.filtered
}

// Recompute applies the filter, then the sort. The sort is stable: tables
// comparing equal under the active key keep their relative order from the
// original fetch sequence.
func (v *TableView) Recompute() []domain.Table {
	q := strings.ToLower(strings.TrimSpace(v.search))

	filtered := make([]domain.Table, 0, len(v.tables))
	for _, t := range v.tables {
		if q == "" ||
			strings.Contains(strings.ToLower(t.ID), q) ||
			strings.Contains(strings.ToLower(t.DisplayName), q) {
			filtered = append(filtered, t)
		}
	}

	dir := v.sort.Dir
	switch v.sort.Key {
	case domain.SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return int(dir)*compareNames(filtered[i], filtered[j]) < 0
		})
	case domain.SortByID:
		sort.SliceStable(filtered, func(i, j int) bool {
			return int(dir)*compareNumericIDs(filtered[i], filtered[j]) < 0
		})
	default:
		// Index order: ascending is the fetch order the slice already has;
		// descending reverses it.
		if dir == domain.SortDesc {
			for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
				filtered[i], filtered[j] = filtered[j], filtered[i]
			}
		}
	}

	v.filtered = filtered
	return filtered
}

// compareNames orders case-insensitively by display name.
func compareNames(a, b domain.Table) int {
	return strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
}

// compareNumericIDs orders by numeric id value. A non-numeric id compares
// equal to everything, so the stable sort leaves its relative order alone;
// ordering among non-numeric ids is deliberately unspecified.
func compareNumericIDs(a, b domain.Table) int {
	fa, errA := strconv.ParseFloat(a.ID, 64)
	fb, errB := strconv.ParseFloat(b.ID, 64)
	if errA != nil || errB != nil {
		return 0
	}
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	default:
		return 0
	}
}
