package search

import (
	"testing"

	"pincab/internal/domain"
)

func TestRankTables(t *testing.T) {
	tables := []domain.Table{
		{ID: "1", DisplayName: "Medieval Madness"},
		{ID: "2", DisplayName: "Monster Bash"},
		{ID: "3", DisplayName: "Attack from Mars"},
	}

	ranked := RankTables("medieval", tables)
	if len(ranked) == 0 {
		t.Fatal("no matches for exact word")
	}
	if ranked[0].Table.ID != "1" {
		t.Errorf("best match = %q", ranked[0].Table.DisplayName)
	}
	if len(ranked[0].Positions) == 0 {
		t.Error("no matched positions reported")
	}
}

func TestRankTablesSubsequence(t *testing.T) {
	tables := []domain.Table{
		{ID: "1", DisplayName: "Medieval Madness"},
		{ID: "2", DisplayName: "Monster Bash"},
	}

	// "mdvl" is not a substring of anything but is a subsequence of Medieval.
	ranked := RankTables("mdvl", tables)
	if len(ranked) == 0 {
		t.Fatal("subsequence did not match")
	}
	if ranked[0].Table.ID != "1" {
		t.Errorf("best match = %q", ranked[0].Table.DisplayName)
	}
}

func TestRankTablesEmptyInputs(t *testing.T) {
	if got := RankTables("", []domain.Table{{ID: "1"}}); got != nil {
		t.Errorf("empty query ranked %v", got)
	}
	if got := RankTables("x", nil); got != nil {
		t.Errorf("empty set ranked %v", got)
	}
	if got := RankTables("zzz", []domain.Table{{ID: "1", DisplayName: "Funhouse"}}); got != nil {
		t.Errorf("no-match query ranked %v", got)
	}
}
