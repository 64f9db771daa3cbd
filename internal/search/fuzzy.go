package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"

	"pincab/internal/domain"
)

// RankedTable is one fuzzy match for the omnibar, with character positions
// for highlighting.
type RankedTable struct {
	Table     domain.Table
	Positions []int // Rune positions in DisplayName that matched
	Rank      int   // Lower is better
}

// tableSource implements sahilm/fuzzy.Source over pre-lowered display names.
type tableSource struct {
	lower []string
}

func (s tableSource) String(i int) string { return s.lower[i] }
func (s tableSource) Len() int            { return len(s.lower) }

// RankTables fuzzy-ranks tables by display name for the quick-jump omnibar.
// This is a looser companion to TableView's exact substring filter: word
// subsequences match, and results come back best-first.
func RankTables(query string, tables []domain.Table) []RankedTable {
	query = strings.TrimSpace(query)
	if query == "" || len(tables) == 0 {
		return nil
	}

	lower := make([]string, len(tables))
	for i, t := range tables {
		lower[i] = strings.ToLower(t.DisplayName)
	}

	// Prefilter to subsequence candidates, then let sahilm/fuzzy score and
	// report matched positions on the survivors.
	q := strings.ToLower(query)
	candidates := make([]int, 0, len(tables))
	for i, name := range lower {
		if fuzzy.MatchNormalizedFold(q, name) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	candNames := make([]string, len(candidates))
	for i, idx := range candidates {
		candNames[i] = lower[idx]
	}

	matches := sahilm.FindFrom(q, tableSource{lower: candNames})

	ranked := make([]RankedTable, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, RankedTable{
			Table:     tables[candidates[m.Index]],
			Positions: m.MatchedIndexes,
			Rank:      -m.Score, // sahilm scores higher-is-better
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rank < ranked[j].Rank })
	return ranked
}
