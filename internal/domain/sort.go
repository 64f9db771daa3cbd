package domain

// SortKey selects which table attribute orders the list.
type SortKey string

const (
	SortByIndex SortKey = "index" // Original fetch order
	SortByName  SortKey = "name"  // Lexicographic by display name
	SortByID    SortKey = "id"    // Numeric by id
)

// ParseSortKey maps a stored string to a SortKey, false when unknown.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByIndex, SortByName, SortByID:
		return SortKey(s), true
	}
	return SortByIndex, false
}

// SortDir is +1 ascending, -1 descending.
type SortDir int

const (
	SortAsc  SortDir = 1
	SortDesc SortDir = -1
)

// SortSpec is the single active sort: one key, one direction.
type SortSpec struct {
	Key SortKey
	Dir SortDir
}

// DefaultSort is original fetch order, ascending.
func DefaultSort() SortSpec {
	return SortSpec{Key: SortByIndex, Dir: SortAsc}
}

// Toggle flips direction when key matches the active key, otherwise adopts
// key at ascending direction.
func (s SortSpec) Toggle(key SortKey) SortSpec {
	if s.Key == key {
		return SortSpec{Key: key, Dir: -s.Dir}
	}
	return SortSpec{Key: key, Dir: SortAsc}
}
