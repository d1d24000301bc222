package catalog

import (
	"cmp"
	"slices"
	"strings"

	"clipvault/internal/pkg/errs"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortViews     SortKey = "views"
	SortDuration  SortKey = "duration"
)

var ErrInvalidSortKey = errs.New("invalid sort key")

var SortKeys = []SortKey{SortNewest, SortPriceAsc, SortPriceDesc, SortViews, SortDuration}

func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortNewest, nil
	}
	k := SortKey(strings.ToLower(s))
	if !slices.Contains(SortKeys, k) {
		return "", ErrInvalidSortKey
	}
	return k, nil
}

func (k SortKey) String() string { return string(k) }

// SortOrder returns the permutation of entries for key. Equal keys keep their
// snapshot order, so every listing built from the same snapshot agrees.
func SortOrder(entries []Entry, key SortKey) []int {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}

	var compare func(a, b Entry) int
	switch key {
	case SortPriceAsc:
		compare = func(a, b Entry) int { return a.Price.Cmp(b.Price) }
	case SortPriceDesc:
		compare = func(a, b Entry) int { return b.Price.Cmp(a.Price) }
	case SortViews:
		compare = func(a, b Entry) int { return cmp.Compare(b.Views, a.Views) }
	case SortDuration:
		secs := make([]int, len(entries))
		for i, e := range entries {
			secs[i] = e.DurationSeconds()
		}
		slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(secs[b], secs[a]) })
		return order
	default:
		compare = func(a, b Entry) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}

	slices.SortStableFunc(order, func(a, b int) int { return compare(entries[a], entries[b]) })
	return order
}

// Matches is the free-text filter: case-insensitive substring over the title.
func Matches(e Entry, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), strings.ToLower(q))
}
