package services

import (
	"sort"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// SortItems returns a new slice holding items ordered by key.
// The input is never modified.
//
// TITLE and AUTHOR sort ascending with a stable, byte-wise comparison,
// so empty values come first. COMMENT and POINT sort ascending and then
// reverse the whole slice: the result is descending, and items with equal
// values appear in the reverse of their input order. NONE, and any key
// outside the enumerated set, returns the input order.
func SortItems(items []domain.Item, key domain.SortKey) []domain.Item {
	out := domain.CloneItems(items)

	switch key {
	case domain.SortTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case domain.SortAuthor:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Author < out[j].Author })
	case domain.SortComment:
		sort.SliceStable(out, func(i, j int) bool { return out[i].NumComments < out[j].NumComments })
		reverseItems(out)
	case domain.SortPoint:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Points < out[j].Points })
		reverseItems(out)
	case domain.SortNone:
	}

	return out
}

// SortItemsByState applies SortItems for the state's key and reverses
// the result when the user toggled the direction. Reversed is ignored
// for SortNone.
func SortItemsByState(items []domain.Item, state domain.SortState) []domain.Item {
	out := SortItems(items, state.Key)
	if state.Reversed && state.Key.Valid() && state.Key != domain.SortNone {
		reverseItems(out)
	}
	return out
}

// reverseItems reverses items in place.
func reverseItems(items []domain.Item) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
