package domain

import (
	"fmt"
	"strings"
)

// SortKey selects the comparison and direction applied before display.
type SortKey int

const (
	// SortNone keeps arrival order.
	SortNone SortKey = iota
	// SortTitle orders ascending by title.
	SortTitle
	// SortAuthor orders ascending by author.
	SortAuthor
	// SortComment orders descending by comment count.
	SortComment
	// SortPoint orders descending by points.
	SortPoint
)

// SortKeys lists every valid sort key in display order.
func SortKeys() []SortKey {
	return []SortKey{SortNone, SortTitle, SortAuthor, SortComment, SortPoint}
}

// String returns the canonical upper-case name of the key.
func (k SortKey) String() string {
	switch k {
	case SortNone:
		return "NONE"
	case SortTitle:
		return "TITLE"
	case SortAuthor:
		return "AUTHOR"
	case SortComment:
		return "COMMENT"
	case SortPoint:
		return "POINT"
	default:
		return "UNKNOWN"
	}
}

// Label returns the column heading associated with the key.
func (k SortKey) Label() string {
	switch k {
	case SortNone:
		return "None"
	case SortTitle:
		return "Title"
	case SortAuthor:
		return "Author"
	case SortComment:
		return "Comments"
	case SortPoint:
		return "Points"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the enumerated keys.
func (k SortKey) Valid() bool {
	return k >= SortNone && k <= SortPoint
}

// Descending reports whether the key's base direction is descending.
func (k SortKey) Descending() bool {
	return k == SortComment || k == SortPoint
}

// ParseSortKey converts a key name into a SortKey.
// Matching is case-insensitive; only the five canonical names are accepted.
func ParseSortKey(s string) (SortKey, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return SortNone, nil
	}
	for _, k := range SortKeys() {
		if k.String() == name {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// SortState is the active sort key plus the user's direction toggle.
type SortState struct {
	// Key is the active sort key.
	Key SortKey

	// Reversed flips the key's base direction.
	Reversed bool
}

// Select returns the state after a "sort by key" intent.
// Choosing the active key again flips the direction; any other key
// starts in its base direction. SortNone has no direction and always
// restores arrival order.
func (s SortState) Select(key SortKey) SortState {
	if key == s.Key && key != SortNone {
		return SortState{Key: key, Reversed: !s.Reversed}
	}
	return SortState{Key: key}
}

// Ascending reports the effective direction of the state.
func (s SortState) Ascending() bool {
	return s.Key.Descending() == s.Reversed
}
