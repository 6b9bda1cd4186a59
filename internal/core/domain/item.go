package domain

// Item represents one ranked entry returned by an item source.
type Item struct {
	// Title is the headline of the entry.
	Title string `json:"title"`

	// URL is the link target. It is never validated.
	URL string `json:"url"`

	// Author is the submitter's name.
	Author string `json:"author"`

	// NumComments is the number of comments on the entry.
	NumComments int `json:"num_comments"`

	// Points is the relevance score. It may be negative.
	Points int `json:"points"`

	// ObjectID identifies the entry within a collection snapshot.
	ObjectID string `json:"objectID"`
}

// IndexOf returns the position of the first item with the given
// object ID, or -1 when no item matches.
func IndexOf(items []Item, objectID string) int {
	for i := range items {
		if items[i].ObjectID == objectID {
			return i
		}
	}
	return -1
}

// CloneItems returns a copy of items that shares no backing array.
// A nil input yields an empty, non-nil slice.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
