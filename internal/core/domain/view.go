package domain

// ViewState is a read-only snapshot handed to the rendering layer.
type ViewState struct {
	// Items is the collection ordered by Sort.
	Items []Item

	// Fetch is the lifecycle state of the latest request.
	Fetch FetchState

	// Sort is the active sort state.
	Sort SortState
}

// Count returns the number of visible items.
func (v ViewState) Count() int {
	return len(v.Items)
}
