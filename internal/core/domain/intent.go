package domain

// Intent is a discrete event consumed by the list state engine.
// The set of intents is closed; see the implementing types below.
type Intent interface {
	intent()
}

// SubmitSearch asks for a new fetch of the given term.
type SubmitSearch struct {
	Term string
}

// RemoveItem asks for the item with ObjectID to be dropped from the view.
type RemoveItem struct {
	ObjectID string
}

// SortBy selects a sort key.
type SortBy struct {
	Key SortKey
}

// FetchCompleted delivers the outcome of a previously started request.
type FetchCompleted struct {
	Result FetchResult
}

func (SubmitSearch) intent()   {}
func (RemoveItem) intent()     {}
func (SortBy) intent()         {}
func (FetchCompleted) intent() {}
