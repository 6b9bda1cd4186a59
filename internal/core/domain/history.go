package domain

import "time"

// SearchRecord is one entry in the search history.
// Every executed request is recorded when its completion is dispatched,
// including superseded ones.
type SearchRecord struct {
	// ID is the request ID (UUID).
	ID string

	// Term is the submitted search term.
	Term string

	// Status is FetchResolved, FetchRejected or FetchSuperseded.
	Status FetchStatus

	// Hits is the number of items the source returned. Zero on failure.
	Hits int

	// Error is the failure message, empty on success.
	Error string

	// Duration is how long the request took.
	Duration time.Duration

	// At is when the request completed.
	At time.Time
}

// Succeeded reports whether the recorded request resolved.
func (r SearchRecord) Succeeded() bool {
	return r.Status == FetchResolved
}

// Superseded reports whether the request's result was discarded.
func (r SearchRecord) Superseded() bool {
	return r.Status == FetchSuperseded
}
