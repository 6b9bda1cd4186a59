package domain

import "time"

// FetchStatus is the lifecycle position of the latest search request.
type FetchStatus int

const (
	// FetchIdle means no request has been started yet.
	FetchIdle FetchStatus = iota
	// FetchPending means the latest request has not completed.
	FetchPending
	// FetchResolved means the latest request succeeded.
	FetchResolved
	// FetchRejected means the latest request failed.
	FetchRejected
	// FetchSuperseded marks a history record whose result was discarded
	// because a newer request had started. The controller never holds it.
	FetchSuperseded
)

// String returns the lower-case name of the status.
func (s FetchStatus) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchPending:
		return "pending"
	case FetchResolved:
		return "resolved"
	case FetchRejected:
		return "rejected"
	case FetchSuperseded:
		return "superseded"
	default:
		return "unknown"
	}
}

// ParseFetchStatus converts the lower-case name back to a status.
// Unknown names yield FetchIdle.
func ParseFetchStatus(s string) FetchStatus {
	switch s {
	case "pending":
		return FetchPending
	case "resolved":
		return FetchResolved
	case "rejected":
		return FetchRejected
	case "superseded":
		return FetchSuperseded
	default:
		return FetchIdle
	}
}

// FetchState is the observable state of the fetch lifecycle.
type FetchState struct {
	// Status is the current lifecycle position.
	Status FetchStatus

	// Term is the search term of the latest request.
	Term string

	// Seq is the sequence number of the latest request. Zero before
	// the first request.
	Seq uint64

	// Err is the failure of the latest request. Only set when Status
	// is FetchRejected.
	Err error
}

// Loading reports whether a loading indicator should be shown.
func (s FetchState) Loading() bool {
	return s.Status == FetchPending
}

// Failed reports whether an error indicator should be shown.
func (s FetchState) Failed() bool {
	return s.Status == FetchRejected
}

// FetchRequest identifies one issued search request.
type FetchRequest struct {
	// Seq orders requests; a higher value supersedes a lower one.
	Seq uint64

	// Term is the trimmed search term.
	Term string

	// ID correlates log lines and history records for the request.
	ID string
}

// FetchResult is the outcome of running a FetchRequest.
type FetchResult struct {
	Request FetchRequest
	Items   []Item
	Err     error

	// Took is how long the request ran. Zero when not measured.
	Took time.Duration
}
