package driving

import (
	"context"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// ListBrowser is the list state engine exposed to rendering adapters.
// All mutation goes through Dispatch; blocking work goes through Run.
type ListBrowser interface {
	// Dispatch applies an intent. For SubmitSearch it returns the request
	// that must be executed with Run; for every other intent it returns nil.
	Dispatch(intent domain.Intent) *domain.FetchRequest

	// Run executes a request against the item source. It does not mutate
	// browser state and may be called off the event loop. The returned
	// intent must be passed back to Dispatch.
	Run(ctx context.Context, req domain.FetchRequest) domain.FetchCompleted

	// Fetch submits term, runs the request and commits the result.
	// It returns the fetch failure, if any.
	Fetch(ctx context.Context, term string) error

	// Snapshot returns the sorted collection and indicator state.
	Snapshot() domain.ViewState
}
