package driven

import (
	"context"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// ItemSource fetches a collection of ranked items for a search term.
// Implementations compose the term into a request against a remote endpoint.
type ItemSource interface {
	// Search returns the items for term in arrival order.
	// Transport failures wrap domain.ErrTransport; payloads without a
	// hits list wrap domain.ErrMalformedResponse.
	Search(ctx context.Context, term string) ([]domain.Item, error)
}
