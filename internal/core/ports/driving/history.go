package driving

import (
	"context"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// HistoryService exposes the search history to external actors.
type HistoryService interface {
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
