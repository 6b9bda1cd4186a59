package driven

import (
	"context"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// HistoryStore persists executed searches.
type HistoryStore interface {
	// Record appends a search record.
	Record(ctx context.Context, rec domain.SearchRecord) error

	// Recent returns up to limit records, newest first.
	// A non-positive limit returns all records.
	Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
