package services

import (
	"context"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driven"
	"github.com/custodia-labs/hitlist/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes recorded searches.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns up to limit records, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	return s.store.Recent(ctx, limit)
}

// Clear removes all records.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrHistoryUnavailable
	}
	return s.store.Clear(ctx)
}
