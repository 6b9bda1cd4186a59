package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driven"
)

// DefaultHistoryCapacity bounds how many records the store keeps.
const DefaultHistoryCapacity = 500

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Once full, the oldest record is dropped for each new one.
type HistoryStore struct {
	mu       sync.RWMutex
	records  []domain.SearchRecord
	capacity int
}

// NewHistoryStore creates a new in-memory history store.
// A non-positive capacity uses DefaultHistoryCapacity.
func NewHistoryStore(capacity int) *HistoryStore {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &HistoryStore{capacity: capacity}
}

// Record appends a search record.
func (s *HistoryStore) Record(_ context.Context, rec domain.SearchRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("%w: record without id", domain.ErrInvalidInput)
	}
	if rec.At.IsZero() {
		rec.At = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	if over := len(s.records) - s.capacity; over > 0 {
		s.records = append([]domain.SearchRecord(nil), s.records[over:]...)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *HistoryStore) Recent(_ context.Context, limit int) ([]domain.SearchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.records)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.SearchRecord, 0, n)
	for i := len(s.records) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.records[i])
	}
	return result, nil
}

// Clear removes all records.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}
