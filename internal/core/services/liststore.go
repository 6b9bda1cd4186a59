package services

import (
	"sync"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// ListStore holds the live collection shown to the user.
// It is the only owner of the collection; callers receive copies.
type ListStore struct {
	mu    sync.RWMutex
	items []domain.Item
}

// NewListStore creates an empty list store.
func NewListStore() *ListStore {
	return &ListStore{items: []domain.Item{}}
}

// Replace overwrites the held collection with a copy of items.
func (s *ListStore) Replace(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = domain.CloneItems(items)
}

// Remove drops the first item whose object ID matches.
// It reports whether an item was removed; an unknown ID is a no-op.
func (s *ListStore) Remove(objectID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := domain.IndexOf(s.items, objectID)
	if idx < 0 {
		return false
	}

	// Build a fresh slice so earlier snapshots keep their contents.
	next := make([]domain.Item, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
	return true
}

// Current returns a copy of the held collection in arrival order.
func (s *ListStore) Current() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneItems(s.items)
}

// Len returns the number of held items.
func (s *ListStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
