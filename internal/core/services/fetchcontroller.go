package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driven"
	"github.com/custodia-labs/hitlist/internal/logger"
)

// FetchController drives the request lifecycle and commits successful
// results into a ListStore.
//
// Only the most recently started request may commit. Completions for
// older requests are discarded, so a slow response can never overwrite
// the results of a newer search.
type FetchController struct {
	source driven.ItemSource
	store  *ListStore

	mu    sync.Mutex
	state domain.FetchState
}

// NewFetchController creates a controller writing into store.
func NewFetchController(source driven.ItemSource, store *ListStore) *FetchController {
	if store == nil {
		store = NewListStore()
	}
	return &FetchController{
		source: source,
		store:  store,
	}
}

// Start issues a new request for term and moves the state to pending.
// Any request still in flight is superseded but not cancelled.
func (c *FetchController) Start(term string) domain.FetchRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Seq++
	c.state.Status = domain.FetchPending
	c.state.Term = strings.TrimSpace(term)
	c.state.Err = nil

	req := domain.FetchRequest{
		Seq:  c.state.Seq,
		Term: c.state.Term,
		ID:   uuid.New().String(),
	}
	logger.Debug("fetch %d started: term=%q id=%s", req.Seq, req.Term, req.ID)
	return req
}

// Run executes req against the item source. It does not touch the
// controller state and is safe to call from any goroutine.
func (c *FetchController) Run(ctx context.Context, req domain.FetchRequest) domain.FetchResult {
	if c.source == nil {
		return domain.FetchResult{Request: req, Err: domain.ErrSourceUnavailable}
	}

	items, err := c.source.Search(ctx, req.Term)
	if err != nil {
		return domain.FetchResult{Request: req, Err: fmt.Errorf("fetch %q: %w", req.Term, err)}
	}
	if items == nil {
		items = []domain.Item{}
	}
	return domain.FetchResult{Request: req, Items: items}
}

// Complete commits result if it belongs to the latest request.
// It reports whether the result was applied. On failure the held
// collection is left untouched.
func (c *FetchController) Complete(result domain.FetchResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result.Request.Seq != c.state.Seq || c.state.Status != domain.FetchPending {
		logger.Debug("fetch %d discarded: latest is %d", result.Request.Seq, c.state.Seq)
		return false
	}

	if result.Err != nil {
		c.state.Status = domain.FetchRejected
		c.state.Err = result.Err
		logger.Warn("fetch %d rejected: %v", result.Request.Seq, result.Err)
		return true
	}

	c.store.Replace(result.Items)
	c.state.Status = domain.FetchResolved
	c.state.Err = nil
	logger.Debug("fetch %d resolved: %d items", result.Request.Seq, len(result.Items))
	return true
}

// State returns the current fetch state.
func (c *FetchController) State() domain.FetchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Store returns the list store the controller commits into.
func (c *FetchController) Store() *ListStore {
	return c.store
}
