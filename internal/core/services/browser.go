package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driven"
	"github.com/custodia-labs/hitlist/internal/core/ports/driving"
	"github.com/custodia-labs/hitlist/internal/logger"
)

// Ensure Browser implements the interface.
var _ driving.ListBrowser = (*Browser)(nil)

// Browser is the single reducer of the list state engine. It consumes
// intents, owns the sort state and produces snapshots for rendering.
type Browser struct {
	fetch      *FetchController
	history    driven.HistoryStore
	stateStore driven.StateStore
	now        func() time.Time

	mu   sync.Mutex
	sort domain.SortState
}

// NewBrowser creates a browser around a fetch controller.
// The history store is optional (can be nil).
func NewBrowser(fetch *FetchController, history driven.HistoryStore) *Browser {
	if fetch == nil {
		fetch = NewFetchController(nil, nil)
	}
	return &Browser{
		fetch:   fetch,
		history: history,
		now:     time.Now,
	}
}

// SetStateStore sets the store used to remember the last term and sort
// state. The stored sort state becomes the initial one.
func (b *Browser) SetStateStore(store driven.StateStore) {
	b.stateStore = store
	if store == nil {
		return
	}
	if state := store.LastSort(); state.Key.Valid() {
		b.mu.Lock()
		b.sort = state
		b.mu.Unlock()
	}
}

// LastTerm returns the remembered search term, or "" when no state
// store is configured.
func (b *Browser) LastTerm() string {
	if b.stateStore == nil {
		return ""
	}
	return b.stateStore.LastTerm()
}

// Dispatch applies an intent.
func (b *Browser) Dispatch(intent domain.Intent) *domain.FetchRequest {
	switch in := intent.(type) {
	case domain.SubmitSearch:
		return b.submit(in.Term)

	case domain.RemoveItem:
		if !b.fetch.Store().Remove(in.ObjectID) {
			logger.Debug("remove %q: not in collection", in.ObjectID)
		}

	case domain.SortBy:
		b.selectSort(in.Key)

	case domain.FetchCompleted:
		applied := b.fetch.Complete(in.Result)
		b.record(in.Result, applied)

	default:
		logger.Warn("ignoring unknown intent %T", intent)
	}
	return nil
}

func (b *Browser) submit(term string) *domain.FetchRequest {
	term = strings.TrimSpace(term)
	if term == "" {
		logger.Debug("empty search term, not fetching")
		return nil
	}

	req := b.fetch.Start(term)

	if b.stateStore != nil {
		if err := b.stateStore.SetLastTerm(term); err != nil {
			logger.Warn("saving last term: %v", err)
		}
	}
	return &req
}

func (b *Browser) selectSort(key domain.SortKey) {
	if !key.Valid() {
		logger.Warn("ignoring sort by %s", key)
		return
	}

	b.mu.Lock()
	b.sort = b.sort.Select(key)
	state := b.sort
	b.mu.Unlock()

	if b.stateStore != nil {
		if err := b.stateStore.SetLastSort(state); err != nil {
			logger.Warn("saving last sort: %v", err)
		}
	}
}

// Run executes req and times it. The attempt is recorded in the
// history store once the returned completion is dispatched.
func (b *Browser) Run(ctx context.Context, req domain.FetchRequest) domain.FetchCompleted {
	start := b.now()
	result := b.fetch.Run(ctx, req)
	result.Took = b.now().Sub(start)
	return domain.FetchCompleted{Result: result}
}

// record stores a history row for a dispatched completion. Results
// that were not applied are recorded as superseded. Failures are
// logged, never returned.
func (b *Browser) record(result domain.FetchResult, applied bool) {
	if b.history == nil {
		return
	}

	rec := domain.SearchRecord{
		ID:       result.Request.ID,
		Term:     result.Request.Term,
		Status:   domain.FetchResolved,
		Hits:     len(result.Items),
		Duration: result.Took,
		At:       b.now().UTC(),
	}
	if result.Err != nil {
		rec.Status = domain.FetchRejected
		rec.Hits = 0
		rec.Error = result.Err.Error()
	}
	if !applied {
		rec.Status = domain.FetchSuperseded
	}

	if err := b.history.Record(context.Background(), rec); err != nil {
		logger.Warn("recording search %s: %v", rec.ID, err)
	}
}

// Fetch submits term, runs the request and commits the result.
func (b *Browser) Fetch(ctx context.Context, term string) error {
	req := b.Dispatch(domain.SubmitSearch{Term: term})
	if req == nil {
		return fmt.Errorf("%w: empty search term", domain.ErrInvalidInput)
	}

	completed := b.Run(ctx, *req)
	b.Dispatch(completed)
	return completed.Result.Err
}

// Snapshot returns the sorted collection and indicator state.
func (b *Browser) Snapshot() domain.ViewState {
	b.mu.Lock()
	sortState := b.sort
	b.mu.Unlock()

	return domain.ViewState{
		Items: SortItemsByState(b.fetch.Store().Current(), sortState),
		Fetch: b.fetch.State(),
		Sort:  sortState,
	}
}

// SortState returns the active sort state.
func (b *Browser) SortState() domain.SortState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sort
}
