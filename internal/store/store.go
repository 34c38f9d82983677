package store

import (
	"context"
	"sync"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/casting"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/model"
)

// MutationBackend is the write surface the store needs from the backend.
type MutationBackend interface {
	UpsertModel(ctx context.Context, m *model.Model) error
	UpsertApplication(ctx context.Context, a *casting.Application) error
}

// Store owns the current snapshot. It is the sole data source for every
// consumer; reads come from Current, writes go through the gateway methods.
type Store struct {
	mu          sync.RWMutex
	snapshot    *Snapshot
	initialized bool

	aggregator *Aggregator
	backend    MutationBackend
}

func New(aggregator *Aggregator, backend MutationBackend) *Store {
	empty := &Snapshot{}
	empty.fillDefaults()
	return &Store{
		snapshot:   empty,
		aggregator: aggregator,
		backend:    backend,
	}
}

// Refresh re-aggregates the backend and publishes the result. It cannot fail:
// the aggregator degrades to empty sections or the bundled fallback, so the
// store always ends up initialized with something to serve.
func (s *Store) Refresh(ctx context.Context) {
	snap := s.aggregator.FetchSnapshot(ctx)

	s.mu.Lock()
	s.snapshot = snap
	s.initialized = true
	s.mu.Unlock()
}

// Current returns the published snapshot. Callers must treat it as read-only.
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Initialized reports whether at least one aggregation (or fallback) has
// been published.
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// SaveModel upserts a model in the backend. The change listener reflects the
// write back into the snapshot; errors propagate to the caller unchanged.
func (s *Store) SaveModel(ctx context.Context, m *model.Model) error {
	return s.backend.UpsertModel(ctx, m)
}

// SaveCastingApplication upserts a casting application in the backend, same
// contract as SaveModel.
func (s *Store) SaveCastingApplication(ctx context.Context, a *casting.Application) error {
	return s.backend.UpsertApplication(ctx, a)
}

// ReplaceSnapshot publishes a caller-constructed snapshot immediately. It
// never persists anything: it exists for call sites that already performed
// their own backend writes and want the change visible without waiting for
// the listener's round trip. The next listener-driven refresh is
// authoritative and overwrites it.
func (s *Store) ReplaceSnapshot(snap *Snapshot) {
	if snap == nil {
		return
	}
	snap.fillDefaults()

	s.mu.Lock()
	s.snapshot = snap
	s.initialized = true
	s.mu.Unlock()
}
