// File: services/catalog/synced.go
package catalog

import (
	"context"
	"sync"
)

// Collection load states.
const (
	StateIdle    = "idle"
	StateLoading = "loading"
	StateLoaded  = "loaded"
	StateFailed  = "failed"
)

// Source fetches the full remote collection. Each refresh is all-or-nothing;
// there is no partial load.
type Source[T Record[T]] interface {
	Fetch(ctx context.Context) ([]T, error)
}

// SyncedCollection mirrors a remote collection locally. Refreshes are
// last-request-wins: issuing a new refresh cancels the superseded in-flight
// one, and a response that is no longer the latest is discarded. A failed
// refresh keeps the previously loaded items so a working view is never
// blanked by a transient error.
type SyncedCollection[T Record[T]] struct {
	*Collection[T]
	source Source[T]

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	state   string
	lastErr string
}

// NewSyncedCollection returns a synced collection over the given source.
func NewSyncedCollection[T Record[T]](source Source[T]) *SyncedCollection[T] {
	return &SyncedCollection[T]{
		Collection: NewCollection[T](),
		source:     source,
		state:      StateIdle,
	}
}

// Refresh fetches the remote collection and replaces the local one. Stale
// responses (superseded by a newer refresh) are dropped without touching
// state.
func (s *SyncedCollection[T]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.seq++
	mySeq := s.seq
	s.state = StateLoading
	s.mu.Unlock()

	items, err := s.source.Fetch(fetchCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if mySeq != s.seq {
		// A newer refresh owns the state now.
		return nil
	}
	cancel()
	s.cancel = nil

	if err != nil {
		s.state = StateFailed
		s.lastErr = err.Error()
		return err
	}

	s.Collection.replace(items)
	s.state = StateLoaded
	s.lastErr = ""
	return nil
}

// State returns the current load state.
func (s *SyncedCollection[T]) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the displayable message of the last failed refresh, or ""
// after a successful one.
func (s *SyncedCollection[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
