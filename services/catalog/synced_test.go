package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lenshub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcSource adapts a closure to Source.
type funcSource struct {
	fetch func(ctx context.Context) ([]models.Category, error)
}

func (f funcSource) Fetch(ctx context.Context) ([]models.Category, error) {
	return f.fetch(ctx)
}

func cats(names ...string) []models.Category {
	out := make([]models.Category, 0, len(names))
	for _, n := range names {
		out = append(out, models.Category{ID: n, Name: n, Active: true})
	}
	return out
}

func TestRefreshReplacesItems(t *testing.T) {
	s := NewSyncedCollection[models.Category](funcSource{
		fetch: func(ctx context.Context) ([]models.Category, error) {
			return cats("wedding", "portrait"), nil
		},
	})
	assert.Equal(t, StateIdle, s.State())

	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, StateLoaded, s.State())
	assert.Empty(t, s.Err())
	assert.Len(t, s.Items(), 2)
}

func TestFailedRefreshRetainsStaleItems(t *testing.T) {
	var fail bool
	s := NewSyncedCollection[models.Category](funcSource{
		fetch: func(ctx context.Context) ([]models.Category, error) {
			if fail {
				return nil, errors.New("upstream unavailable")
			}
			return cats("wedding"), nil
		},
	})

	require.NoError(t, s.Refresh(context.Background()))
	require.Len(t, s.Items(), 1)

	fail = true
	err := s.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFailed, s.State())
	assert.Equal(t, "upstream unavailable", s.Err())
	// The working view is never blanked by a failed refresh.
	assert.Len(t, s.Items(), 1)

	fail = false
	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, StateLoaded, s.State())
	assert.Empty(t, s.Err())
}

func TestLastRefreshWins(t *testing.T) {
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	s := NewSyncedCollection[models.Category](funcSource{
		fetch: func(ctx context.Context) ([]models.Category, error) {
			mu.Lock()
			calls++
			mine := calls
			mu.Unlock()
			if mine == 1 {
				// Slow first response; held until after the second refresh lands.
				<-release
				return cats("stale"), nil
			}
			return cats("fresh"), nil
		},
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Refresh(context.Background())
	}()

	// Wait for the first fetch to be in flight.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, s.Refresh(context.Background()))
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "fresh", s.Items()[0].Name)

	// Release the stale response; it must be discarded.
	close(release)
	wg.Wait()

	assert.Equal(t, "fresh", s.Items()[0].Name)
	assert.Equal(t, StateLoaded, s.State())
}

func TestSupersededFetchContextCancelled(t *testing.T) {
	firstStarted := make(chan struct{})
	cancelSeen := make(chan struct{})
	var once sync.Once

	s := NewSyncedCollection[models.Category](funcSource{
		fetch: func(ctx context.Context) ([]models.Category, error) {
			select {
			case <-ctx.Done():
				// Superseded request observed its cancellation.
				return nil, ctx.Err()
			default:
			}
			once.Do(func() {
				close(firstStarted)
				<-ctx.Done()
				close(cancelSeen)
			})
			return cats("whatever"), nil
		},
	})

	go func() { _ = s.Refresh(context.Background()) }()
	<-firstStarted

	require.NoError(t, s.Refresh(context.Background()))

	select {
	case <-cancelSeen:
	case <-time.After(time.Second):
		t.Fatal("superseded refresh was not cancelled")
	}
}
