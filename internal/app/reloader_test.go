package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/devicedeck/internal/catalog"
	"github.com/five82/devicedeck/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

func TestCalculateBackoff_LongIntervalNotShortened(t *testing.T) {
	base := time.Minute
	for failures := 0; failures <= 5; failures++ {
		if got := calculateBackoff(failures, base); got != base {
			t.Errorf("calculateBackoff(%d, %v) = %v, want %v", failures, base, got, base)
		}
	}
}

// scriptedSource returns the queued results in order, then repeats the last.
type scriptedSource struct {
	mu      sync.Mutex
	results []sourceResult
	calls   int
}

type sourceResult struct {
	lists []catalog.List
	err   error
}

func (s *scriptedSource) Load(ctx context.Context) ([]catalog.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	s.calls++
	r := s.results[idx]
	return r.lists, r.err
}

func (s *scriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func listOf(name string, ids ...string) []catalog.List {
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, catalog.Product{ID: id, Name: id, Category: catalog.CategoryMobile})
	}
	return []catalog.List{{Name: name, Products: products}}
}

func TestReload_ReplacesCatalogAndRecordsSync(t *testing.T) {
	store := catalog.NewStore(listOf("popular", "old"))
	syncState := state.NewStore("test")
	source := &scriptedSource{results: []sourceResult{{lists: listOf("popular", "new-1", "new-2")}}}

	require.NoError(t, reload(context.Background(), store, syncState, source))

	_, hasOld := store.Lookup("old")
	_, hasNew := store.Lookup("new-2")
	assert.False(t, hasOld)
	assert.True(t, hasNew)
	assert.Equal(t, 2, syncState.Snapshot().Products)
}

func TestReload_FailureKeepsPreviousCatalog(t *testing.T) {
	store := catalog.NewStore(listOf("popular", "keep"))
	syncState := state.NewStore("test")
	boom := errors.New("feed down")
	source := &scriptedSource{results: []sourceResult{{err: boom}}}

	err := reload(context.Background(), store, syncState, source)
	require.ErrorIs(t, err, boom)

	_, ok := store.Lookup("keep")
	assert.True(t, ok, "previous catalog should survive a failed reload")
	assert.Equal(t, 1, syncState.Snapshot().ConsecutiveFailures)
}

func TestStartReloader_RecoversAfterFailure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	store := catalog.NewStore(listOf("popular", "old"))
	syncState := state.NewStore("test")
	source := &scriptedSource{results: []sourceResult{
		{err: errors.New("transient")},
		{lists: listOf("popular", "fresh")},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	StartReloader(ctx, Reloader{
		Catalog:  store,
		Sync:     syncState,
		Source:   source,
		Interval: 5 * time.Millisecond,
		Logger:   zap.New(core),
	})

	require.Eventually(t, func() bool {
		_, ok := store.Lookup("fresh")
		return ok
	}, 2*time.Second, 5*time.Millisecond)

	assert.GreaterOrEqual(t, source.Calls(), 2)
	assert.Equal(t, 1, logs.FilterMessage("catalog reload failed").Len())
	assert.Equal(t, 0, syncState.Snapshot().ConsecutiveFailures)
}

func TestStartReloader_DisabledWithoutInterval(t *testing.T) {
	source := &scriptedSource{results: []sourceResult{{lists: listOf("popular", "x")}}}
	StartReloader(context.Background(), Reloader{
		Catalog: catalog.NewStore(nil),
		Source:  source,
	})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, source.Calls())
}
