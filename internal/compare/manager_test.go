package compare

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/devicedeck/internal/catalog"
)

func product(id string) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id, Price: 1000, Category: catalog.CategoryMobile}
}

func TestManager_Scenario(t *testing.T) {
	m := NewManager(nil)

	out, err := m.Add(product("p1"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, out)
	assert.Equal(t, 1, m.Snapshot().Len())
	assert.False(t, m.Snapshot().CanCompare())

	_, err = m.Add(product("p2"))
	require.NoError(t, err)
	assert.True(t, m.Snapshot().CanCompare())

	out, err = m.Add(product("p1"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, out)
	assert.Equal(t, 2, m.Snapshot().Len())

	_, err = m.Add(product("p3"))
	require.NoError(t, err)
	_, err = m.Add(product("p4"))
	require.NoError(t, err)
	assert.Equal(t, 4, m.Snapshot().Len())

	out, err = m.Add(product("p5"))
	assert.Equal(t, OutcomeRejected, out)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, m.Snapshot().IDs())

	assert.True(t, m.Remove("p2"))
	assert.Equal(t, []string{"p1", "p3", "p4"}, m.Snapshot().IDs())

	m.Clear()
	snap := m.Snapshot()
	assert.Equal(t, 0, snap.Len())
	assert.False(t, snap.CanCompare())
}

func TestManager_CapacityNeverExceeded(t *testing.T) {
	m := NewManager(nil)
	for i := 0; i < 20; i++ {
		_, _ = m.Add(product(fmt.Sprintf("id-%d", i%7)))
		if n := m.Snapshot().Len(); n > Capacity {
			t.Fatalf("Len() = %d after add %d, want <= %d", n, i, Capacity)
		}
	}
	assert.Equal(t, []string{"id-0", "id-1", "id-2", "id-3"}, m.Snapshot().IDs())
}

func TestManager_DuplicateLeavesSetIdentical(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.Add(product("a"))
	_, _ = m.Add(product("b"))
	before := m.Snapshot()

	out, err := m.Add(product("a"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, out)
	assert.Equal(t, before, m.Snapshot())
}

func TestManager_RejectedAddOnFullSetWithDuplicateIsDuplicate(t *testing.T) {
	m := NewManager(nil)
	for _, id := range []string{"a", "b", "c", "d"} {
		_, _ = m.Add(product(id))
	}
	out, err := m.Add(product("c"))
	assert.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, out)
}

func TestManager_RemoveUnknownIsNoop(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.Add(product("a"))
	before := m.Snapshot()
	assert.False(t, m.Remove("zzz"))
	assert.Equal(t, before, m.Snapshot())
}

func TestManager_ClearIdempotent(t *testing.T) {
	m := NewManager(nil)
	m.Clear()
	assert.Equal(t, 0, m.Snapshot().Len())

	_, _ = m.Add(product("a"))
	m.Clear()
	once := m.Snapshot()
	m.Clear()
	assert.Equal(t, once, m.Snapshot())
	assert.Equal(t, 0, once.Len())
}

func TestManager_Toggle(t *testing.T) {
	m := NewManager(nil)

	out, err := m.Toggle(product("a"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, out)

	out, err = m.Toggle(product("a"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeRemoved, out)
	assert.Equal(t, 0, m.Snapshot().Len())

	for _, id := range []string{"a", "b", "c", "d"} {
		_, _ = m.Toggle(product(id))
	}
	out, err = m.Toggle(product("e"))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, OutcomeRejected, out)
}

func TestManager_SnapshotIsACopy(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.Add(product("a"))
	snap := m.Snapshot()
	snap.Items[0].Name = "mutated"
	assert.Equal(t, "Product a", m.Snapshot().Items[0].Name)
}

func TestManager_SubscribersSeeEveryChangeSynchronously(t *testing.T) {
	m := NewManager(nil)

	var seen []Set
	require.NoError(t, m.Subscribe(func(s Set) { seen = append(seen, s) }))
	var sizes []int
	require.NoError(t, m.Subscribe(func(s Set) { sizes = append(sizes, m.Snapshot().Len()) }))

	_, _ = m.Add(product("a"))
	require.Len(t, seen, 1, "subscriber must run before Add returns")
	assert.Equal(t, []string{"a"}, seen[0].IDs())

	_, _ = m.Add(product("a")) // duplicate: no event
	_, _ = m.Add(product("b"))
	m.Remove("missing") // no-op: no event
	m.Remove("a")
	m.Clear()
	m.Clear() // already empty: no event

	require.Len(t, seen, 4)
	assert.Equal(t, []string{"a", "b"}, seen[1].IDs())
	assert.Equal(t, []string{"b"}, seen[2].IDs())
	assert.Equal(t, 0, seen[3].Len())
	assert.Equal(t, []int{1, 2, 1, 0}, sizes)

	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i].Version, seen[i-1].Version)
	}
}

func TestManager_ConcurrentMutationsDeliverIncreasingVersions(t *testing.T) {
	m := NewManager(nil)

	var (
		mu       sync.Mutex
		versions []uint64
	)
	require.NoError(t, m.Subscribe(func(s Set) {
		mu.Lock()
		versions = append(versions, s.Version)
		mu.Unlock()
	}))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = m.Toggle(product(fmt.Sprintf("p%d", (g+i)%6)))
			}
		}(g)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, versions)
	for i := 1; i < len(versions); i++ {
		require.Greater(t, versions[i], versions[i-1], "delivery %d went backwards", i)
	}
	assert.Equal(t, m.Snapshot().Version, versions[len(versions)-1])
	assert.LessOrEqual(t, m.Snapshot().Len(), Capacity)
}

func TestManager_LogsCapacityRejection(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewManager(zap.New(core))
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		_, _ = m.Add(product(id))
	}

	full := logs.FilterMessage("compare list full").All()
	require.Len(t, full, 1)
	assert.Equal(t, zapcore.InfoLevel, full[0].Level)
	assert.Equal(t, "e", full[0].ContextMap()["id"])
	assert.Len(t, logs.FilterMessage("added to compare").All(), 4)
}

func TestSet_Stage(t *testing.T) {
	tests := []struct {
		n    int
		want Stage
	}{
		{0, StageEmpty},
		{1, StageInsufficient},
		{2, StageComparable},
		{3, StageComparable},
		{4, StageFull},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			var s Set
			for i := 0; i < tt.n; i++ {
				s.Items = append(s.Items, product(fmt.Sprint(i)))
			}
			assert.Equal(t, tt.want, s.Stage())
			assert.Equal(t, tt.n >= 2, s.CanCompare())
			assert.Equal(t, tt.n == 4, s.IsFull())
		})
	}
}
