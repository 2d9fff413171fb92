package statestore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/loopgridgo/internal/loop"
)

func TestGetOrCreate_ReturnsSameStateForSameID(t *testing.T) {
	t.Parallel()

	store := New()

	st1 := store.GetOrCreate("loop.sampler_loop.a")
	st1.Index = 5
	st2 := store.GetOrCreate("loop.sampler_loop.a")

	require.Same(t, st1, st2)
	require.Equal(t, 5, st2.Index)
}

func TestGetOrCreate_IsolatesInstances(t *testing.T) {
	t.Parallel()

	store := New()

	a := store.GetOrCreate("loop.sampler_loop.a")
	b := store.GetOrCreate("loop.sampler_loop.b")
	a.Index = 3

	require.NotSame(t, a, b)
	require.Equal(t, 0, b.Index, "instances with the same node type must not share state")
}

func TestGetOrCreate_InitialState(t *testing.T) {
	t.Parallel()

	st := New().GetOrCreate("loop.float_range_loop.x")

	require.Equal(t, 0, st.Index)
	require.Equal(t, 1, st.Direction)
	require.Equal(t, uint64(0), st.Calls)
}

func TestGetOrCreate_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := New()
	states := make([]*loop.State, 50)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			states[i] = store.GetOrCreate("loop.all_parameters_loop.shared")
		}(i)
	}
	wg.Wait()

	for _, st := range states {
		require.Same(t, states[0], st)
	}
}
