package store_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/cflreach/grammar"
	"github.com/katalvlaran/cflreach/store"
	"github.com/stretchr/testify/require"
)

func TestConcurrentStore_AddInitial(t *testing.T) {
	s := store.NewConcurrent(store.Bi, store.ThreeD)
	s.AddInitial(0, 1, grammar.Symbol(0))

	require.Equal(t, []int{1}, s.Out3D(0, grammar.Symbol(0)).OldAndNew())
	require.Equal(t, []int{0}, s.In3D(1, grammar.Symbol(0)).OldAndNew())
	require.Equal(t, 1, s.EdgeCount())
}

func TestConcurrentStore_CheckAndAddEdge_RaceToOneWinner(t *testing.T) {
	s := store.NewConcurrent(store.Out, store.ThreeD)
	var terminate atomic.Bool
	terminate.Store(true)

	const workers = 32
	var wins atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if s.CheckAndAddEdge(0, 1, grammar.Symbol(0), &terminate) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, wins.Load())
	require.Equal(t, 1, s.EdgeCount())
	require.False(t, terminate.Load())
	require.Equal(t, 1, s.Out3D(0, grammar.Symbol(0)).Len())
}

func TestConcurrentStore_CommitFrontier(t *testing.T) {
	s := store.NewConcurrent(store.Out, store.ThreeD)
	var terminate atomic.Bool

	s.AddInitial(0, 1, grammar.Symbol(0))
	s.CheckAndAddEdge(0, 2, grammar.Symbol(0), &terminate)

	cell := s.Out3D(0, grammar.Symbol(0))
	require.Equal(t, []int{1}, cell.OldAndNew()) // pending (2) not visible yet

	s.CommitFrontier()
	require.ElementsMatch(t, []int{1, 2}, cell.OldAndNew())
	require.Equal(t, []int{1}, cell.Old())
	require.Equal(t, []int{2}, cell.New())
}

func TestConcurrentStore_Vertices(t *testing.T) {
	s := store.NewConcurrent(store.Bi, store.ThreeD)
	s.AddInitial(0, 1, grammar.Symbol(0))
	s.AddInitial(1, 2, grammar.Symbol(0))

	require.ElementsMatch(t, []int{0, 1, 2}, s.Vertices())
}
