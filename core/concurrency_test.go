// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellslam/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from a hub are safe
// and every edge is recorded exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g, err := core.NewGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, id, float64(id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadersAndClone runs Neighbors/Edges/Clone in parallel with writers.
func TestConcurrentReadersAndClone(t *testing.T) {
	g, err := core.NewGraph(64)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 63; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(id, id+1, 1)
		}(i)
		go func(id int) {
			defer wg.Done()
			_, _ = g.Neighbors(id)
			_ = g.Edges()
			_ = g.Clone()
		}(i)
	}
	wg.Wait()

	require.True(t, g.IsConnected())
}
