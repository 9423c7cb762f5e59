package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellslam/core"
)

func mustGraph(t *testing.T, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func TestNewGraph_BadCount(t *testing.T) {
	_, err := core.NewGraph(0)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)
}

func TestAddEdge_Validation(t *testing.T) {
	g := mustGraph(t, 3)

	assert.ErrorIs(t, g.AddEdge(0, 3, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 1, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 1, -1), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.NaN()), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.Inf(1)), core.ErrBadWeight)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_ParallelKeepsMinimum(t *testing.T) {
	g := mustGraph(t, 2, core.Edge{From: 0, To: 1, Weight: 3})
	require.NoError(t, g.AddEdge(1, 0, 2))
	require.NoError(t, g.AddEdge(0, 1, 5))

	w, ok := g.Weight(1, 0)
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestEdgesAndNeighbors_Sorted(t *testing.T) {
	g := mustGraph(t, 4,
		core.Edge{From: 3, To: 0, Weight: 1},
		core.Edge{From: 2, To: 1, Weight: 2},
		core.Edge{From: 0, To: 2, Weight: 0},
	)

	assert.Equal(t, []core.Edge{
		{From: 0, To: 2, Weight: 0},
		{From: 0, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 2},
	}, g.Edges())

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 2, To: 0, Weight: 0}, {From: 2, To: 1, Weight: 2}}, nbs)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	assert.Equal(t, 3.0, g.TotalWeight())
	assert.True(t, g.HasEdge(3, 0))
	assert.False(t, g.HasEdge(1, 3))
	assert.False(t, g.HasEdge(1, 7))
}

func TestConnectedComponents(t *testing.T) {
	g := mustGraph(t, 6,
		core.Edge{From: 4, To: 1, Weight: 1},
		core.Edge{From: 1, To: 3, Weight: 1},
		core.Edge{From: 5, To: 2, Weight: 1},
	)

	assert.Equal(t, [][]int{{0}, {1, 3, 4}, {2, 5}}, g.ConnectedComponents())
	assert.False(t, g.IsConnected())

	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(3, 5, 1))
	assert.True(t, g.IsConnected())
}

func TestDistanceMatrix(t *testing.T) {
	g := mustGraph(t, 3, core.Edge{From: 0, To: 1, Weight: 2.5})
	d, err := g.DistanceMatrix()
	require.NoError(t, err)

	v, _ := d.At(1, 0)
	assert.Equal(t, 2.5, v)
	v, _ = d.At(2, 2)
	assert.Equal(t, 0.0, v)
	v, _ = d.At(0, 2)
	assert.True(t, math.IsInf(v, 1))
}

func TestClone_Independent(t *testing.T) {
	g := mustGraph(t, 3, core.Edge{From: 0, To: 1, Weight: 1})
	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2, 1))

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
}
