package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellslam/core"
	"github.com/katalvlaran/cellslam/knn"
	"github.com/katalvlaran/cellslam/matrix"
	"github.com/katalvlaran/cellslam/prim_kruskal"
)

// square builds 0–1(1), 1–2(2), 2–3(1), 3–0(3), 0–2(4).
func square(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 0, 3))
	require.NoError(t, g.AddEdge(0, 2, 4))

	return g
}

func line(t *testing.T, xs ...float64) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, len(xs))
	for i := range xs {
		rows[i] = make([]float64, len(xs))
		for j := range xs {
			rows[i][j] = math.Abs(xs[i] - xs[j])
		}
	}
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

func TestKruskal_Square(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(square(t))
	require.NoError(t, err)
	assert.Equal(t, 4.0, total)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 2},
	}, mst)
}

func TestPrim_Square(t *testing.T) {
	mst, total, err := prim_kruskal.Prim(square(t), 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, total)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 1},
	}, mst)
}

func TestPrimAndKruskal_SameWeight(t *testing.T) {
	g := square(t)
	for root := 0; root < 4; root++ {
		_, pw, err := prim_kruskal.Prim(g, root)
		require.NoError(t, err)
		_, kw, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, kw, pw, "root %d", root)
	}
}

func TestPrim_RootOutOfRange(t *testing.T) {
	_, _, err := prim_kruskal.Prim(square(t), 9)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestDisconnected(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))

	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	forest, total, err := prim_kruskal.SpanningForest(g)
	require.NoError(t, err)
	assert.Len(t, forest, 2)
	assert.Equal(t, 3.0, total)

	forest2, _, err := prim_kruskal.Compute(g, prim_kruskal.WithForest())
	require.NoError(t, err)
	assert.Equal(t, forest, forest2)
}

func TestNilInputs(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.PrimDense(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Augment(nil, nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Compute(square(t), prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestPrimDense_Line(t *testing.T) {
	mst, total, err := prim_kruskal.PrimDense(line(t, 0, 1, 2, 10))
	require.NoError(t, err)
	assert.Equal(t, 10.0, total)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 8},
	}, mst)
}

func TestPrimDense_ForestAcrossInf(t *testing.T) {
	inf := math.Inf(1)
	d, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, inf},
		{1, 0, inf},
		{inf, inf, 0},
	})
	require.NoError(t, err)

	mst, total, err := prim_kruskal.PrimDense(d)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}}, mst)
	assert.Equal(t, 1.0, total)
}

func TestPrimDense_MatchesKruskalOnComplete(t *testing.T) {
	d := line(t, 0, 3, 4, 9, 11, 20)
	complete, err := knn.Build(d, d.Rows()-1)
	require.NoError(t, err)

	_, dw, err := prim_kruskal.PrimDense(d)
	require.NoError(t, err)
	_, kw, err := prim_kruskal.Kruskal(complete)
	require.NoError(t, err)
	assert.Equal(t, kw, dw)
}

func TestAugment_ReconnectsMutualGraph(t *testing.T) {
	d := line(t, 0, 1, 2, 10)
	g, err := knn.Build(d, 1, knn.WithMutual())
	require.NoError(t, err)
	require.False(t, g.IsConnected())

	tree, _, err := prim_kruskal.PrimDense(d)
	require.NoError(t, err)
	added, err := prim_kruskal.Augment(g, tree)
	require.NoError(t, err)

	// 0–1 already present.
	assert.Equal(t, 2, added)
	assert.True(t, g.IsConnected())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestTreeGraph(t *testing.T) {
	tree, _, err := prim_kruskal.PrimDense(line(t, 0, 1, 2))
	require.NoError(t, err)
	g, err := prim_kruskal.TreeGraph(3, tree)
	require.NoError(t, err)
	assert.Equal(t, tree, g.Edges())

	_, err = prim_kruskal.TreeGraph(0, nil)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)
}
