// Package prim_kruskal provides implementations of Prim's Minimum Spanning Tree algorithm:
// a heap-based variant for sparse graphs and an array-based variant for dense distance matrices.
package prim_kruskal

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/cellslam/core"
	"github.com/katalvlaran/cellslam/matrix"
)

// Prim computes the MST of g by growing outwards from root with a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph          : g is nil.
//   - core.ErrVertexOutOfRange : root outside [0, n).
//   - ErrDisconnected          : g is not connected.
//
// Steps:
//  1. Validate.
//  2. Mark root visited, push its incident edges.
//  3. Pop the lightest edge to an unvisited vertex, accept it, push that vertex's edges.
//  4. Fewer than n-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root int) ([]core.Edge, float64, error) {
	// 1. Validate
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := g.VertexCount()
	neighbors, err := g.Neighbors(root)
	if err != nil {
		return nil, 0, err
	}

	// 2. Seed
	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64
	pq := &edgePQ{}
	heap.Init(pq)
	visited[root] = true
	for _, e := range neighbors {
		heap.Push(pq, e)
	}

	// 3. Grow
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		v := e.To
		if visited[v] {
			continue
		}
		visited[v] = true
		mst = append(mst, normalize(e))
		totalWeight += e.Weight

		next, err := g.Neighbors(v)
		if err != nil {
			return nil, 0, err
		}
		for _, ne := range next {
			if !visited[ne.To] {
				heap.Push(pq, ne)
			}
		}
	}

	// 4. Connectivity
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// PrimDense computes a minimum spanning forest of the complete graph whose
// edge weights are the off-diagonal entries of d. +Inf entries are treated
// as missing edges. d is read as symmetric: only d[i][j] with the current
// tree vertex as row is consulted.
//
// Steps:
//  1. best[v] = cheapest known connection of v to the tree, from[v] its tree end.
//  2. Repeatedly pick the unvisited vertex with the smallest finite best
//     (ties → smaller index); if none is finite, start a new tree at the
//     smallest unvisited vertex.
//  3. Relax best[] through the newly added vertex.
//
// Errors: ErrInvalidGraph for a nil or non-square matrix.
// Complexity: O(n²) time, O(n) extra space.
func PrimDense(d *matrix.Dense) ([]core.Edge, float64, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, 0, ErrInvalidGraph
	}
	n := d.Rows()

	// 1. State
	inf := math.Inf(1)
	visited := make([]bool, n)
	best := make([]float64, n)
	from := make([]int, n)
	for i := range best {
		best[i] = inf
		from[i] = -1
	}
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	for added := 0; added < n; added++ {
		// 2. Select
		u := -1
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if u == -1 || best[v] < best[u] {
				u = v
			}
		}
		visited[u] = true
		if from[u] >= 0 {
			mst = append(mst, normalize(core.Edge{From: from[u], To: u, Weight: best[u]}))
			totalWeight += best[u]
		}

		// 3. Relax
		row, err := d.Row(u)
		if err != nil {
			return nil, 0, err
		}
		for v, w := range row {
			if visited[v] || math.IsInf(w, 1) {
				continue
			}
			if w < best[v] {
				best[v] = w
				from[v] = u
			}
		}
	}

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min-heap of core.Edge ordered by (Weight, From, To).
type edgePQ []core.Edge

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return lessEdge(pq[i], pq[j]) }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
