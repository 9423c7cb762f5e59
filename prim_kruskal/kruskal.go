// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/cellslam/core"
)

// Kruskal computes the MST of g using a disjoint-set with path compression
// and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : g is nil.
//   - ErrDisconnected : g has more than one connected component.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	mst, total := kruskal(g)
	if len(mst) < g.VertexCount()-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// SpanningForest is Kruskal without the connectivity requirement: it returns
// a minimum spanning tree of every connected component.
func SpanningForest(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	mst, total := kruskal(g)

	return mst, total, nil
}

// kruskal runs the algorithm and returns whatever forest it built.
//
// Steps:
//  1. Collect edges (already normalized From < To) and sort by (weight, From, To).
//  2. Initialize DSU parent/rank slices.
//  3. Accept every edge joining two different sets; stop at n-1 edges.
func kruskal(g *core.Graph) ([]core.Edge, float64) {
	n := g.VertexCount()

	// 1. Sorted edge list
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return lessEdge(edges[i], edges[j]) })

	// 2. DSU
	d := newDSU(n)

	// 3. Build
	var (
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
	)
	for _, e := range edges {
		if d.union(e.From, e.To) {
			mst = append(mst, e)
			totalWeight += e.Weight
			if len(mst) == n-1 {
				break
			}
		}
	}

	return mst, totalWeight
}

// dsu is a disjoint-set forest over [0, n).
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of u with iterative path halving.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v; false if they were already joined.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
	} else {
		d.parent[rv] = ru
		if d.rank[ru] == d.rank[rv] {
			d.rank[ru]++
		}
	}

	return true
}
