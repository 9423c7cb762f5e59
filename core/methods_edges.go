// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount/TotalWeight.
// Determinism:
//   - Edges() returns edges sorted by (From, To), From < To.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge inserts the undirected edge {u,v} with weight w.
//
// If the edge already exists the smaller of the two weights is kept and the
// call succeeds.
//
// Steps:
//  1. Validate indices, loop, weight.
//  2. Lock; insert or lower the weight in both directions.
//
// Errors: ErrVertexOutOfRange, ErrLoopNotAllowed, ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	// 1) Input validation
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: edge %d–%d weight=%v", ErrBadWeight, u, v, w)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if old, ok := g.adj[u][v]; ok {
		if w < old {
			g.adj[u][v] = w
			g.adj[v][u] = w
		}

		return nil
	}
	g.adj[u][v] = w
	g.adj[v][u] = w
	g.edges++

	return nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range indices report false.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of {u,v} and whether the edge exists.
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[u][v]

	return w, ok
}

// Edges returns every edge once, normalized From < To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	var u, v int
	var w float64
	for u = 0; u < g.n; u++ {
		for v, w = range g.adj[u] {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.Edges() {
		sum += e.Weight
	}

	return sum
}
