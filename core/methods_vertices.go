// File: methods_vertices.go
// Role: Vertex-centric queries: VertexCount, Neighbors, Degree.

package core

import (
	"fmt"
	"sort"
)

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// checkVertex returns ErrVertexOutOfRange unless 0 <= v < n.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
	}

	return nil
}

// Neighbors returns the edges incident to u with From == u, sorted by To.
// Errors: ErrVertexOutOfRange.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	g.mu.RLock()
	out := make([]Edge, 0, len(g.adj[u]))
	for v, w := range g.adj[u] {
		out = append(out, Edge{From: u, To: v, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Degree returns the number of neighbours of u.
// Errors: ErrVertexOutOfRange.
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u]), nil
}
