package core

import (
	"math"
	"sort"

	"github.com/katalvlaran/cellslam/matrix"
)

// ConnectedComponents returns the vertex sets of the connected components.
// Components are ordered by their smallest vertex; vertices are ascending
// within a component.
//
// Time:   O(n + E log d) (neighbours are visited in sorted order).
// Memory: O(n).
func (g *Graph) ConnectedComponents() [][]int {
	seen := make([]bool, g.n)
	var comps [][]int

	for s := 0; s < g.n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect the component of s
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			nbs, _ := g.Neighbors(u) // u is in range
			for _, e := range nbs {
				if !seen[e.To] {
					seen[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}

// IsConnected reports whether the graph has a single connected component.
func (g *Graph) IsConnected() bool {
	return len(g.ConnectedComponents()) == 1
}

// DistanceMatrix exports the graph as an n×n matrix: 0 on the diagonal, the
// edge weight for edges and +Inf for non-adjacent pairs. This is the input
// shape matrix.FloydWarshall expects.
// Complexity: O(n² + E).
func (g *Graph) DistanceMatrix() (*matrix.Dense, error) {
	d, err := matrix.NewSquare(g.n, math.Inf(1))
	if err != nil {
		return nil, err
	}
	for i := 0; i < g.n; i++ {
		if err = d.Set(i, i, 0); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if err = d.Set(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
		if err = d.Set(e.To, e.From, e.Weight); err != nil {
			return nil, err
		}
	}

	return d, nil
}
