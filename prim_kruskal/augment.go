package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/cellslam/core"
)

// Augment adds every tree edge that is not already present in g and returns
// how many edges were added. Existing edges keep their weight.
func Augment(g *core.Graph, tree []core.Edge) (int, error) {
	if g == nil {
		return 0, ErrInvalidGraph
	}
	added := 0
	for _, e := range tree {
		if g.HasEdge(e.From, e.To) {
			continue
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return added, fmt.Errorf("prim_kruskal: augment %d–%d: %w", e.From, e.To, err)
		}
		added++
	}

	return added, nil
}

// TreeGraph builds an n-vertex graph holding exactly the given edges.
func TreeGraph(n int, tree []core.Edge) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	if _, err = Augment(g, tree); err != nil {
		return nil, err
	}

	return g, nil
}
