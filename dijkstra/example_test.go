package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cellslam/core"
	"github.com/katalvlaran/cellslam/dijkstra"
)

// ExampleDijkstra computes distances and predecessors from vertex 0.
func ExampleDijkstra() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(1, 2, 3)
	_ = g.AddEdge(0, 2, 10)

	dist, prev, _ := dijkstra.Dijkstra(g, dijkstra.Source(0))
	fmt.Println(dist, prev)
	// Output: [0 2 5] [- 0 1]
}

// ExampleAllPairs prints the shortest-path matrix of a three-vertex path.
func ExampleAllPairs() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)

	D, P, _ := dijkstra.AllPairs(context.Background(), g)
	fmt.Print(D)
	fmt.Print(P)
	// Output:
	// [0, 1, 2]
	// [1, 0, 1]
	// [2, 1, 0]
	// [-, 0, 1]
	// [1, -, 1]
	// [1, 2, -]
}
