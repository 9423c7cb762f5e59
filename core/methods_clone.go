// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock on the source for the snapshot.

package core

// Clone returns a deep copy of the graph.
// Complexity: O(n + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := make([]map[int]float64, g.n)
	for u := range g.adj {
		adj[u] = make(map[int]float64, len(g.adj[u]))
		for v, w := range g.adj[u] {
			adj[u][v] = w
		}
	}

	return &Graph{n: g.n, adj: adj, edges: g.edges}
}
