// Package prim_kruskal computes minimum spanning trees (and forests) for the
// manifold correction graphs.
//
// What & Why
//
//	The kNN graph over an embedding can fall apart into islands. Adding the
//	edges of the minimum spanning tree of the full pairwise-distance graph
//	reconnects it with the cheapest possible bridges, and the MST alone is the
//	graph used by the tree correction.
//
// Algorithms Provided
//
//   - PrimDense(d *matrix.Dense) ([]core.Edge, float64, error)
//     Array-based Prim over the complete graph described by a distance
//     matrix. O(n²) time, O(n) extra space: the right choice for dense input
//     where E = n². +Inf entries are non-edges; if they disconnect the graph
//     the result is a spanning forest (each tree grown from its smallest
//     unvisited vertex).
//
//   - Prim(g *core.Graph, root int) ([]core.Edge, float64, error)
//     Heap-based Prim on a sparse graph, O(E log V). ErrDisconnected if g
//     is not connected.
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//     Sort + union-find, O(E log E). ErrDisconnected if g is not connected.
//     SpanningForest is the same without the connectivity requirement.
//
//   - Augment(g, tree) adds the tree edges that are not yet in g.
//
// Determinism
//
//	Ties are broken by (weight, From, To) everywhere, so equal inputs give
//	equal trees. Edges are reported with From < To, in the order the
//	algorithm accepted them.
//
// Errors
//
//	ErrInvalidGraph  - nil graph/matrix or a non-square matrix.
//	ErrDisconnected  - Prim/Kruskal on a disconnected graph.
//	core.ErrVertexOutOfRange - Prim root outside [0, n).
package prim_kruskal
