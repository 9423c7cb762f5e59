// Package dijkstra provides single-source and all-pairs shortest paths over
// the undirected, non-negatively weighted index graphs of package core.
//
// What & Why
//
//	The corrected manifold distance between two cells is the length of the
//	shortest path between them in the kNN (or MST) graph. Dijkstra from a
//	single source yields one row of that matrix together with the
//	predecessor of every vertex on its shortest path; AllPairs runs every
//	source in parallel and stitches the rows into a matrix.Dense and a
//	matrix.PredMatrix.
//
// API
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(3))
//	D, P, err := dijkstra.AllPairs(ctx, g, dijkstra.WithWorkers(8))
//
// Conventions
//
//   - Unreachable vertices: distance +Inf, predecessor matrix.NoPred.
//   - The source itself: distance 0, predecessor matrix.NoPred.
//   - Ties: the heap orders (distance, index) and only strict improvements
//     relax, so the output is identical across runs and worker counts.
//
// Complexity
//
//	Dijkstra: O((V + E) log V) time, O(V + E) memory.
//	AllPairs: V runs of Dijkstra plus O(V²) for the matrices.
package dijkstra
