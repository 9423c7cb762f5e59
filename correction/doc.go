// Package correction turns an embedding into corrected manifold distances:
// shortest-path lengths through a neighbourhood graph, together with the
// predecessor matrix that records every shortest path.
//
// Pipeline
//
//  1. Pairwise distances between posterior means (distance.Pairwise).
//  2. Graph:
//     - default: kNN graph (knn.Build) with the edges of the minimum
//     spanning tree of the complete graph added (prim_kruskal.Augment),
//     which guarantees connectivity;
//     - WithMST(false): the bare kNN graph, possibly disconnected;
//     - WithTree(): the minimum spanning tree alone.
//     The tree comes from dense Prim on the matrix, or from Prim or Kruskal
//     on the complete graph (WithMSTMethod).
//  3. All-pairs shortest paths on the graph (dijkstra.AllPairs or
//     matrix.FloydWarshall, chosen by WithMethod).
//
// Pseudo-time
//
//	PseudoTime and Branches always read the tree correction (TreeCorrected),
//	whatever graph Corrected uses. Paths in a tree are unique, so the branch
//	partition does not depend on shortcut edges or on the shortest-path method.
//
// Laziness and caching
//
//	A Corrector computes each stage at most once and keeps it. Results are
//	handed out as copies, so callers may modify them freely. When a cache is
//	configured the corrected Result is stored under a key derived from the
//	embedding values and every option that changes the output.
//
// Errors
//
//	ErrNilEmbedding, ErrBadK, ErrUnknownMethod, ErrUnknownMSTMethod, plus the wrapped errors of
//	the underlying packages (distance, knn, prim_kruskal, dijkstra,
//	pseudotime).
package correction
