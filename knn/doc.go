// Package knn builds k-nearest-neighbour graphs over a pairwise distance matrix.
//
// What
//
//   - Query returns, for each point, its k nearest other points (ties broken
//     by the smaller index, non-finite distances skipped).
//   - Build turns those lists into an undirected core.Graph whose edge
//     weights are the distances. By default an edge {i,j} exists when j is
//     among the k nearest of i OR i is among the k nearest of j (the union
//     a shortest-path search over an undirected view of the directed kNN
//     graph sees). WithMutual keeps only the reciprocal pairs.
//
// k is clamped to n-1; k < 1 is ErrBadK.
//
// Complexity
//
//   - Time O(n² log n), Space O(n·k).
package knn
