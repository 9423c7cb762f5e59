// Package cellslam orders single cells along a learned manifold.
//
// What is cellslam?
//
//	Given a low-dimensional embedding of N cells (posterior means, optionally
//	posterior variances), cellslam replaces straight-line distances with
//	shortest-path distances through a neighbourhood graph, and then assigns
//	every cell a signed pseudo-time relative to a chosen start cell: the
//	magnitude is the corrected distance, the sign says on which side of the
//	start the cell lies.
//
// Packages
//
//	matrix/       - Dense distance matrices, predecessor matrices, Floyd–Warshall
//	embedding/    - immutable embedding store (gonum), CSV input
//	distance/     - metric registry and pairwise distances
//	core/         - thread-safe undirected weighted index graph
//	knn/          - k-nearest-neighbour graphs
//	prim_kruskal/ - minimum spanning trees and MST augmentation
//	dijkstra/     - single-source and parallel all-pairs shortest paths
//	correction/   - the lazy, cached correction pipeline
//	pseudotime/   - signed pseudo-time from (distances, predecessors)
//	cache/        - file-backed result cache
//	config/       - TOML configuration
//	cmd/cellslam  - command-line interface
//
// Quick start
//
//	e, _ := embedding.ReadCSV(f)
//	c, _ := correction.New(e, correction.WithK(10))
//	pt, _ := c.PseudoTime(ctx, start)
package cellslam
