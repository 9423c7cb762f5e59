// Package core defines the index-addressed, undirected, weighted Graph used to
// correct distances on a learned manifold.
//
// Vertices are the integers [0, n), one per embedded sample, fixed at
// construction. Edges carry non-negative float64 weights (embedding
// distances). Self-loops are rejected; adding an edge that already exists
// keeps the smaller weight, which is what a symmetric kNN union or an MST
// augmentation needs.
//
// Determinism:
//
//	Neighbors(u) is sorted by neighbour index; Edges() is sorted by
//	(From, To) with From < To; ConnectedComponents() orders components by
//	their smallest vertex and vertices ascending within each.
//
// Thread safety:
//
//	All methods take an internal sync.RWMutex, so a Graph may be built from
//	several goroutines and read concurrently (the all-pairs Dijkstra does).
//
// Errors:
//
//	ErrBadVertexCount   - n <= 0 at construction.
//	ErrVertexOutOfRange - an index outside [0, n).
//	ErrLoopNotAllowed   - u == v.
//	ErrBadWeight        - negative, NaN or infinite weight.
package core
