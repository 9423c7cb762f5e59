package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a graph was requested with n <= 0 vertices.
	ErrBadVertexCount = errors.New("core: vertex count must be positive")

	// ErrVertexOutOfRange indicates an operation referenced an index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// Edge is an undirected weighted connection between two vertices.
//
// Edges returned by Graph.Edges are normalized with From < To. Edges returned
// by Graph.Neighbors(u) have From == u.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is an undirected weighted graph over the vertex set [0, n).
//
// adj[u][v] holds the weight of edge {u,v}; both directions are stored.
type Graph struct {
	mu    sync.RWMutex
	n     int
	adj   []map[int]float64
	edges int
}

// NewGraph creates an edgeless graph with n vertices.
// Errors: ErrBadVertexCount if n <= 0.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrBadVertexCount
	}
	adj := make([]map[int]float64, n)
	for i := range adj {
		adj[i] = make(map[int]float64)
	}

	return &Graph{n: n, adj: adj}, nil
}
