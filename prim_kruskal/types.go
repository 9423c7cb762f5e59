// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/cellslam/core"
)

// ErrInvalidGraph indicates a nil graph, nil matrix or non-square matrix.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph or square distance matrix")

// ErrDisconnected indicates that a spanning tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Forest bool   - with Kruskal, return a spanning forest instead of ErrDisconnected.
//
// Prim always grows from vertex 0.
type MSTOptions struct {
	Method string
	Forest bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithForest allows a spanning forest result (Kruskal only).
func WithForest() Option {
	return func(opts *MSTOptions) { opts.Forest = true }
}

// DefaultOptions returns Kruskal, no forest.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the configured MST algorithm on g.
// Unknown methods return ErrInvalidGraph.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		if cfg.Forest {
			return SpanningForest(g)
		}
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, 0)
	default:
		return nil, 0, ErrInvalidGraph
	}
}

// lessEdge orders edges by (Weight, From, To).
func lessEdge(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// normalize returns e with From < To.
func normalize(e core.Edge) core.Edge {
	if e.From > e.To {
		e.From, e.To = e.To, e.From
	}

	return e
}
