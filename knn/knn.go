package knn

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/cellslam/core"
	"github.com/katalvlaran/cellslam/matrix"
)

// ErrBadK indicates k < 1.
var ErrBadK = errors.New("knn: k must be >= 1")

// Options configures Build.
type Options struct {
	// Mutual keeps only edges where both endpoints list each other.
	Mutual bool
}

// Option configures Options.
type Option func(*Options)

// WithMutual restricts the graph to reciprocal nearest neighbours.
func WithMutual() Option {
	return func(o *Options) { o.Mutual = true }
}

// Neighbor is one entry of a kNN list.
type Neighbor struct {
	Index    int
	Distance float64
}

// Query returns the k nearest neighbours of every point, nearest first.
//
// Errors: ErrBadK; matrix.ErrNilMatrix / ErrNonSquare from validation.
func Query(d *matrix.Dense, k int) ([][]Neighbor, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("knn: %w", err)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, k)
	}
	n := d.Rows()
	if k > n-1 {
		k = n - 1
	}

	out := make([][]Neighbor, n)
	cand := make([]Neighbor, 0, n)
	for i := 0; i < n; i++ {
		row, err := d.Row(i)
		if err != nil {
			return nil, err
		}
		cand = cand[:0]
		for j, dist := range row {
			if j == i || math.IsInf(dist, 0) {
				continue
			}
			cand = append(cand, Neighbor{Index: j, Distance: dist})
		}
		sort.Slice(cand, func(a, b int) bool {
			if cand[a].Distance != cand[b].Distance {
				return cand[a].Distance < cand[b].Distance
			}

			return cand[a].Index < cand[b].Index
		})
		m := k
		if m > len(cand) {
			m = len(cand)
		}
		out[i] = append([]Neighbor(nil), cand[:m]...)
	}

	return out, nil
}

// Build returns the kNN graph of d.
//
// Steps:
//  1. Query the k nearest neighbours of every point.
//  2. Add {i,j} for every listed pair (union), or only reciprocal pairs (WithMutual).
//
// Errors: see Query; core errors for negative distances.
func Build(d *matrix.Dense, k int, opts ...Option) (*core.Graph, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Neighbour lists
	lists, err := Query(d, k)
	if err != nil {
		return nil, err
	}

	g, err := core.NewGraph(d.Rows())
	if err != nil {
		return nil, fmt.Errorf("knn: %w", err)
	}

	var listed []map[int]bool
	if cfg.Mutual {
		listed = make([]map[int]bool, len(lists))
		for i, l := range lists {
			listed[i] = make(map[int]bool, len(l))
			for _, nb := range l {
				listed[i][nb.Index] = true
			}
		}
	}

	// 2) Edges
	for i, l := range lists {
		for _, nb := range l {
			if cfg.Mutual && !listed[nb.Index][i] {
				continue
			}
			if err = g.AddEdge(i, nb.Index, nb.Distance); err != nil {
				return nil, fmt.Errorf("knn: point %d: %w", i, err)
			}
		}
	}

	return g, nil
}
