package dijkstra

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cellslam/core"
	"github.com/katalvlaran/cellslam/matrix"
)

// AllPairs runs Dijkstra from every vertex of g and assembles the
// shortest-path distance matrix and predecessor matrix.
//
// Row i of both matrices is the result of Dijkstra from source i, so
// pred.At(i, j) is the vertex right before j on the shortest path i→j.
// Sources run concurrently (bounded by WithWorkers); each goroutine writes
// only its own row. Cancelling ctx aborts the remaining sources.
//
// Complexity: O(V·(V + E) log V) time, O(V²) output.
func AllPairs(ctx context.Context, g *core.Graph, opts ...Option) (*matrix.Dense, *matrix.PredMatrix, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.VertexCount()

	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	pred, err := matrix.NewPredMatrix(n, n)
	if err != nil {
		return nil, nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for src := 0; src < n; src++ {
		src := src
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, p, err := Dijkstra(g, Source(src), WithMaxDistance(cfg.MaxDistance))
			if err != nil {
				return err
			}
			if err = dist.SetRow(src, d); err != nil {
				return err
			}

			return pred.SetRow(src, p)
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, nil, err
	}

	return dist, pred, nil
}
