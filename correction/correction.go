package correction

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cellslam/cache"
	"github.com/katalvlaran/cellslam/core"
	"github.com/katalvlaran/cellslam/dijkstra"
	"github.com/katalvlaran/cellslam/distance"
	"github.com/katalvlaran/cellslam/embedding"
	"github.com/katalvlaran/cellslam/knn"
	"github.com/katalvlaran/cellslam/matrix"
	"github.com/katalvlaran/cellslam/prim_kruskal"
	"github.com/katalvlaran/cellslam/pseudotime"
)

const cachePrefix = "corrected"

// Corrector computes corrected manifold distances for one embedding.
// It is safe for concurrent use; every stage is computed at most once.
type Corrector struct {
	e    *embedding.Embedding
	opts Options

	mu         sync.Mutex
	dist       *matrix.Dense
	mst        []core.Edge
	graph      *core.Graph
	tree       *core.Graph
	result     *Result
	treeResult *Result
}

// New validates the options and returns a Corrector. Nothing is computed yet.
func New(e *embedding.Embedding, opts ...Option) (*Corrector, error) {
	if e == nil {
		return nil, ErrNilEmbedding
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.K < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, cfg.K)
	}
	if _, ok := methodNames[cfg.Method]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, cfg.Method)
	}
	mstMethod, err := ParseMSTMethod(cfg.MSTMethod)
	if err != nil {
		return nil, err
	}
	cfg.MSTMethod = mstMethod
	if cfg.Metric.Func == nil && cfg.Metric.VarFunc == nil {
		return nil, fmt.Errorf("%w: %q", distance.ErrUnknownMetric, cfg.Metric.Name)
	}
	if cfg.Metric.NeedsVariances() && !e.HasVariances() {
		return nil, fmt.Errorf("%w: %s", distance.ErrVariancesRequired, cfg.Metric.Name)
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewNullCache()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	return &Corrector{e: e, opts: cfg}, nil
}

// Len returns the number of samples.
func (c *Corrector) Len() int { return c.e.Len() }

// Method returns the shortest-path method that Corrected uses.
func (c *Corrector) Method() Method { return c.opts.Method.resolve(c.e.Len()) }

// Distances returns a copy of the pairwise embedding distances.
func (c *Corrector) Distances(ctx context.Context) (*matrix.Dense, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, err := c.distances(ctx)
	if err != nil {
		return nil, err
	}

	return d.Clone(), nil
}

// Graph returns a copy of the correction graph.
func (c *Corrector) Graph(ctx context.Context) (*core.Graph, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, err := c.buildGraph(ctx)
	if err != nil {
		return nil, err
	}

	return g.Clone(), nil
}

// Corrected returns a copy of the corrected distances and predecessors on
// the configured graph.
func (c *Corrector) Corrected(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := c.correct(ctx, c.opts.Tree)
	if err != nil {
		return nil, err
	}

	return r.clone(), nil
}

// TreeCorrected returns a copy of the corrected distances and predecessors
// on the minimum spanning tree alone. With WithTree it equals Corrected.
func (c *Corrector) TreeCorrected(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := c.correct(ctx, true)
	if err != nil {
		return nil, err
	}

	return r.clone(), nil
}

// PseudoTime assigns signed pseudo-time relative to start on the tree correction.
func (c *Corrector) PseudoTime(ctx context.Context, start int) ([]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := c.correct(ctx, true)
	if err != nil {
		return nil, err
	}

	return pseudotime.Assign(r.Distances, r.Predecessors, start)
}

// Branches reports the branch split PseudoTime uses for start.
func (c *Corrector) Branches(ctx context.Context, start int) (pseudotime.Split, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := c.correct(ctx, true)
	if err != nil {
		return pseudotime.Split{}, err
	}

	return pseudotime.Branches(r.Predecessors, start)
}

// Path returns the corrected shortest path from source to target on the
// tree (tree true) or the configured graph, with its length.
// An unreachable target gives a nil path and +Inf.
func (c *Corrector) Path(ctx context.Context, source, target int, tree bool) ([]int, float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := c.correct(ctx, tree || c.opts.Tree)
	if err != nil {
		return nil, 0, err
	}
	length, err := r.Distances.At(source, target)
	if err != nil {
		return nil, 0, err
	}
	path, err := r.Predecessors.Path(source, target)
	if err != nil {
		return nil, 0, err
	}

	return path, length, nil
}

// correct returns the stored Result for the tree or the configured graph.
// Caller holds c.mu.
//
// Steps:
//  1. Cache lookup (a corrupt payload is logged and recomputed).
//  2. Graph construction.
//  3. All-pairs shortest paths with the resolved method.
//  4. Cache store.
func (c *Corrector) correct(ctx context.Context, tree bool) (*Result, error) {
	slot := &c.result
	if tree {
		slot = &c.treeResult
	}
	if *slot != nil {
		return *slot, nil
	}
	logger := c.opts.Logger
	method := c.Method()

	// 1. Cache
	key, err := c.cacheKey(method, tree)
	if err != nil {
		return nil, err
	}
	if raw, hit, err := c.opts.Cache.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "err", err)
	} else if hit {
		var r Result
		if err = json.Unmarshal(raw, &r); err == nil && r.Distances != nil && r.Predecessors != nil &&
			matrix.ValidatePair(r.Distances, r.Predecessors) == nil && r.Distances.Rows() == c.e.Len() {
			logger.Debug("cache hit", "key", key, "tree", tree)
			*slot = &r
			return &r, nil
		}
		logger.Warn("ignoring corrupt cache entry", "key", key)
	}

	// 2. Graph
	var g *core.Graph
	if tree {
		g, err = c.buildTree(ctx)
	} else {
		g, err = c.buildGraph(ctx)
	}
	if err != nil {
		return nil, err
	}

	// 3. Shortest paths
	logger.Debug("shortest paths", "method", method, "n", g.VertexCount(), "tree", tree)
	var r *Result
	switch method {
	case MethodFloydWarshall:
		r, err = floydWarshall(ctx, g)
	default:
		r, err = allPairsDijkstra(ctx, g, c.opts.Workers)
	}
	if err != nil {
		return nil, err
	}
	*slot = r

	// 4. Store
	if raw, err := json.Marshal(r); err != nil {
		logger.Warn("cache encode failed", "err", err)
	} else if err = c.opts.Cache.Set(ctx, key, raw, c.opts.CacheTTL); err != nil {
		logger.Warn("cache write failed", "err", err)
	}

	return r, nil
}

// distances computes the pairwise matrix once. Caller holds c.mu.
func (c *Corrector) distances(ctx context.Context) (*matrix.Dense, error) {
	if c.dist != nil {
		return c.dist, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, err := distance.Pairwise(c.e, c.opts.Metric)
	if err != nil {
		return nil, err
	}
	c.opts.Logger.Debug("pairwise distances", "metric", c.opts.Metric.Name, "n", c.e.Len(), "dims", c.e.Dims())
	c.dist = d

	return d, nil
}

// spanningTree computes the minimum spanning tree (or forest) of the
// complete distance graph once. Caller holds c.mu.
func (c *Corrector) spanningTree(ctx context.Context) ([]core.Edge, error) {
	if c.mst != nil {
		return c.mst, nil
	}
	d, err := c.distances(ctx)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var (
		tree  []core.Edge
		total float64
	)
	switch c.opts.MSTMethod {
	case MSTPrim:
		g, err := completeGraph(d)
		if err != nil {
			return nil, err
		}
		tree, total, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
		if err != nil {
			return nil, err
		}
	case MSTKruskal:
		g, err := completeGraph(d)
		if err != nil {
			return nil, err
		}
		mstOpts := []prim_kruskal.Option{prim_kruskal.WithMethod(prim_kruskal.MethodKruskal)}
		if !g.IsConnected() {
			mstOpts = append(mstOpts, prim_kruskal.WithForest())
		}
		tree, total, err = prim_kruskal.Compute(g, mstOpts...)
		if err != nil {
			return nil, err
		}
	default:
		if tree, total, err = prim_kruskal.PrimDense(d); err != nil {
			return nil, err
		}
	}
	c.opts.Logger.Debug("minimum spanning tree", "algorithm", c.opts.MSTMethod, "edges", len(tree), "weight", total)
	c.mst = tree

	return tree, nil
}

// buildTree builds the tree-only graph once. Caller holds c.mu.
func (c *Corrector) buildTree(ctx context.Context) (*core.Graph, error) {
	if c.tree != nil {
		return c.tree, nil
	}
	tree, err := c.spanningTree(ctx)
	if err != nil {
		return nil, err
	}
	g, err := prim_kruskal.TreeGraph(c.e.Len(), tree)
	if err != nil {
		return nil, err
	}
	c.checkConnected(g)
	c.tree = g

	return g, nil
}

// buildGraph computes the configured correction graph once. Caller holds c.mu.
func (c *Corrector) buildGraph(ctx context.Context) (*core.Graph, error) {
	if c.opts.Tree {
		return c.buildTree(ctx)
	}
	if c.graph != nil {
		return c.graph, nil
	}
	d, err := c.distances(ctx)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var knnOpts []knn.Option
	if c.opts.Mutual {
		knnOpts = append(knnOpts, knn.WithMutual())
	}
	g, err := knn.Build(d, c.opts.K, knnOpts...)
	if err != nil {
		return nil, err
	}
	c.opts.Logger.Debug("knn graph", "k", c.opts.K, "mutual", c.opts.Mutual, "edges", g.EdgeCount())
	if c.opts.MST {
		tree, err := c.spanningTree(ctx)
		if err != nil {
			return nil, err
		}
		added, err := prim_kruskal.Augment(g, tree)
		if err != nil {
			return nil, err
		}
		c.opts.Logger.Debug("mst augmentation", "added", added)
	}
	c.checkConnected(g)
	c.graph = g

	return g, nil
}

func (c *Corrector) checkConnected(g *core.Graph) {
	if !g.IsConnected() {
		c.opts.Logger.Warn("correction graph is disconnected; unreachable pairs get +Inf",
			"components", len(g.ConnectedComponents()))
	}
	c.opts.Logger.Info("graph built", "vertices", g.VertexCount(), "edges", g.EdgeCount())
}

// completeGraph holds every finite off-diagonal entry of d as an edge.
func completeGraph(d *matrix.Dense) (*core.Graph, error) {
	n := d.Rows()
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		row, err := d.Row(i)
		if err != nil {
			return nil, err
		}
		for j := i + 1; j < n; j++ {
			if math.IsInf(row[j], 1) {
				continue
			}
			if err = g.AddEdge(i, j, row[j]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// cacheKey hashes the embedding values and every option that changes the
// result. The tree correction ignores the kNN settings.
func (c *Corrector) cacheKey(method Method, tree bool) (string, error) {
	means := c.e.Means()
	var vars []float64
	if v := c.e.Variances(); v != nil {
		vars = rawData(v)
	}
	parts := []interface{}{rawData(means), vars, c.opts.Metric.Name, c.opts.MSTMethod, method.String()}
	if tree {
		parts = append(parts, "tree")
	} else {
		parts = append(parts, c.opts.K, c.opts.Mutual, c.opts.MST)
	}

	return cache.Key(cachePrefix, parts...)
}

// rawData returns the row-major values of a freshly copied matrix.
func rawData(m *mat.Dense) []float64 {
	r, q := m.Dims()
	raw := m.RawMatrix()
	if raw.Stride == q {
		return raw.Data[:r*q]
	}
	out := make([]float64, 0, r*q)
	for i := 0; i < r; i++ {
		out = append(out, raw.Data[i*raw.Stride:i*raw.Stride+q]...)
	}

	return out
}

func floydWarshall(ctx context.Context, g *core.Graph) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, err := g.DistanceMatrix()
	if err != nil {
		return nil, err
	}
	p, err := matrix.NewPredMatrix(d.Rows(), d.Cols())
	if err != nil {
		return nil, err
	}
	if err = matrix.FloydWarshall(d, p); err != nil {
		return nil, err
	}

	return &Result{Distances: d, Predecessors: p}, nil
}

func allPairsDijkstra(ctx context.Context, g *core.Graph, workers int) (*Result, error) {
	d, p, err := dijkstra.AllPairs(ctx, g, dijkstra.WithWorkers(workers))
	if err != nil {
		return nil, err
	}

	return &Result{Distances: d, Predecessors: p}, nil
}
