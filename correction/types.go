package correction

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/cellslam/cache"
	"github.com/katalvlaran/cellslam/distance"
	"github.com/katalvlaran/cellslam/matrix"
	"github.com/katalvlaran/cellslam/prim_kruskal"
)

// Sentinel errors.
var (
	// ErrNilEmbedding indicates New was called without an embedding.
	ErrNilEmbedding = errors.New("correction: embedding is nil")

	// ErrBadK indicates a neighbour count below 1.
	ErrBadK = errors.New("correction: k must be >= 1")

	// ErrUnknownMethod indicates an unrecognised shortest-path method.
	ErrUnknownMethod = errors.New("correction: unknown shortest-path method")

	// ErrUnknownMSTMethod indicates an unrecognised spanning-tree algorithm.
	ErrUnknownMSTMethod = errors.New("correction: unknown spanning-tree algorithm")
)

// Spanning-tree algorithms accepted by WithMSTMethod.
const (
	// MSTDense runs array-based Prim straight on the distance matrix.
	MSTDense = "dense"
	// MSTPrim runs heap-based Prim on the complete distance graph.
	MSTPrim = prim_kruskal.MethodPrim
	// MSTKruskal runs Kruskal on the complete distance graph, as a forest
	// when infinite distances split it.
	MSTKruskal = prim_kruskal.MethodKruskal
)

// MSTMethods lists the names accepted by WithMSTMethod.
var MSTMethods = []string{MSTDense, MSTPrim, MSTKruskal}

// ParseMSTMethod checks s (case-insensitive) against MSTMethods.
func ParseMSTMethod(s string) (string, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, m := range MSTMethods {
		if m == want {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMSTMethod, s)
}

// Method selects the all-pairs shortest-path algorithm.
type Method int

const (
	// MethodAuto uses Floyd–Warshall up to AutoFloydWarshallMax vertices and Dijkstra above.
	MethodAuto Method = iota
	// MethodDijkstra runs one Dijkstra per source, in parallel.
	MethodDijkstra
	// MethodFloydWarshall runs the dense O(n³) algorithm.
	MethodFloydWarshall
)

// AutoFloydWarshallMax is the largest vertex count for which MethodAuto picks Floyd–Warshall.
const AutoFloydWarshallMax = 128

var methodNames = map[Method]string{
	MethodAuto:          "auto",
	MethodDijkstra:      "dijkstra",
	MethodFloydWarshall: "floyd-warshall",
}

// String returns the method's configuration name.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps "auto", "dijkstra" or "floyd-warshall" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for m, name := range methodNames {
		if name == want {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// resolve turns MethodAuto into a concrete method for n vertices.
func (m Method) resolve(n int) Method {
	if m != MethodAuto {
		return m
	}
	if n <= AutoFloydWarshallMax {
		return MethodFloydWarshall
	}

	return MethodDijkstra
}

// Result holds corrected distances and their shortest-path predecessors.
// Predecessors.At(i, j) is the vertex right before j on the shortest path i→j.
type Result struct {
	Distances    *matrix.Dense      `json:"distances"`
	Predecessors *matrix.PredMatrix `json:"predecessors"`
}

// clone returns a deep copy.
func (r *Result) clone() *Result {
	return &Result{Distances: r.Distances.Clone(), Predecessors: r.Predecessors.Clone()}
}

// Options configures a Corrector.
type Options struct {
	Metric    distance.Metric
	K         int
	Mutual    bool
	MST       bool
	Tree      bool
	MSTMethod string
	Method    Method
	Workers   int
	Logger    *log.Logger
	Cache     cache.Cache
	CacheTTL  time.Duration
}

// Option configures Options.
type Option func(*Options)

// WithMetric sets the embedding distance metric.
func WithMetric(m distance.Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithK sets the number of nearest neighbours per sample.
func WithK(k int) Option {
	return func(o *Options) { o.K = k }
}

// WithMutualKNN keeps only reciprocal kNN pairs.
func WithMutualKNN() Option {
	return func(o *Options) { o.Mutual = true }
}

// WithMST toggles adding minimum spanning tree edges to the kNN graph.
func WithMST(on bool) Option {
	return func(o *Options) { o.MST = on }
}

// WithTree uses the minimum spanning tree alone as the graph.
func WithTree() Option {
	return func(o *Options) { o.Tree = true }
}

// WithMSTMethod selects the spanning-tree algorithm: MSTDense, MSTPrim or MSTKruskal.
// All three give a tree of the same total weight; they can differ between
// equal-weight edges.
func WithMSTMethod(name string) Option {
	return func(o *Options) { o.MSTMethod = name }
}

// WithMethod selects the shortest-path algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithWorkers bounds the parallelism of MethodDijkstra.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger for progress messages. nil silences logging.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithCache stores corrected results in c, expiring after ttl (0 = never).
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(o *Options) {
		o.Cache = c
		o.CacheTTL = ttl
	}
}

// DefaultOptions returns euclidean distances, k = 10, MST augmentation on
// with dense Prim, automatic method selection, a silent logger and no cache.
func DefaultOptions() Options {
	return Options{
		Metric:  distance.Registry[distance.Default],
		K:       10,
		MST:     true,
		MSTMethod: MSTDense,
		Method:  MethodAuto,
		Logger:  log.New(io.Discard),
		Cache:   cache.NewNullCache(),
	}
}
