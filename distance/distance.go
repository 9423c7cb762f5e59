// Package distance provides the metrics used to turn an embedding into a
// pairwise distance matrix.
package distance

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cellslam/embedding"
	"github.com/katalvlaran/cellslam/matrix"
)

// Sentinel errors.
var (
	// ErrUnknownMetric indicates a metric name that is not registered.
	ErrUnknownMetric = errors.New("distance: unknown metric")

	// ErrVariancesRequired indicates a variance-aware metric on an embedding without variances.
	ErrVariancesRequired = errors.New("distance: metric requires posterior variances")
)

// Func is a distance function between two mean vectors.
type Func func(x, y []float64) float64

// VarFunc is a distance function that also sees the posterior variances.
type VarFunc func(x, y, xvar, yvar []float64) float64

// Metric represents a named distance metric. Exactly one of Func and VarFunc is set.
type Metric struct {
	Name    string
	Func    Func
	VarFunc VarFunc
}

// NeedsVariances reports whether the metric consumes posterior variances.
func (m Metric) NeedsVariances() bool { return m.VarFunc != nil }

// Default is the metric used when none is configured.
const Default = "euclidean"

// Registry maps metric names to their implementations.
var Registry = map[string]Metric{
	"euclidean":            {Name: "euclidean", Func: Euclidean},
	"l2":                   {Name: "euclidean", Func: Euclidean},
	"sqeuclidean":          {Name: "sqeuclidean", Func: SquaredEuclidean},
	"manhattan":            {Name: "manhattan", Func: Manhattan},
	"l1":                   {Name: "manhattan", Func: Manhattan},
	"chebyshev":            {Name: "chebyshev", Func: Chebyshev},
	"cosine":               {Name: "cosine", Func: Cosine},
	"expected_sqeuclidean": {Name: "expected_sqeuclidean", VarFunc: ExpectedSquaredEuclidean},
}

// Get returns the metric registered under name.
func Get(name string) (Metric, error) {
	m, ok := Registry[name]
	if !ok {
		return Metric{}, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}

	return m, nil
}

// Names returns the registered metric names, sorted.
func Names() []string {
	out := make([]string, 0, len(Registry))
	for k := range Registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Euclidean is the L2 distance.
func Euclidean(x, y []float64) float64 { return floats.Distance(x, y, 2) }

// SquaredEuclidean is the squared L2 distance.
func SquaredEuclidean(x, y []float64) float64 {
	diff := floats.SubTo(make([]float64, len(x)), x, y)

	return floats.Dot(diff, diff)
}

// Manhattan is the L1 distance.
func Manhattan(x, y []float64) float64 { return floats.Distance(x, y, 1) }

// Chebyshev is the L∞ distance.
func Chebyshev(x, y []float64) float64 { return floats.Distance(x, y, math.Inf(1)) }

// Cosine is 1 - cos(x, y). Two zero vectors are at distance 0, a zero
// vector and a non-zero one at distance 1.
func Cosine(x, y []float64) float64 {
	nx, ny := floats.Norm(x, 2), floats.Norm(y, 2)
	switch {
	case nx == 0 && ny == 0:
		return 0
	case nx == 0 || ny == 0:
		return 1
	}
	d := 1 - floats.Dot(x, y)/(nx*ny)
	if d < 0 {
		return 0
	}

	return d
}

// ExpectedSquaredEuclidean is E||zi - zj||² for independent Gaussian
// posteriors: the squared mean distance plus both variances.
func ExpectedSquaredEuclidean(x, y, xvar, yvar []float64) float64 {
	return SquaredEuclidean(x, y) + floats.Sum(xvar) + floats.Sum(yvar)
}

// Pairwise returns the symmetric N×N matrix of m between every pair of
// samples of e. The diagonal is 0 for every metric, including
// expected_sqeuclidean.
func Pairwise(e *embedding.Embedding, m Metric) (*matrix.Dense, error) {
	if e == nil {
		return nil, embedding.ErrEmpty
	}
	if m.Func == nil && m.VarFunc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, m.Name)
	}
	if m.NeedsVariances() && !e.HasVariances() {
		return nil, fmt.Errorf("%w: %s", ErrVariancesRequired, m.Name)
	}

	n := e.Len()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	means := make([][]float64, n)
	vars := make([][]float64, n)
	for i := 0; i < n; i++ {
		means[i] = e.Mean(i)
		vars[i] = e.Variance(i)
	}

	var d float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.VarFunc != nil {
				d = m.VarFunc(means[i], means[j], vars[i], vars[j])
			} else {
				d = m.Func(means[i], means[j])
			}
			if err = out.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = out.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
