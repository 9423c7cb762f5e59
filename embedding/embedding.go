package embedding

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for embedding construction.
var (
	// ErrEmpty indicates an embedding with no samples or no dimensions.
	ErrEmpty = errors.New("embedding: empty embedding")

	// ErrShape indicates mismatched or ragged input.
	ErrShape = errors.New("embedding: shape mismatch")

	// ErrDimension indicates an invalid dimension selection.
	ErrDimension = errors.New("embedding: invalid dimension selection")

	// ErrNaN indicates a non-finite value, or a negative variance.
	ErrNaN = errors.New("embedding: non-finite value")
)

// Options configures New.
type Options struct {
	Variances  *mat.Dense
	Dimensions []int
}

// Option configures Options.
type Option func(*Options)

// WithVariances attaches per-sample, per-dimension posterior variances.
func WithVariances(v *mat.Dense) Option {
	return func(o *Options) { o.Variances = v }
}

// WithDimensions selects the latent dimensions to keep, in order.
func WithDimensions(idx ...int) Option {
	return func(o *Options) { o.Dimensions = append([]int(nil), idx...) }
}

// Embedding is an immutable N×Q set of latent positions.
type Embedding struct {
	means *mat.Dense
	vars  *mat.Dense // nil when no variances were supplied
}

// New validates means (and options) and returns an Embedding owning private
// copies of the data.
//
// Steps:
//  1. Reject empty or non-finite means.
//  2. Validate and apply the dimension selection.
//  3. Validate variances against the means shape, then project them too.
func New(means *mat.Dense, opts ...Option) (*Embedding, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Means
	if means == nil || means.IsEmpty() {
		return nil, ErrEmpty
	}
	n, q := means.Dims()
	if err := checkFinite(means, false); err != nil {
		return nil, fmt.Errorf("means: %w", err)
	}

	// 2. Dimensions
	dims := cfg.Dimensions
	if dims == nil {
		dims = make([]int, q)
		for j := range dims {
			dims[j] = j
		}
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: no dimensions selected", ErrEmpty)
	}
	seen := make(map[int]bool, len(dims))
	for _, j := range dims {
		if j < 0 || j >= q || seen[j] {
			return nil, fmt.Errorf("%w: %d (Q=%d)", ErrDimension, j, q)
		}
		seen[j] = true
	}
	e := &Embedding{means: project(means, dims)}

	// 3. Variances
	if cfg.Variances != nil {
		vn, vq := cfg.Variances.Dims()
		if vn != n || vq != q {
			return nil, fmt.Errorf("%w: variances %dx%d, means %dx%d", ErrShape, vn, vq, n, q)
		}
		if err := checkFinite(cfg.Variances, true); err != nil {
			return nil, fmt.Errorf("variances: %w", err)
		}
		e.vars = project(cfg.Variances, dims)
	}

	return e, nil
}

// FromRows is New over a [][]float64 of means.
func FromRows(rows [][]float64, opts ...Option) (*Embedding, error) {
	m, err := denseFromRows(rows)
	if err != nil {
		return nil, err
	}

	return New(m, opts...)
}

// Len returns the number of samples N.
func (e *Embedding) Len() int {
	n, _ := e.means.Dims()

	return n
}

// Dims returns the number of (selected) latent dimensions.
func (e *Embedding) Dims() int {
	_, q := e.means.Dims()

	return q
}

// HasVariances reports whether posterior variances are available.
func (e *Embedding) HasVariances() bool { return e.vars != nil }

// Mean returns a copy of sample i's posterior mean. It panics if i is out of
// range, like mat.Dense.Row.
func (e *Embedding) Mean(i int) []float64 {
	return mat.Row(nil, i, e.means)
}

// Variance returns a copy of sample i's posterior variance, or nil.
func (e *Embedding) Variance(i int) []float64 {
	if e.vars == nil {
		return nil
	}

	return mat.Row(nil, i, e.vars)
}

// Means returns a copy of the N×Q mean matrix.
func (e *Embedding) Means() *mat.Dense {
	return mat.DenseCopyOf(e.means)
}

// Variances returns a copy of the N×Q variance matrix, or nil.
func (e *Embedding) Variances() *mat.Dense {
	if e.vars == nil {
		return nil
	}

	return mat.DenseCopyOf(e.vars)
}

// project copies the selected columns of m into a new matrix.
func project(m *mat.Dense, dims []int) *mat.Dense {
	n, _ := m.Dims()
	out := mat.NewDense(n, len(dims), nil)
	for i := 0; i < n; i++ {
		for k, j := range dims {
			out.Set(i, k, m.At(i, j))
		}
	}

	return out
}

// checkFinite rejects NaN/Inf, and negative values when nonNegative is set.
func checkFinite(m *mat.Dense, nonNegative bool) error {
	n, q := m.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < q; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || (nonNegative && v < 0) {
				return fmt.Errorf("%w at (%d,%d): %g", ErrNaN, i, j, v)
			}
		}
	}

	return nil
}

// denseFromRows packs a rectangular [][]float64 into a mat.Dense.
func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	q := len(rows[0])
	data := make([]float64, 0, len(rows)*q)
	for i, r := range rows {
		if len(r) != q {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, i, len(r), q)
		}
		data = append(data, r...)
	}

	return mat.NewDense(len(rows), q, data), nil
}
