package correction_test

import (
	"bytes"
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellslam/cache"
	"github.com/katalvlaran/cellslam/correction"
	"github.com/katalvlaran/cellslam/distance"
	"github.com/katalvlaran/cellslam/embedding"
	"github.com/katalvlaran/cellslam/matrix"
)

var ctx = context.Background()

func points(t *testing.T, rows ...[]float64) *embedding.Embedding {
	t.Helper()
	e, err := embedding.FromRows(rows)
	require.NoError(t, err)

	return e
}

func at(t *testing.T, d *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}

func predAt(t *testing.T, p *matrix.PredMatrix, i, j int) matrix.Pred {
	t.Helper()
	v, err := p.At(i, j)
	require.NoError(t, err)

	return v
}

// memCache is an in-memory cache.Cache that counts hits.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if ok {
		m.hits++
	}

	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	m.sets++

	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)

	return nil
}

func (m *memCache) Close() error { return nil }

var _ cache.Cache = (*memCache)(nil)

func TestCorrected_PathGraphBothMethods(t *testing.T) {
	e := points(t, []float64{0}, []float64{1}, []float64{2}, []float64{3})
	for _, m := range []correction.Method{correction.MethodDijkstra, correction.MethodFloydWarshall} {
		t.Run(m.String(), func(t *testing.T) {
			c, err := correction.New(e, correction.WithK(1), correction.WithMethod(m))
			require.NoError(t, err)
			assert.Equal(t, m, c.Method())

			r, err := c.Corrected(ctx)
			require.NoError(t, err)
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					assert.Equal(t, math.Abs(float64(i-j)), at(t, r.Distances, i, j))
				}
			}
			assert.Equal(t, matrix.Via(2), predAt(t, r.Predecessors, 0, 3))
			assert.Equal(t, matrix.Via(1), predAt(t, r.Predecessors, 3, 0))
			assert.True(t, predAt(t, r.Predecessors, 2, 2).IsNone())

			pt, err := c.PseudoTime(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, []float64{-1, 0, 1, 2}, pt)
		})
	}
}

func TestCorrected_TreeVersusKNN(t *testing.T) {
	e := points(t, []float64{0, 0}, []float64{1, 0}, []float64{1, 1})

	full, err := correction.New(e, correction.WithK(2))
	require.NoError(t, err)
	r, err := full.Corrected(ctx)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, at(t, r.Distances, 0, 2), 1e-12)

	tree, err := correction.New(e, correction.WithTree())
	require.NoError(t, err)
	r, err = tree.Corrected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, at(t, r.Distances, 0, 2))
	assert.Equal(t, matrix.Via(1), predAt(t, r.Predecessors, 0, 2))

	g, err := tree.Graph(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

// yShape is a stem 0-1-2-3 with two arms 4,5 and 6,7 leaving node 3.
// Every tree edge has length 1; every other pair is farther apart.
func yShape(t *testing.T) *embedding.Embedding {
	return points(t,
		[]float64{-3, 0}, []float64{-2, 0}, []float64{-1, 0}, []float64{0, 0},
		[]float64{0, 1}, []float64{0, 2},
		[]float64{0, -1}, []float64{0, -2},
	)
}

func TestPseudoTime_YShapeUsesTree(t *testing.T) {
	want := []float64{-3, -2, -1, 0, 1, 2, 1, 2}
	cases := map[string][]correction.Option{
		"knn":           {correction.WithK(3)},
		"knn-dijkstra":  {correction.WithK(3), correction.WithMethod(correction.MethodDijkstra)},
		"mutual-no-mst": {correction.WithK(2), correction.WithMutualKNN(), correction.WithMST(false)},
		"tree":          {correction.WithTree()},
		"tree-kruskal":  {correction.WithTree(), correction.WithMSTMethod(correction.MSTKruskal)},
		"prim-on-graph": {correction.WithMSTMethod(correction.MSTPrim)},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := correction.New(yShape(t), opts...)
			require.NoError(t, err)
			pt, err := c.PseudoTime(ctx, 3)
			require.NoError(t, err)
			assert.Equal(t, want, pt)

			split, err := c.Branches(ctx, 3)
			require.NoError(t, err)
			assert.Equal(t, []int{2, 4}, split.Junctions)
			assert.True(t, split.HasLeft)
			assert.Equal(t, 2, split.Left)
		})
	}
}

func TestTreeCorrected_IgnoresShortcuts(t *testing.T) {
	c, err := correction.New(yShape(t), correction.WithK(3))
	require.NoError(t, err)

	full, err := c.Corrected(ctx)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, at(t, full.Distances, 2, 4), 1e-12)

	tree, err := c.TreeCorrected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, at(t, tree.Distances, 2, 4))
	assert.Equal(t, matrix.Via(3), predAt(t, tree.Predecessors, 2, 4))

	path, length, err := c.Path(ctx, 0, 5, true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, path)
	assert.Equal(t, 5.0, length)

	_, _, err = c.Path(ctx, 0, 8, false)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestPseudoTime_FreshSliceEachCall(t *testing.T) {
	c, err := correction.New(yShape(t))
	require.NoError(t, err)
	pt, err := c.PseudoTime(ctx, 3)
	require.NoError(t, err)
	pt[0] = 99

	again, err := c.PseudoTime(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, -3.0, again[0])

	tree, err := c.TreeCorrected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3.0, at(t, tree.Distances, 3, 0))
}

func TestPath_Unreachable(t *testing.T) {
	e := points(t, []float64{0}, []float64{1}, []float64{10}, []float64{11})
	c, err := correction.New(e, correction.WithK(1), correction.WithMST(false))
	require.NoError(t, err)

	path, length, err := c.Path(ctx, 0, 3, false)
	require.NoError(t, err)
	assert.Nil(t, path)
	assert.True(t, math.IsInf(length, 1))

	path, length, err = c.Path(ctx, 0, 3, true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
	assert.Equal(t, 11.0, length)
}

func TestMSTMethods_SameTreeWeight(t *testing.T) {
	e := points(t, []float64{0, 0}, []float64{2, 1}, []float64{5, 0}, []float64{1, 4}, []float64{6, 3})
	var want float64
	for i, m := range correction.MSTMethods {
		c, err := correction.New(e, correction.WithTree(), correction.WithMSTMethod(m))
		require.NoError(t, err)
		g, err := c.Graph(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, g.EdgeCount(), m)
		assert.True(t, g.IsConnected(), m)
		if i == 0 {
			want = g.TotalWeight()
			continue
		}
		assert.InDelta(t, want, g.TotalWeight(), 1e-9, m)
	}

	_, err := correction.New(e, correction.WithMSTMethod("boruvka"))
	assert.ErrorIs(t, err, correction.ErrUnknownMSTMethod)
}

func TestCorrected_MSTReconnects(t *testing.T) {
	e := points(t, []float64{0}, []float64{1}, []float64{10}, []float64{11})

	bare, err := correction.New(e, correction.WithK(1), correction.WithMST(false))
	require.NoError(t, err)
	r, err := bare.Corrected(ctx)
	require.NoError(t, err)
	assert.True(t, math.IsInf(at(t, r.Distances, 0, 2), 1))
	assert.True(t, predAt(t, r.Predecessors, 0, 2).IsNone())

	joined, err := correction.New(e, correction.WithK(1))
	require.NoError(t, err)
	r, err = joined.Corrected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, at(t, r.Distances, 0, 2))
	assert.Equal(t, matrix.Via(1), predAt(t, r.Predecessors, 0, 2))

	g, err := joined.Graph(ctx)
	require.NoError(t, err)
	assert.True(t, g.IsConnected())
}

func TestCorrected_MutualKNN(t *testing.T) {
	e := points(t, []float64{0}, []float64{1}, []float64{2}, []float64{10})
	c, err := correction.New(e, correction.WithK(1), correction.WithMutualKNN(), correction.WithMST(false))
	require.NoError(t, err)
	g, err := c.Graph(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestCorrected_ReturnsCopies(t *testing.T) {
	e := points(t, []float64{0}, []float64{1}, []float64{2})
	c, err := correction.New(e)
	require.NoError(t, err)

	r1, err := c.Corrected(ctx)
	require.NoError(t, err)
	require.NoError(t, r1.Distances.Set(0, 1, 42))
	require.NoError(t, r1.Predecessors.Set(0, 1, matrix.NoPred))

	r2, err := c.Corrected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, at(t, r2.Distances, 0, 1))
	assert.Equal(t, matrix.Via(0), predAt(t, r2.Predecessors, 0, 1))

	d, err := c.Distances(ctx)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 2, -1))
	d2, err := c.Distances(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, at(t, d2, 0, 2))
}

func TestCorrected_Cache(t *testing.T) {
	e := points(t, []float64{0}, []float64{1}, []float64{2}, []float64{4})
	mc := newMemCache()

	c1, err := correction.New(e, correction.WithCache(mc, 0))
	require.NoError(t, err)
	want, err := c1.Corrected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, mc.sets)
	assert.Equal(t, 0, mc.hits)

	c2, err := correction.New(e, correction.WithCache(mc, 0))
	require.NoError(t, err)
	got, err := c2.Corrected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, mc.hits)
	assert.True(t, want.Distances.Equal(got.Distances))
	assert.Equal(t, want.Predecessors, got.Predecessors)

	// A different option misses.
	c3, err := correction.New(e, correction.WithCache(mc, 0), correction.WithTree())
	require.NoError(t, err)
	_, err = c3.Corrected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, mc.sets)
}

func TestCorrected_CorruptCacheRecomputes(t *testing.T) {
	e := points(t, []float64{0}, []float64{1})
	mc := newMemCache()
	c, err := correction.New(e, correction.WithCache(mc, 0))
	require.NoError(t, err)
	_, err = c.Corrected(ctx)
	require.NoError(t, err)
	for k := range mc.data {
		mc.data[k] = []byte("garbage")
	}

	c2, err := correction.New(e, correction.WithCache(mc, 0))
	require.NoError(t, err)
	r, err := c2.Corrected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, at(t, r.Distances, 0, 1))
	assert.Equal(t, 2, mc.sets)
}

func TestCorrected_FileCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	e := points(t, []float64{0}, []float64{1}, []float64{3})

	c1, err := correction.New(e, correction.WithCache(fc, time.Hour))
	require.NoError(t, err)
	want, err := c1.Corrected(ctx)
	require.NoError(t, err)

	c2, err := correction.New(e, correction.WithCache(fc, time.Hour))
	require.NoError(t, err)
	got, err := c2.Corrected(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Distances.String(), got.Distances.String())
	assert.Equal(t, want.Predecessors.String(), got.Predecessors.String())
}

func TestCorrected_Concurrent(t *testing.T) {
	e := points(t, []float64{0}, []float64{1}, []float64{2}, []float64{3}, []float64{4})
	c, err := correction.New(e, correction.WithK(2))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]float64, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.PseudoTime(ctx, 2)
		}(i)
	}
	wg.Wait()
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	e := points(t, []float64{0}, []float64{1}, []float64{10}, []float64{11})

	c, err := correction.New(e, correction.WithK(1), correction.WithMST(false), correction.WithLogger(logger))
	require.NoError(t, err)
	_, err = c.Corrected(ctx)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "pairwise distances")
	assert.Contains(t, out, "graph built")
	assert.Contains(t, out, "disconnected")
}

func TestNew_NilLoggerIsSilent(t *testing.T) {
	e := points(t, []float64{0}, []float64{1}, []float64{10}, []float64{11})
	c, err := correction.New(e, correction.WithK(1), correction.WithMST(false), correction.WithLogger(nil))
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		_, err = c.Corrected(ctx)
	})
	require.NoError(t, err)
}

func TestNew_Errors(t *testing.T) {
	_, err := correction.New(nil)
	assert.ErrorIs(t, err, correction.ErrNilEmbedding)

	e := points(t, []float64{0}, []float64{1})
	_, err = correction.New(e, correction.WithK(0))
	assert.ErrorIs(t, err, correction.ErrBadK)
	_, err = correction.New(e, correction.WithMethod(correction.Method(9)))
	assert.ErrorIs(t, err, correction.ErrUnknownMethod)
	_, err = correction.New(e, correction.WithMetric(distance.Metric{Name: "x"}))
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)

	m, err := distance.Get("expected_sqeuclidean")
	require.NoError(t, err)
	_, err = correction.New(e, correction.WithMetric(m))
	assert.ErrorIs(t, err, distance.ErrVariancesRequired)
}

func TestPseudoTime_Errors(t *testing.T) {
	c, err := correction.New(points(t, []float64{0}, []float64{1}))
	require.NoError(t, err)
	_, err = c.PseudoTime(ctx, 5)
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	c2, err := correction.New(points(t, []float64{0}, []float64{1}))
	require.NoError(t, err)
	_, err = c2.Corrected(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseMethod(t *testing.T) {
	for s, want := range map[string]correction.Method{
		"auto":           correction.MethodAuto,
		"Dijkstra":       correction.MethodDijkstra,
		"floyd-warshall": correction.MethodFloydWarshall,
	} {
		got, err := correction.ParseMethod(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := correction.ParseMethod("bellman-ford")
	assert.ErrorIs(t, err, correction.ErrUnknownMethod)
	assert.Equal(t, "Method(9)", correction.Method(9).String())
}
