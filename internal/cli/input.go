package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellslam/config"
	"github.com/katalvlaran/cellslam/correction"
	"github.com/katalvlaran/cellslam/distance"
	"github.com/katalvlaran/cellslam/embedding"
)

// correctionFlags are shared by every command that builds a Corrector.
type correctionFlags struct {
	k         int
	metric    string
	mutual    bool
	tree      bool
	noMST     bool
	mstMethod string
	method    string
	workers   int
	dims      []int
	variances string
	output    string
}

func (f *correctionFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.k, "k", 10, "nearest neighbours per sample")
	fs.StringVar(&f.metric, "metric", distance.Default, fmt.Sprintf("embedding distance %v", distance.Names()))
	fs.BoolVar(&f.mutual, "mutual", false, "keep only reciprocal nearest-neighbour pairs")
	fs.BoolVar(&f.tree, "tree", false, "use the minimum spanning tree as the graph")
	fs.BoolVar(&f.noMST, "no-mst", false, "do not add minimum spanning tree edges to the kNN graph")
	fs.StringVar(&f.mstMethod, "mst-method", correction.MSTDense, fmt.Sprintf("spanning-tree algorithm %v", correction.MSTMethods))
	fs.StringVar(&f.method, "method", correction.MethodAuto.String(), "shortest paths: auto, dijkstra or floyd-warshall")
	fs.IntVar(&f.workers, "workers", 0, "parallel Dijkstra sources (0 = all CPUs)")
	fs.IntSliceVar(&f.dims, "dims", nil, "latent dimensions to use (default all)")
	fs.StringVar(&f.variances, "variances", "", "CSV of posterior variances, same shape as the embedding")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
}

// apply overrides cfg with every flag set on the command line.
func (f *correctionFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("k") {
		cfg.Correction.K = f.k
	}
	if fs.Changed("metric") {
		cfg.Correction.Metric = f.metric
	}
	if fs.Changed("mutual") {
		cfg.Correction.Mutual = f.mutual
	}
	if fs.Changed("tree") {
		cfg.Correction.Tree = f.tree
	}
	if fs.Changed("no-mst") {
		cfg.Correction.MST = !f.noMST
	}
	if fs.Changed("mst-method") {
		cfg.Correction.MSTMethod = f.mstMethod
	}
	if fs.Changed("method") {
		cfg.Correction.Method = f.method
	}
	if fs.Changed("workers") {
		cfg.Correction.Workers = f.workers
	}
	if fs.Changed("dims") {
		cfg.Embedding.Dimensions = f.dims
	}
}

// corrector builds a Corrector for the embedding at path.
//
// Steps:
//  1. Config file, then flags on top.
//  2. Embedding (and optional variances).
//  3. Cache and correction options.
func (c *CLI) corrector(cmd *cobra.Command, f *correctionFlags, path string) (*correction.Corrector, error) {
	// 1. Settings
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	f.apply(cmd, &cfg)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	// 2. Embedding
	e, err := readEmbedding(path, f.variances, cfg.Embedding.Dimensions)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("embedding loaded", "path", path, "samples", e.Len(), "dims", e.Dims(), "variances", e.HasVariances())

	// 3. Options
	opts, err := cfg.CorrectionOptions()
	if err != nil {
		return nil, err
	}
	store, err := c.newCache(cfg)
	if err != nil {
		return nil, err
	}
	ttl, err := cfg.CacheTTL()
	if err != nil {
		return nil, err
	}
	opts = append(opts, correction.WithLogger(c.Logger), correction.WithCache(store, ttl))

	return correction.New(e, opts...)
}

func readEmbedding(path, variancesPath string, dims []int) (*embedding.Embedding, error) {
	var opts []embedding.Option
	if dims != nil {
		opts = append(opts, embedding.WithDimensions(dims...))
	}
	if variancesPath != "" {
		vf, err := os.Open(variancesPath)
		if err != nil {
			return nil, err
		}
		defer vf.Close()
		vars, err := embedding.ReadMatrixCSV(vf)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", variancesPath, err)
		}
		opts = append(opts, embedding.WithVariances(vars))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	e, err := embedding.ReadCSV(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return e, nil
}
