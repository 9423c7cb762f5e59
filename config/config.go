// Package config loads cellslam settings from a TOML file.
//
// Layout:
//
//	[embedding]
//	dimensions = [0, 1, 4]     # optional latent-dimension selection
//
//	[correction]
//	metric  = "euclidean"
//	k       = 10
//	mutual  = false
//	mst     = true
//	tree    = false
//	mst_method = "dense"       # dense | prim | kruskal
//	method  = "auto"           # auto | dijkstra | floyd-warshall
//	workers = 0                # 0 = GOMAXPROCS
//
//	[cache]
//	enabled = true
//	dir     = ""               # empty = $XDG_CACHE_HOME/cellslam or ~/.cache/cellslam
//	ttl     = "168h"
//
// Missing keys keep their Default() values; command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/cellslam/correction"
	"github.com/katalvlaran/cellslam/distance"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full settings tree.
type Config struct {
	Embedding  Embedding  `toml:"embedding"`
	Correction Correction `toml:"correction"`
	Cache      Cache      `toml:"cache"`
}

// Embedding settings.
type Embedding struct {
	Dimensions []int `toml:"dimensions"`
}

// Correction settings.
type Correction struct {
	Metric  string `toml:"metric"`
	K       int    `toml:"k"`
	Mutual  bool   `toml:"mutual"`
	MST     bool   `toml:"mst"`
	Tree    bool   `toml:"tree"`
	Method  string `toml:"method"`
	Workers int    `toml:"workers"`

	MSTMethod string `toml:"mst_method"`
}

// Cache settings.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
	TTL     string `toml:"ttl"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Correction: Correction{
			Metric:    distance.Default,
			K:         10,
			MST:       true,
			Method:    correction.MethodAuto.String(),
			MSTMethod: correction.MSTDense,
		},
		Cache: Cache{
			Enabled: true,
			TTL:     "168h",
		},
	}
}

// Load reads path over Default() and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes TOML over Default() and validates the result. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := distance.Get(c.Correction.Metric); err != nil {
		return fmt.Errorf("%w: correction.metric: %v", ErrInvalid, err)
	}
	if c.Correction.K < 1 {
		return fmt.Errorf("%w: correction.k = %d, want >= 1", ErrInvalid, c.Correction.K)
	}
	if _, err := correction.ParseMethod(c.Correction.Method); err != nil {
		return fmt.Errorf("%w: correction.method: %v", ErrInvalid, err)
	}
	if _, err := correction.ParseMSTMethod(c.Correction.MSTMethod); err != nil {
		return fmt.Errorf("%w: correction.mst_method: %v", ErrInvalid, err)
	}
	if c.Correction.Workers < 0 {
		return fmt.Errorf("%w: correction.workers = %d", ErrInvalid, c.Correction.Workers)
	}
	for _, d := range c.Embedding.Dimensions {
		if d < 0 {
			return fmt.Errorf("%w: embedding.dimensions contains %d", ErrInvalid, d)
		}
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}

	return nil
}

// CacheTTL parses Cache.TTL; empty means no expiry.
func (c Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: cache.ttl = %q", ErrInvalid, c.Cache.TTL)
	}

	return d, nil
}

// CorrectionOptions converts the correction section into correction options.
func (c Config) CorrectionOptions() ([]correction.Option, error) {
	metric, err := distance.Get(c.Correction.Metric)
	if err != nil {
		return nil, err
	}
	method, err := correction.ParseMethod(c.Correction.Method)
	if err != nil {
		return nil, err
	}
	mstMethod, err := correction.ParseMSTMethod(c.Correction.MSTMethod)
	if err != nil {
		return nil, err
	}
	opts := []correction.Option{
		correction.WithMetric(metric),
		correction.WithK(c.Correction.K),
		correction.WithMST(c.Correction.MST),
		correction.WithMSTMethod(mstMethod),
		correction.WithMethod(method),
		correction.WithWorkers(c.Correction.Workers),
	}
	if c.Correction.Mutual {
		opts = append(opts, correction.WithMutualKNN())
	}
	if c.Correction.Tree {
		opts = append(opts, correction.WithTree())
	}

	return opts, nil
}
