// Package dijkstra defines sentinel errors and configuration options
// for shortest-path computation on index graphs.
//
// Options:
//
//	– Source:      index of the starting vertex (must be in [0, n)).
//	– MaxDistance: optional cap; vertices farther than this stay unreachable.
//	– Workers:     AllPairs concurrency limit (≤ 0 means runtime.GOMAXPROCS(0)).
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrSourceOutOfRange if Source is outside [0, n).
//	– ErrBadMaxDistance   if MaxDistance < 0 or NaN.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source index is not a vertex of the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures Dijkstra and AllPairs.
//
// Source      – starting vertex (Dijkstra only; AllPairs runs every source).
// MaxDistance – vertices whose distance would exceed this are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// Workers     – maximum concurrent sources in AllPairs.
type Options struct {
	Source      int
	MaxDistance float64
	Workers     int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(i int) Option {
	return func(o *Options) {
		o.Source = i
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithWorkers limits how many sources AllPairs processes concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns Source 0, no distance cap and automatic worker count.
func DefaultOptions() Options {
	return Options{
		Source:      0,
		MaxDistance: math.Inf(1),
		Workers:     0,
	}
}
