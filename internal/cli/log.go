// Package cli implements the cellslam command-line interface.
//
// # Commands
//
//   - pseudotime: signed pseudo-time of every sample relative to a start sample
//   - distances:  corrected manifold distance matrix
//   - graph:      edge list of the correction graph
//   - cache:      manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging on stderr.
// Data goes to stdout or to --output.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs e.g. "Corrected 120 samples (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
