package pseudotime

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for malformed matrices or an out-of-range start.
var ErrInvalidArgument = errors.New("pseudotime: invalid argument")

// Split describes the branch discovery from a start vertex.
type Split struct {
	// Start is the vertex the scan was run for.
	Start int

	// Junctions holds the distinct predecessor vertices found in column Start,
	// in discovery order. It never has more than two entries.
	Junctions []int

	// Left is the branch whose members get a negative pseudo-time.
	// Only meaningful when HasLeft is true.
	Left int

	// HasLeft reports whether two branches were found and Left was chosen.
	HasLeft bool
}

// invalidf wraps cause (which may be nil) under ErrInvalidArgument.
func invalidf(cause error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
	}

	return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, msg, cause)
}
