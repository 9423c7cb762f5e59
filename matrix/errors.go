// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with context via %w);
// tests check them with errors.Is. No public function panics on bad input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0)
	// or when row slices passed to a constructor are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix was passed where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaN signals a NaN value where a number (possibly ±Inf) is required.
	ErrNaN = errors.New("matrix: NaN encountered")
)

// Operation tags used in error wrappers.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Column"
	ctxSetRow = "SetRow"
)

// denseErrorf wraps err with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// predErrorf wraps err with PredMatrix method context and coordinates.
func predErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("PredMatrix.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf tags err with a top-level operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
