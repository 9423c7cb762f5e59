// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the nil/shape checks used by the shortest-path
//    and pseudo-time code.
//  - Return sentinel errors wrapped with the validator tag.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that d is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(d *Dense) error {
	if d == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if d.r != d.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidatePredSquare checks that p is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidatePredSquare(p *PredMatrix) error {
	if p == nil {
		return validatorErrorf("ValidatePredSquare", ErrNilMatrix)
	}
	if p.r != p.c {
		return validatorErrorf("ValidatePredSquare", ErrNonSquare)
	}

	return nil
}

// ValidatePair checks that d and p are non-nil, square and of the same order.
// This is the precondition of every consumer of a (distances, predecessors) pair.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func ValidatePair(d *Dense, p *PredMatrix) error {
	if err := ValidateSquare(d); err != nil {
		return err
	}
	if err := ValidatePredSquare(p); err != nil {
		return err
	}
	if d.r != p.r {
		return validatorErrorf(fmt.Sprintf("ValidatePair: %d vs %d", d.r, p.r), ErrDimensionMismatch)
	}

	return nil
}
