// SPDX-License-Identifier: MIT

// Package matrix holds the dense N×N value types shared by the correction
// pipeline: the corrected distance matrix and the shortest-path predecessor
// matrix.
//
// What lives here:
//
//   - Dense: row-major float64 matrix with bounds-checked accessors. +Inf is a
//     legal value and means "no path" in distance matrices.
//   - Pred: an explicit optional predecessor. Via(k) names vertex k, NoPred
//     means the path has no predecessor (the source itself, or unreachable).
//   - PredMatrix: N×N grid of Pred values; P.At(i, j) is the predecessor of j
//     on the shortest path from i.
//   - FloydWarshall: in-place all-pairs shortest paths that also fills a
//     PredMatrix.
//   - Validators: square / same-shape checks returning sentinel errors.
//
// Errors are package sentinels (ErrBadShape, ErrOutOfRange,
// ErrDimensionMismatch, ErrNonSquare, ErrNilMatrix) wrapped with method
// context; match them with errors.Is.
//
// Determinism:
//
//	All loops run in fixed row-major order; no map iteration.
//
// Thread safety:
//
//	Values are not synchronized. Treat a matrix handed to another goroutine
//	as read-only; the correction package only publishes finished matrices.
package matrix
