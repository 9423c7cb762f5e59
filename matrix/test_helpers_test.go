// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures for distance / predecessor matrices.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellslam/matrix"
)

var inf = math.Inf(1)

// MustDense builds a *Dense from literal rows or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, d *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}

// MustPredAt reads (i,j) or fails the test.
func MustPredAt(t *testing.T, p *matrix.PredMatrix, i, j int) matrix.Pred {
	t.Helper()
	v, err := p.At(i, j)
	require.NoError(t, err)

	return v
}
