// SPDX-License-Identifier: MIT

package matrix_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellslam/matrix"
)

func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, matrix.FloydWarshall(nil, nil), matrix.ErrNilMatrix)

	ns, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.FloydWarshall(ns, nil), matrix.ErrNonSquare)

	d, _ := matrix.NewSquare(3, inf)
	p, _ := matrix.NewPredMatrix(2, 2)
	assert.ErrorIs(t, matrix.FloydWarshall(d, p), matrix.ErrDimensionMismatch)
}

// Star-shaped tree rooted at 1 with an isolated vertex 4:
//
//	0 -1- 1 -2- 2
//	      |
//	      3
//	      3
func TestFloydWarshall_TreeWithPredecessors(t *testing.T) {
	t.Parallel()

	d := MustDense(t, [][]float64{
		{0, 1, inf, inf, inf},
		{1, 0, 2, 3, inf},
		{inf, 2, 0, inf, inf},
		{inf, 3, inf, 0, inf},
		{inf, inf, inf, inf, 0},
	})
	p, err := matrix.NewPredMatrix(5, 5)
	require.NoError(t, err)
	require.NoError(t, matrix.FloydWarshall(d, p))

	assert.Equal(t, 3.0, MustAt(t, d, 0, 2))
	assert.Equal(t, 5.0, MustAt(t, d, 2, 3))
	assert.True(t, math.IsInf(MustAt(t, d, 0, 4), 1))

	assert.Equal(t, matrix.Via(1), MustPredAt(t, p, 0, 2))
	assert.Equal(t, matrix.Via(0), MustPredAt(t, p, 0, 1))
	assert.Equal(t, matrix.Via(1), MustPredAt(t, p, 3, 2))
	assert.Equal(t, matrix.NoPred, MustPredAt(t, p, 0, 4))
	assert.Equal(t, matrix.NoPred, MustPredAt(t, p, 2, 2))

	path, err := p.Path(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, path)
}

func TestJSON_InfAndNoPredSurvive(t *testing.T) {
	t.Parallel()

	d := MustDense(t, [][]float64{{0, inf}, {1.5, 0}})
	b, err := json.Marshal(d)
	require.NoError(t, err)

	var d2 matrix.Dense
	require.NoError(t, json.Unmarshal(b, &d2))
	assert.True(t, d.Equal(&d2))

	p, _ := matrix.NewPredMatrixFromRows([][]matrix.Pred{{matrix.NoPred, matrix.Via(0)}, {matrix.Via(1), matrix.NoPred}})
	b, err = json.Marshal(p)
	require.NoError(t, err)

	var p2 matrix.PredMatrix
	require.NoError(t, json.Unmarshal(b, &p2))
	assert.Equal(t, p.String(), p2.String())
}
