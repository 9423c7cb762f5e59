// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with predecessor tracking and a deterministic loop order.
//   - Alternative to per-source Dijkstra for small, dense correction graphs.
//
// Contract:
//   - Square matrix; +Inf means "no edge"; the diagonal is forced to 0.

package matrix

import "math"

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest paths in-place on dist and, when
// pred is non-nil, fills pred so that pred.At(i, j) is the vertex before j on
// the shortest path i→j.
//
// Contract:
//   - dist is square; off-diagonal +Inf means "no edge"; the diagonal is set to 0.
//   - pred (optional) has the same order as dist; its previous contents are discarded.
//
// Determinism:
//   - Loop order is fixed (k → i → j) and only strict improvements relax,
//     so ties keep the earlier-found path.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with op tag).
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(dist *Dense, pred *PredMatrix) error {
	if err := ValidateSquare(dist); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	if pred != nil {
		if err := ValidatePair(dist, pred); err != nil {
			return matrixErrorf(opFloydWarshall, err)
		}
	}

	n := dist.r
	data := dist.data

	// Seed: zero diagonal, direct edges have their source as predecessor.
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				data[i*n+j] = 0
				if pred != nil {
					pred.data[i*n+j] = NoPred
				}
				continue
			}
			if pred == nil {
				continue
			}
			if math.IsInf(data[i*n+j], 1) {
				pred.data[i*n+j] = NoPred
			} else {
				pred.data[i*n+j] = Via(i)
			}
		}
	}

	var (
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					if pred != nil {
						pred.data[baseI+j] = pred.data[baseK+j]
					}
				}
			}
		}
	}

	return nil
}
