// SPDX-License-Identifier: MIT

// Package matrix - predecessor values and the predecessor matrix.
//
// Purpose:
//   - Replace the "magic negative index" convention for a missing predecessor
//     with an explicit optional value: Via(k) or NoPred.
//   - PredMatrix.At(i, j) is the predecessor of j on the shortest path from i.
//     The diagonal and unreachable pairs hold NoPred.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Pred is an optional vertex index. The zero value is NoPred.
type Pred struct {
	v  int
	ok bool
}

// NoPred is the absent predecessor.
var NoPred = Pred{}

// Via returns a Pred naming vertex v.
func Via(v int) Pred { return Pred{v: v, ok: true} }

// Vertex returns the predecessor index and true, or (0, false) for NoPred.
func (p Pred) Vertex() (int, bool) { return p.v, p.ok }

// IsNone reports whether p is NoPred.
func (p Pred) IsNone() bool { return !p.ok }

// String renders Via(k) as "k" and NoPred as "-".
func (p Pred) String() string {
	if !p.ok {
		return "-"
	}

	return strconv.Itoa(p.v)
}

// PredMatrix is a row-major grid of Pred values.
type PredMatrix struct {
	r, c int
	data []Pred
}

// NewPredMatrix creates an r×c matrix filled with NoPred.
// Errors: ErrBadShape if rows<=0 or cols<=0.
func NewPredMatrix(rows, cols int) (*PredMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewPredMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &PredMatrix{r: rows, c: cols, data: make([]Pred, rows*cols)}, nil
}

// NewPredMatrixFromRows copies a rectangular [][]Pred.
// Errors: ErrBadShape on empty or ragged input.
func NewPredMatrixFromRows(rows [][]Pred) (*PredMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewPredMatrixFromRows: empty input: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	p := &PredMatrix{r: r, c: c, data: make([]Pred, r*c)}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewPredMatrixFromRows: row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
		copy(p.data[i*c:(i+1)*c], rows[i])
	}

	return p, nil
}

// Rows returns the row count.
func (p *PredMatrix) Rows() int { return p.r }

// Cols returns the column count.
func (p *PredMatrix) Cols() int { return p.c }

// Shape packs Rows() and Cols().
func (p *PredMatrix) Shape() (rows, cols int) { return p.r, p.c }

// At returns the entry at (row, col).
// Errors: ErrOutOfRange.
func (p *PredMatrix) At(row, col int) (Pred, error) {
	if row < 0 || row >= p.r || col < 0 || col >= p.c {
		return NoPred, predErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return p.data[row*p.c+col], nil
}

// Set writes v at (row, col).
// Errors: ErrOutOfRange.
func (p *PredMatrix) Set(row, col int, v Pred) error {
	if row < 0 || row >= p.r || col < 0 || col >= p.c {
		return predErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	p.data[row*p.c+col] = v

	return nil
}

// Row returns a copy of row i.
func (p *PredMatrix) Row(i int) ([]Pred, error) {
	if i < 0 || i >= p.r {
		return nil, predErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]Pred, p.c)
	copy(out, p.data[i*p.c:(i+1)*p.c])

	return out, nil
}

// Column returns a copy of column j: for a shortest-path predecessor matrix this
// is, for every source i, the vertex right before j on the path i→j.
func (p *PredMatrix) Column(j int) ([]Pred, error) {
	if j < 0 || j >= p.c {
		return nil, predErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]Pred, p.r)
	for i := 0; i < p.r; i++ {
		out[i] = p.data[i*p.c+j]
	}

	return out, nil
}

// SetRow overwrites row i with vals.
// Errors: ErrOutOfRange, ErrDimensionMismatch.
func (p *PredMatrix) SetRow(i int, vals []Pred) error {
	if i < 0 || i >= p.r {
		return predErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != p.c {
		return predErrorf(ctxSetRow, i, len(vals), ErrDimensionMismatch)
	}
	copy(p.data[i*p.c:(i+1)*p.c], vals)

	return nil
}

// Count returns how many entries of column j equal v.
func (p *PredMatrix) Count(j int, v Pred) (int, error) {
	if j < 0 || j >= p.c {
		return 0, predErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	n := 0
	for i := 0; i < p.r; i++ {
		if p.data[i*p.c+j] == v {
			n++
		}
	}

	return n, nil
}

// Path reconstructs the vertex sequence from source to target using row
// source. It returns nil when target is unreachable; Path(i, i) is [i].
func (p *PredMatrix) Path(source, target int) ([]int, error) {
	if source < 0 || source >= p.r || target < 0 || target >= p.c {
		return nil, predErrorf("Path", source, target, ErrOutOfRange)
	}
	if source == target {
		return []int{source}, nil
	}
	rev := []int{target}
	cur := target
	for steps := 0; steps < p.c; steps++ {
		prev, ok := p.data[source*p.c+cur].Vertex()
		if !ok {
			return nil, nil
		}
		rev = append(rev, prev)
		if prev == source {
			for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
				rev[l], rev[r] = rev[r], rev[l]
			}

			return rev, nil
		}
		cur = prev
	}

	// A cycle in the predecessor chain means the matrix is not a
	// shortest-path tree for this source.
	return nil, predErrorf("Path", source, target, ErrDimensionMismatch)
}

// Clone returns a deep copy.
func (p *PredMatrix) Clone() *PredMatrix {
	cp := make([]Pred, len(p.data))
	copy(cp, p.data)

	return &PredMatrix{r: p.r, c: p.c, data: cp}
}

// String renders one bracketed row per line, NoPred as "-".
func (p *PredMatrix) String() string {
	var b strings.Builder
	for i := 0; i < p.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < p.c; j++ {
			b.WriteString(p.data[i*p.c+j].String())
			if j+1 < p.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
