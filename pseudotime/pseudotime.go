package pseudotime

import (
	"github.com/katalvlaran/cellslam/matrix"
)

// branchLimit is the number of distinct predecessors after which the scan stops.
const branchLimit = 2

// Assign returns the signed pseudo-time of every vertex relative to start.
//
// Steps:
//  1. Validate D and P (non-nil, square, same order) and 0 <= start < N.
//  2. Discover branches in column start of P (see Branches).
//  3. Copy row start of D.
//  4. If a left branch was chosen, negate entry r for every r with
//     P[r][start] == left. The start vertex itself is not special-cased.
//
// Errors: ErrInvalidArgument (wrapping the matrix sentinel where one applies).
//
// Complexity: O(N) time and space.
func Assign(d *matrix.Dense, p *matrix.PredMatrix, start int) ([]float64, error) {
	// 1) Validate shapes and start.
	if err := matrix.ValidatePair(d, p); err != nil {
		return nil, invalidf(err, "distances/predecessors")
	}

	// 2) Branch discovery (also validates start against P).
	split, err := Branches(p, start)
	if err != nil {
		return nil, err
	}

	// 3) Start from an independent copy of the distance row.
	pt, err := d.Row(start)
	if err != nil {
		return nil, invalidf(err, "start %d", start)
	}

	// 4) No branch point: plain geodesic distances.
	if !split.HasLeft {
		return pt, nil
	}

	col, err := p.Column(start)
	if err != nil {
		return nil, invalidf(err, "start %d", start)
	}
	left := matrix.Via(split.Left)
	for r, pred := range col {
		if pred == left {
			pt[r] = -pt[r]
		}
	}

	return pt, nil
}

// Branches scans column start of P and returns the discovered split.
//
// The scan visits rows 0..N-1 in order, records each distinct present
// predecessor, and stops right after the second distinct one. The left branch
// is then the one with fewer occurrences in column 0 of P; on a tie the
// first-discovered branch is left.
//
// Errors: ErrInvalidArgument for a nil/non-square P or start out of range.
func Branches(p *matrix.PredMatrix, start int) (Split, error) {
	if err := matrix.ValidatePredSquare(p); err != nil {
		return Split{}, invalidf(err, "predecessors")
	}
	n := p.Rows()
	if start < 0 || start >= n {
		return Split{}, invalidf(matrix.ErrOutOfRange, "start %d not in [0,%d)", start, n)
	}

	split := Split{Start: start, Junctions: make([]int, 0, branchLimit)}

	col, err := p.Column(start)
	if err != nil {
		return Split{}, invalidf(err, "start %d", start)
	}
	for _, pred := range col {
		if v, ok := pred.Vertex(); ok && !contains(split.Junctions, v) {
			split.Junctions = append(split.Junctions, v)
		}
		if len(split.Junctions) == branchLimit {
			break
		}
	}
	if len(split.Junctions) < branchLimit {
		return split, nil
	}

	// Tie-break against column 0: the minority branch goes left.
	c0, err := p.Count(0, matrix.Via(split.Junctions[0]))
	if err != nil {
		return Split{}, invalidf(err, "column 0")
	}
	c1, err := p.Count(0, matrix.Via(split.Junctions[1]))
	if err != nil {
		return Split{}, invalidf(err, "column 0")
	}
	if c0 > c1 {
		split.Left = split.Junctions[1]
	} else {
		split.Left = split.Junctions[0]
	}
	split.HasLeft = true

	return split, nil
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}
