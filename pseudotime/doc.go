// Package pseudotime derives signed pseudo-time along a corrected manifold graph.
//
// What
//
//   - Given the corrected distance matrix D, the shortest-path predecessor
//     matrix P and a start vertex, Assign returns one value per vertex: the
//     geodesic distance from start, negated for the vertices that lie behind
//     the "left" branch of the first branch point seen from start.
//   - Branches exposes the branch discovery on its own.
//
// Branch discovery
//
//	Column start of P is scanned in row order. Every distinct predecessor
//	value is recorded; as soon as two have been seen the scan stops, even if
//	later rows would reveal a third. Of the two, the one that occurs more
//	often in column 0 of P keeps the positive sign; the other becomes "left".
//	On a tie the first-discovered branch is "left". Fewer than two values
//	means there is no branch point and no sign flips.
//
// Inputs are never modified: the result is a fresh slice even when no sign
// is flipped.
//
// Errors
//
//   - ErrInvalidArgument: nil or non-square matrices, mismatched orders, or
//     start outside [0, N). The underlying matrix sentinel is wrapped as well.
//
// Complexity
//
//   - Time O(N), Space O(N).
//
// Thread safety
//
//	Assign and Branches are pure. Concurrent calls on the same matrices are
//	safe as long as nobody mutates them.
package pseudotime
