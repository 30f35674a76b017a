// Package matrix defines Matrix, an ordered collection of integer
// columns (each a vector.Vector of the same length), as used by the
// ILP container: A has one column per variable and one row per
// constraint.
//
// What & Why:
//
//	Unlike a dense numeric Matrix abstraction, this type is shaped
//	exactly for what the two solver engines need: per-column iteration,
//	duplicate/zero-column detection for the simplify preprocessing step
//	and the Unsupported precondition, the max-absolute-entry bound
//	Delta_A, and the hereditary-discrepancy upper bound H(A).
//
// Complexity:
//
//	Rows/Cols/MaxAbsEntry/HerdiscUpperBound run in O(rows*cols) or
//	better (MaxAbsEntry and HerdiscUpperBound scan every entry once).
//	HasDuplicateColumns is O(cols^2 * rows) in the worst case — the ILP
//	instances this solver targets have small n, so the quadratic scan
//	is not a bottleneck; see DESIGN.md.
package matrix
