// Package ilp defines the ILP container: the constraint matrix A, the
// right-hand side b, the objective c, their cached norms Delta_A and
// Delta_b, an optional variable-name mapping for symbolic reporting,
// and the sole preprocessing step, Simplify (duplicate-column
// collapsing).
//
// An ILP is built once (typically by the parser package) and never
// mutated afterward; Simplify returns a new ILP rather than mutating
// the receiver, so a caller can always fall back to the original.
//
// Error kinds returned by the two solver engines (not by this package
// itself) are defined here because both engines need to construct
// them: ErrNoSolution, ErrUnbounded, and ErrUnsupported.
package ilp
