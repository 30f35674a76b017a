package ilp

import "errors"

// Sentinel errors returned by the ILP container's own invariant checks.
var (
	// ErrDimensionMismatch indicates A, b, and c do not agree on m/n.
	ErrDimensionMismatch = errors.New("ilp: dimension mismatch")

	// ErrEmptyProblem indicates m == 0 or n == 0 — every ILP this
	// solver accepts needs at least one constraint and one variable.
	ErrEmptyProblem = errors.New("ilp: rows and columns must both be >= 1")

	// ErrUnknownVariable indicates a named-variable index fell outside
	// [0, n).
	ErrUnknownVariable = errors.New("ilp: named variable index out of range")
)

// Error kinds surfaced by the solver engines (steinitz, discrepancy).
// Both engines wrap these with fmt.Errorf("%w: ...") to attach a
// specific reason (e.g. which precondition failed for Unsupported);
// callers compare with errors.Is against these sentinels.
var (
	// ErrNoSolution indicates the ILP has no feasible point (A*x=b,
	// x>=0, x integer) reachable by the engine.
	ErrNoSolution = errors.New("ilp: no solution")

	// ErrUnbounded indicates the engine found evidence of an
	// unbounded optimum: a positive-cost cycle in the Steinitz graph,
	// or a positive-cost witness x with A*x=0 in the discrepancy
	// table.
	ErrUnbounded = errors.New("ilp: unbounded")

	// ErrUnsupported indicates the engine's own preconditions reject
	// this input (e.g. a zero column, b == 0 for the Steinitz engine,
	// duplicate columns for the discrepancy engine). The wrapping
	// error message states which precondition failed.
	ErrUnsupported = errors.New("ilp: unsupported input")
)
