package ilp

import (
	"fmt"
	"sort"

	"github.com/go-intopt/intopt/matrix"
	"github.com/go-intopt/intopt/vector"
)

// VarMapping associates a parsed variable name with its column index
// in A/c. named_variables in spec.md's data model.
type VarMapping struct {
	Name  string
	Index int
}

// Solution is the Vector an engine returns on success: non-negative,
// length n, satisfying A*x = b.
type Solution = vector.Vector

// ILP holds A, b, c and their cached norms, plus an optional sorted
// list of named variables for symbolic reporting. Immutable once
// constructed; Simplify returns a new ILP.
type ILP struct {
	a      matrix.Matrix
	b      vector.Vector
	c      vector.Vector
	deltaA vector.IntData
	deltaB vector.IntData
	names  []VarMapping
}

// New validates and constructs an ILP from a constraint matrix, a
// right-hand side, and an objective. Panics (the established contract
// for caller-side invariant violations — see vector/matrix) if the
// dimensions disagree or either is empty.
func New(a matrix.Matrix, b, c vector.Vector) ILP {
	if a.Rows() == 0 || a.Cols() == 0 {
		panic(ErrEmptyProblem)
	}
	if b.Len() != a.Rows() {
		panic(fmt.Errorf("ilp.New: len(b)=%d rows=%d: %w", b.Len(), a.Rows(), ErrDimensionMismatch))
	}
	if c.Len() != a.Cols() {
		panic(fmt.Errorf("ilp.New: len(c)=%d cols=%d: %w", c.Len(), a.Cols(), ErrDimensionMismatch))
	}

	return ILP{
		a:      a,
		b:      b,
		c:      c,
		deltaA: a.MaxAbsEntry(),
		deltaB: b.InfNorm(),
		names:  nil,
	}
}

// WithNames returns a copy of ilp carrying the given variable-name
// mapping, sorted by column index. Panics if any index falls outside
// [0, n) — a malformed mapping is a parser bug, not a runtime
// condition callers should need to recover from.
func WithNames(prob ILP, names []VarMapping) ILP {
	sorted := make([]VarMapping, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	for _, v := range sorted {
		if v.Index < 0 || v.Index >= prob.c.Len() {
			panic(fmt.Errorf("ilp.WithNames: %q index=%d n=%d: %w", v.Name, v.Index, prob.c.Len(), ErrUnknownVariable))
		}
	}

	prob.names = sorted
	return prob
}

// A returns the constraint matrix.
func (p ILP) A() matrix.Matrix { return p.a }

// B returns the right-hand side.
func (p ILP) B() vector.Vector { return p.b }

// C returns the objective.
func (p ILP) C() vector.Vector { return p.c }

// DeltaA returns the cached max absolute entry of A.
func (p ILP) DeltaA() vector.IntData { return p.deltaA }

// DeltaB returns the cached infinity norm of b.
func (p ILP) DeltaB() vector.IntData { return p.deltaB }

// M returns the constraint count (rows of A).
func (p ILP) M() int { return p.a.Rows() }

// N returns the variable count (columns of A).
func (p ILP) N() int { return p.a.Cols() }

// NamedVariables returns the sorted-by-index variable-name mapping.
// Empty if the ILP was built without names (New, not WithNames).
func (p ILP) NamedVariables() []VarMapping {
	out := make([]VarMapping, len(p.names))
	copy(out, p.names)
	return out
}

// Summary is a read-only snapshot of an ILP's shape, handed to the CLI
// driver for human-readable printing — kept separate from the core
// type so ilp stays free of any I/O concern.
type Summary struct {
	Rows, Cols int
	Names      []VarMapping
	SlackCount int
	DeltaA     vector.IntData
	DeltaB     vector.IntData
}

// Details returns a Summary of p.
func (p ILP) Details() Summary {
	return Summary{
		Rows:       p.M(),
		Cols:       p.N(),
		Names:      p.NamedVariables(),
		SlackCount: p.N() - len(p.names),
		DeltaA:     p.deltaA,
		DeltaB:     p.deltaB,
	}
}
