package parser

import "errors"

// Sentinel errors returned by Parse. spec.md §7 only requires that
// parse failures be distinguishable from solver-level outcomes, not
// that every failure mode get its own sentinel — ErrSyntax covers
// every grammar-level rejection, with the underlying participle error
// wrapped in for detail.
var (
	// ErrSyntax indicates the input did not match the ILP grammar.
	ErrSyntax = errors.New("parser: syntax error")

	// ErrEmptyProgram indicates a syntactically valid input with no
	// constraints or no variables — nothing for an engine to solve.
	ErrEmptyProgram = errors.New("parser: program has no constraints or no variables")
)
