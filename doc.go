// Package intopt solves integer linear programs of the form
// max/min <c,x> subject to A*x = b, x >= 0 integer, using two
// fixed-parameter-tractable engines keyed to the largest absolute
// entry of A (Delta):
//
//	vector/      — fixed-width integer vector arithmetic
//	matrix/      — column-stored integer matrices, hereditary discrepancy bound
//	ilp/         — the shared problem container and duplicate-column simplification
//	vgraph/      — a vector-keyed directed graph used by the Steinitz engine
//	steinitz/    — the Steinitz/graph engine (Eisenbrand-Weismantel)
//	discrepancy/ — the discrepancy/DP engine (Jansen-Rohwedder)
//	parser/      — the expression-form ILP file grammar
//	cmd/intopt/  — the command-line driver
//
// Both engines return solutions of equal cost for any ILP with a
// finite optimum; they differ in how they spend their running time
// across n (the Steinitz engine scales better in n, the discrepancy
// engine in m) per the complexity notes in each package's doc.go.
package intopt
