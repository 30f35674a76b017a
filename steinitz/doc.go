// Package steinitz implements the Steinitz/graph solver engine (spec.md
// §4.2), after Eisenbrand & Weismantel, arXiv:1707.00481.
//
// Solve constructs a vector-keyed directed graph of reachable partial
// sums by breadth-first expansion depth-by-depth, admitting only
// lattice points inside a geometric "tube" around the segment [0, b]
// of the line R*b, then finds a longest 0->b path by Bellman-Ford
// (the graph can carry negative-cost edges, so a topological DP is not
// enough — see spec.md's glossary entry for "Longest path"). The
// solution vector is read off the predecessor chain by counting how
// many times each column was used.
//
// Complexity and memory notes (spec.md §5): the construction surface
// and the graph reserve capacity proportional to (surface size) *
// (column count) before each expansion round, and Bellman-Ford halts
// early once a sweep makes no change (the graph is a DAG of vector
// sums, so convergence happens well before the |V|-1 sweep bound in
// practice).
package steinitz
