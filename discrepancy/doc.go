// Package discrepancy implements the discrepancy/DP solver engine
// (spec.md §4.3), after Jansen & Rohwedder, arXiv:1803.04744.
//
// Solve maintains a table T mapping reachable right-hand sides to the
// best-cost witness reaching them, seeded with the zero vector and
// each unit column, then runs K doubling rounds grouped by a
// sequence of scaled targets round(b*2^(i-K)) that doubles toward b. Each
// round pairs table entries (all-pairs on the first iteration of a
// group, previous-round-new-against-everything afterward), admits a
// pair's sum into the table when it lies within a fixed tolerance of
// the round's target and improves on any existing entry for that
// right-hand side, and stops a group early once a round adds nothing.
//
// Complexity and memory notes (spec.md §4.3, §5): the tube test
// |b - s_i|_inf <= 4*H bounds the table to O((8H+1)^m) entries, and
// doubling toward b in K = O(m*ln(m*Delta)) rounds guarantees the
// optimum is reached. Between rounds the engine carries the table, the
// keys the last round added (the "previous round's new entries" set
// for the next round's asymmetric pairing rule, reset at each new
// target group), and a round counter spanning the whole solve that
// feeds the optional norm cap.
package discrepancy
