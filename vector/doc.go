// Package vector defines IntData, a fixed-length integer vector, and the
// small set of arithmetic operations the solver engines need: addition,
// dot product, the three standard norms, a max-coordinate-distance test
// against a bound, and a byte-exact string key for use as a hash-map key.
//
// Vector is immutable after construction in the hot path: once a Vector
// has been inserted as a key into a vgraph node map or a discrepancy
// lookup table, its length and entries must not change. Equality and
// hashing (via Key) are elementwise over the raw int64 data, matching the
// "byte-exact over the integer data" requirement for hash-keyed vectors.
//
// Complexity: every operation below is O(len(v)) except Len and Key's
// allocation, which is also O(len(v)) (one pass to encode).
package vector
