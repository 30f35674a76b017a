// Package vgraph implements the vector-keyed directed graph the
// Steinitz engine builds: dense integer node indices, a side map from
// vector.Vector (via its Key) to node index for O(1) "is this partial
// sum already a node?" queries, and per-node outgoing edge lists
// labelled with the matrix column used to reach them.
//
// Design (spec.md §4.4, §9): node mutation during Bellman-Ford
// relaxation is index-based — callers fetch a node by index, mutate
// the returned pointer's fields, and never hold a reference across an
// insertion, since appending to the node slice can reallocate. The
// side map is never resized mid-relaxation (only during graph
// construction, before Bellman-Ford starts), so this package does not
// need to guard against the side map invalidating held node pointers
// during the relax phase — only during Reserve/AddNode.
package vgraph
