package vgraph

import (
	"github.com/go-intopt/intopt/vector"
)

// Edge is an outgoing transition to node To, labelled with the matrix
// column index used to reach it. A node owns its outgoing edges, so an
// edge only needs to store the far endpoint and the column.
type Edge struct {
	To     int
	Column int
}

// Node is one vector reached during the Steinitz engine's graph
// construction. Predecessor/Via/Cost hold the single best-known
// longest-path state to this node, overwritten in place by Bellman-
// Ford relaxations; Edges accumulates every tube-admissible outgoing
// transition (possibly several for the same endpoint, since two
// different columns can produce the same delta — spec.md §4.2
// explicitly keeps these as parallel edges).
type Node struct {
	Predecessor int
	Via         int
	Cost        vector.IntData
	Edges       []Edge
}

// Graph is a vector-keyed directed graph: a dense Node array plus a
// side map from vector.Vector.Key() to node index. New adds no nodes;
// node 0 is the first node added (the Steinitz engine adds the origin,
// the zero vector, first).
type Graph struct {
	nodes        []Node
	index        map[string]int
	edgesPerNode int
}

// New returns a Graph reserving capacity for nodeCapacity nodes, each
// pre-sized to hold edgesPerNode outgoing edges (spec.md §5: "reserve
// capacity proportional to (surface size) x (number of columns) before
// each expansion round" — edgesPerNode is that per-node factor).
func New(nodeCapacity, edgesPerNode int) *Graph {
	return &Graph{
		nodes:        make([]Node, 0, nodeCapacity),
		index:        make(map[string]int, nodeCapacity),
		edgesPerNode: edgesPerNode,
	}
}

// Reserve grows the node slice's capacity by additional entries
// without changing Size(), avoiding reallocation mid-round. The side
// map is not resized here; it grows as AddNode inserts keys.
func (g *Graph) Reserve(additional int) {
	if cap(g.nodes)-len(g.nodes) < additional {
		grown := make([]Node, len(g.nodes), len(g.nodes)+additional)
		copy(grown, g.nodes)
		g.nodes = grown
	}
}

// Size returns the number of nodes in the graph.
func (g *Graph) Size() int { return len(g.nodes) }

// IndexOf returns the node index registered for key, if any.
func (g *Graph) IndexOf(key vector.Vector) (int, bool) {
	idx, ok := g.index[key.Key()]
	return idx, ok
}

// AddNode appends a new node keyed by key, with the given initial
// predecessor/via/cost, and registers it in the side map. Returns the
// new node's index. The invariant "every vector key maps to a valid
// node index whose own key equals that vector" holds because this is
// the only way to insert a node.
func (g *Graph) AddNode(key vector.Vector, predecessor, via int, cost vector.IntData) int {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, Node{
		Predecessor: predecessor,
		Via:         via,
		Cost:        cost,
		Edges:       make([]Edge, 0, g.edgesPerNode),
	})
	g.index[key.Key()] = idx
	return idx
}

// Node returns a pointer to the node at idx, valid for in-place
// mutation until the next AddNode call (which may reallocate the
// backing slice).
func (g *Graph) Node(idx int) *Node { return &g.nodes[idx] }

// AddEdge appends an outgoing edge from -> to labelled with column.
// Edges are not deduplicated: two columns producing the same delta
// yield two parallel edges, both needed by Bellman-Ford.
func (g *Graph) AddEdge(from, to, column int) {
	g.nodes[from].Edges = append(g.nodes[from].Edges, Edge{To: to, Column: column})
}

// Edges returns the outgoing edges of node idx, for Bellman-Ford
// relaxation sweeps over "all edges" (spec.md §4.2) — including the
// origin's, since a later round can still combine through it.
func (g *Graph) Edges(idx int) []Edge { return g.nodes[idx].Edges }
