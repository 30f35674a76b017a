package steinitz

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/go-intopt/intopt/ilp"
	"github.com/go-intopt/intopt/vector"
	"github.com/go-intopt/intopt/vgraph"
)

// Solve runs the Steinitz/graph engine (spec.md §4.2) against problem,
// returning a non-negative integer vector x with A*x = b maximising
// <c, x>, ilp.ErrNoSolution if b is unreachable, ilp.ErrUnbounded if a
// positive-cost cycle is found, or ilp.ErrUnsupported if problem fails
// this engine's preconditions (a zero column in A, or b == 0).
//
// Complexity: see doc.go. The three phases — buildGraph, relaxLongestPaths,
// extractSolution — are implemented as methods on a runner carrying the
// problem, the graph under construction, and the configured Options,
// mirroring the graph package's established runner-struct / functional-
// options shape.
func Solve(problem ilp.ILP, opts ...Option) (ilp.Solution, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Preconditions (spec.md §4.2): a zero column makes the graph
	//    grow an infinite cost loop at the origin; b == 0 is out of
	//    scope for this engine.
	if problem.A().HasZeroColumn() {
		return vector.Vector{}, fmt.Errorf("steinitz: zero column in A: %w", ilp.ErrUnsupported)
	}
	if problem.B().InfNorm() == 0 {
		return vector.Vector{}, fmt.Errorf("steinitz: b is the zero vector: %w", ilp.ErrUnsupported)
	}

	// 3) Initialize the runner and drive the three phases.
	r := &runner{
		problem: problem,
		options: cfg,
		graph:   vgraph.New(cfg.NodeHint, problem.N()),
		bFloat:  problem.B().AsFloat64(),
	}
	r.bNormSq = floats.Dot(r.bFloat, r.bFloat)
	r.bNorm = math.Sqrt(r.bNormSq)

	r.buildGraph()

	bIdx, ok := r.graph.IndexOf(problem.B())
	if !ok {
		return vector.Vector{}, ilp.ErrNoSolution
	}

	r.relaxLongestPaths()

	return r.extractSolution(bIdx)
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	problem ilp.ILP
	options Options
	graph   *vgraph.Graph

	bFloat  []float64 // problem.B(), widened to float64 once.
	bNormSq float64    // <b, b>.
	bNorm   float64    // ||b||_2.
}

// buildGraph performs the BFS-by-depth construction described in
// spec.md §4.2: starting from the single origin node, it expands the
// current surface by every column of A, admitting only lattice points
// inside the tube at the current depth, until the surface runs dry.
func (r *runner) buildGraph() {
	n := r.problem.N()

	// 1) Node 0 is always the origin: cost 0, predecessor/via point to
	//    itself (never consulted — extractSolution stops at node 0).
	//    The graph's side map only keys on vector.Key(), not the vector
	//    itself, so the surface carries (index, vector) pairs forward.
	origin := r.graph.AddNode(vector.Zero(r.problem.M()), 0, 0, 0)
	surface := []surfaceEntry{{idx: origin, vec: vector.Zero(r.problem.M())}}

	deltaA := float64(r.problem.DeltaA())
	deltaB := float64(r.problem.DeltaB())
	m := float64(r.problem.M())
	c := r.problem.C()

	for depth := 1; len(surface) > 0 && (r.options.MaxDepth <= 0 || depth <= r.options.MaxDepth); depth++ {
		r.graph.Reserve(len(surface) * n)
		radius := tubeRadius(m, deltaA, deltaB, depth)
		r.options.Logger.Debug().
			Int("depth", depth).
			Int("surface", len(surface)).
			Float64("radius", radius).
			Msg("steinitz: expanding surface")

		next := make([]surfaceEntry, 0, len(surface)*n)
		for _, from := range surface {
			fromCost := r.graph.Node(from.idx).Cost

			for i := 0; i < n; i++ {
				candidate := from.vec.Add(r.problem.A().Column(i))
				if !r.inTube(candidate, radius) {
					continue
				}

				candidateCost := fromCost + c.At(i)
				toIdx, exists := r.graph.IndexOf(candidate)
				if !exists {
					toIdx = r.graph.AddNode(candidate, from.idx, i, candidateCost)
					next = append(next, surfaceEntry{idx: toIdx, vec: candidate})
				} else if toNode := r.graph.Node(toIdx); candidateCost > toNode.Cost {
					toNode.Cost = candidateCost
					toNode.Predecessor = from.idx
					toNode.Via = i
				}
				r.graph.AddEdge(from.idx, toIdx, i)
			}
		}
		surface = next
	}
}

// surfaceEntry pairs a graph node index with the vector it represents,
// carried across expansion rounds since the graph's side map only
// stores keys, not the vectors themselves.
type surfaceEntry struct {
	idx int
	vec vector.Vector
}

// inTube reports whether x is within radius of its projection onto the
// segment [0, b] of the line R*b (spec.md §4.2's geometry test). All
// arithmetic here is double precision, per the tube test's reliance on
// <x, b> and ||b||^2 rather than exact integer ratios.
func (r *runner) inTube(x vector.Vector, radius float64) bool {
	xf := x.AsFloat64()
	if r.bNormSq == 0 {
		return false
	}
	s := floats.Dot(xf, r.bFloat) / r.bNormSq
	s = clamp(s, 0, 1)

	var maxAbs float64
	for i, xi := range xf {
		d := math.Abs(xi - s*r.bFloat[i])
		if d > maxAbs {
			maxAbs = d
		}
	}
	return maxAbs <= radius
}

// tubeRadius computes R(d) = m * min(2*deltaA, deltaA + deltaB/d), the
// Eisenbrand-Weismantel depth-dependent tube radius.
func tubeRadius(m, deltaA, deltaB float64, depth int) float64 {
	return m * math.Min(2*deltaA, deltaA+deltaB/float64(depth))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// relaxLongestPaths runs up to |V|-2 additional Bellman-Ford sweeps
// over every edge in the graph (spec.md §4.2), halting early once a
// sweep makes no change.
func (r *runner) relaxLongestPaths() {
	c := r.problem.C()
	maxSweeps := r.graph.Size() - 2
	for sweep := 0; sweep < maxSweeps; sweep++ {
		changed := false
		for from := 0; from < r.graph.Size(); from++ {
			fromCost := r.graph.Node(from).Cost
			for _, e := range r.graph.Edges(from) {
				candidate := fromCost + c.At(e.Column)
				toNode := r.graph.Node(e.To)
				if candidate > toNode.Cost {
					toNode.Cost = candidate
					toNode.Predecessor = from
					toNode.Via = e.Column
					changed = true
				}
			}
		}
		r.options.Logger.Debug().Int("sweep", sweep).Bool("changed", changed).Msg("steinitz: bellman-ford sweep")
		if !changed {
			break
		}
	}
}

// extractSolution walks the predecessor chain from bIdx back to the
// origin, incrementing x at each step's via-column. A node's
// predecessor pointer is overwritten to bIdx once visited, so a walk
// that revisits bIdx signals a positive-cost cycle (ilp.ErrUnbounded).
func (r *runner) extractSolution(bIdx int) (ilp.Solution, error) {
	x := vector.Zero(r.problem.N())
	node := bIdx
	for {
		current := r.graph.Node(node)
		predecessor, via := current.Predecessor, current.Via
		if predecessor == bIdx {
			return vector.Vector{}, ilp.ErrUnbounded
		}
		current.Predecessor = bIdx

		x.Set(via, x.At(via)+1)
		node = predecessor
		if node == 0 {
			break
		}
	}
	return x, nil
}
