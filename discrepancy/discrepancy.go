package discrepancy

import (
	"fmt"
	"math"

	"github.com/go-intopt/intopt/ilp"
	"github.com/go-intopt/intopt/vector"
)

// Solve runs the discrepancy/DP engine (spec.md §4.3) against problem,
// returning a non-negative integer vector x with A*x = b maximising
// <c, x>, ilp.ErrNoSolution if b never enters the table, or
// ilp.ErrUnbounded if the table finds a positive-cost witness for
// A*x = 0 (only possible, and only checked, when A has a negative
// entry — spec.md §4.3). Rejects A with duplicate columns as
// ilp.ErrUnsupported before doing any work: two equal columns would
// let the table collapse one column's contribution into the other's,
// silently dropping a degree of freedom the caller may still want
// reported by name (original_source/src/ilp/discrepancy.rs's
// has_duplicate_columns guard). Callers running both engines
// back-to-back should call ILP.Simplify first, which collapses
// duplicate columns (keeping the highest-cost one) rather than
// rejecting the problem outright.
func Solve(problem ilp.ILP, opts ...Option) (ilp.Solution, error) {
	if problem.A().HasDuplicateColumns() {
		return vector.Vector{}, fmt.Errorf("%w: A has duplicate columns", ilp.ErrUnsupported)
	}

	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		problem: problem,
		options: cfg,
		table:   make(map[string]tableEntry, cfg.TableHint),
	}
	r.seedTable()

	H := r.hereditaryDiscrepancyBound()
	tolerance := 4 * H
	K := discrepancyRounds(problem.N(), problem.M(), problem.DeltaA(), problem.DeltaB())
	if cfg.MaxRounds > 0 && cfg.MaxRounds < K {
		K = cfg.MaxRounds
	}

	r.options.Logger.Debug().Int64("H", int64(H)).Int("K", K).Msg("discrepancy: parameters computed")

	for _, group := range buildGroups(problem.B(), K) {
		r.runGroup(group, tolerance)
	}

	if !problem.A().NonNegative() {
		if zero, ok := r.table[vector.Zero(problem.M()).Key()]; ok && zero.cost > 0 {
			return vector.Vector{}, ilp.ErrUnbounded
		}
	}

	hit, ok := r.table[problem.B().Key()]
	if !ok {
		return vector.Vector{}, ilp.ErrNoSolution
	}
	return hit.x, nil
}

// tableEntry is one row of the discrepancy table T: the right-hand
// side b' it was recorded under, the witness x with A*x = b', and the
// best known cost <c, x>.
type tableEntry struct {
	b    vector.Vector
	x    vector.Vector
	cost vector.IntData
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	problem ilp.ILP
	options Options
	table   map[string]tableEntry

	// round counts doublings across the whole solve, not reset per
	// group — the norm cap ceil(1.2^round) bounds total solution
	// growth since round 1, so it must keep climbing across group
	// boundaries even though each group's own j restarts at 0 for the
	// all-pairs-vs-previous-new pairing rule.
	round int
}

// seedTable installs the initial table: the zero vector maps to
// (0, 0), and each column A_{.,i} maps to (e_i, c_i).
func (r *runner) seedTable() {
	m, n := r.problem.M(), r.problem.N()
	zero := vector.Zero(m)
	r.table[zero.Key()] = tableEntry{b: zero, x: vector.Zero(n), cost: 0}

	a, c := r.problem.A(), r.problem.C()
	for i := 0; i < n; i++ {
		col := a.Column(i)
		entry := tableEntry{b: col, x: vector.Unit(n, i), cost: c.At(i)}
		if existing, ok := r.table[col.Key()]; !ok || entry.cost > existing.cost {
			r.table[col.Key()] = entry
		}
	}
}

// hereditaryDiscrepancyBound returns H = ceil(H(A)), §3's hereditary
// discrepancy upper bound.
func (r *runner) hereditaryDiscrepancyBound() vector.IntData {
	h := vector.IntData(math.Ceil(r.problem.A().HerdiscUpperBound()))
	if h < 1 {
		h = 1
	}
	return h
}

// discrepancyRounds computes K = max(1, ceil((2*ln(n) + (2m+1)*ln(m *
// max(Delta_A, Delta_b))) / ln(1.2))), the number of doubling rounds
// the referenced paper guarantees suffice.
func discrepancyRounds(n, m int, deltaA, deltaB vector.IntData) int {
	maxDelta := deltaA
	if deltaB > maxDelta {
		maxDelta = deltaB
	}
	if maxDelta < 1 {
		maxDelta = 1
	}

	numerator := 2*math.Log(float64(n)) + float64(2*m+1)*math.Log(float64(m)*float64(maxDelta))
	k := int(math.Ceil(numerator / math.Log(1.2)))
	if k < 1 {
		k = 1
	}
	return k
}

// roundGroup is a run of consecutive rounds i sharing the same scaled
// target s_i(b); itMax is how many doublings to attempt against it.
type roundGroup struct {
	target vector.Vector
	itMax  int
}

// buildGroups computes s_i(b) for i = 1..K and groups consecutive
// equal targets together.
func buildGroups(b vector.Vector, k int) []roundGroup {
	groups := make([]roundGroup, 0, k)
	for i := 1; i <= k; i++ {
		s := scaledTarget(b, i, k)
		if n := len(groups); n > 0 && groups[n-1].target.Equal(s) {
			groups[n-1].itMax++
			continue
		}
		groups = append(groups, roundGroup{target: s, itMax: 1})
	}
	return groups
}

// scaledTarget returns round(b * 2^(i-k)) coordinatewise — b
// approximated at resolution 2^(k-i); s_k(b) == b exactly.
func scaledTarget(b vector.Vector, i, k int) vector.Vector {
	scale := math.Pow(2, float64(i-k))
	out := vector.New(b.Len())
	for idx := 0; idx < b.Len(); idx++ {
		out.Append(vector.IntData(math.Round(float64(b.At(idx)) * scale)))
	}
	return out
}

// runGroup performs up to group.itMax doubling rounds against
// group.target, merging admissible sums into r.table after each round
// and stopping early once a round finds nothing new.
func (r *runner) runGroup(group roundGroup, tolerance vector.IntData) {
	var previousNew []string

	for j := 0; j < group.itMax; j++ {
		newSolutions := make(map[string]tableEntry)

		if j == 0 {
			keys := r.sortedKeys()
			for a := 0; a < len(keys); a++ {
				for b := a; b < len(keys); b++ {
					r.tryAdmit(r.table[keys[a]], r.table[keys[b]], group.target, tolerance, r.round, newSolutions)
				}
			}
		} else {
			for _, k1 := range previousNew {
				e1 := r.table[k1]
				for _, k2 := range r.sortedKeys() {
					r.tryAdmit(e1, r.table[k2], group.target, tolerance, r.round, newSolutions)
				}
			}
		}

		r.options.Logger.Debug().
			Str("target", group.target.Key()).
			Int("round", j).
			Int("added", len(newSolutions)).
			Msg("discrepancy: round complete")

		r.round++
		if len(newSolutions) == 0 {
			break
		}

		added := make([]string, 0, len(newSolutions))
		for key, entry := range newSolutions {
			r.table[key] = entry
			added = append(added, key)
		}
		previousNew = added
	}
}

// tryAdmit forms the pairwise sum of e1 and e2 and, if it lies within
// tolerance of target, improves on any existing table or buffered
// entry, and (when enabled) respects the one-norm cap for the given
// global round number, records it into newSolutions.
func (r *runner) tryAdmit(e1, e2 tableEntry, target vector.Vector, tolerance vector.IntData, round int, newSolutions map[string]tableEntry) {
	bSum := e1.b.Add(e2.b)
	if !bSum.MaxDistance(target, tolerance) {
		return
	}

	xSum := e1.x.Add(e2.x)
	costSum := e1.cost + e2.cost

	if r.options.NormCap && xSum.OneNorm() > normCap(round) {
		return
	}

	key := bSum.Key()
	if buffered, ok := newSolutions[key]; ok {
		if costSum <= buffered.cost {
			return
		}
	} else if existing, ok := r.table[key]; ok && costSum <= existing.cost {
		return
	}

	newSolutions[key] = tableEntry{b: bSum, x: xSum, cost: costSum}
}

// normCap returns ceil(1.2^j), the optional one-norm pruning bound.
func normCap(j int) vector.IntData {
	return vector.IntData(math.Ceil(math.Pow(1.2, float64(j))))
}

// sortedKeys returns the table's keys, unsorted. Order is arbitrary
// (spec.md §5: hash-table iteration order is unspecified) but fixed for
// the duration of one call, so runGroup's inner loop b := a..len(keys)-1
// visits every unordered pair, including a point paired with itself,
// exactly once.
func (r *runner) sortedKeys() []string {
	keys := make([]string, 0, len(r.table))
	for k := range r.table {
		keys = append(keys, k)
	}
	return keys
}
