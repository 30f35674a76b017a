package ilp

import (
	"github.com/go-intopt/intopt/matrix"
	"github.com/go-intopt/intopt/vector"
)

// Simplify implements spec.md §4.1, the sole preprocessing step: every
// column is examined in original order; later columns equal to it are
// collapsed into one representative, keeping whichever has the
// greatest c-entry (ties keep the earliest). Collapsed variables are
// pinned to 0; the names of collapsed named columns are returned in the
// pinned slice (collapsed unnamed columns, such as slacks, are not
// listed). The returned ILP keeps the surviving
// columns in their original relative order, c restricted to them, b
// unchanged, and the name mapping rewritten to the new indices.
//
// Simplify does not print anything itself — per SPEC_FULL.md's
// ambient-stack split, reporting pinned variables is the driver's job;
// this keeps the core package free of I/O.
func (p ILP) Simplify() (ILP, []string) {
	if !p.a.HasDuplicateColumns() {
		return p, nil
	}

	n := p.N()
	nameByIndex := make([]string, n)
	for _, v := range p.names {
		nameByIndex[v.Index] = v.Name
	}

	visited := make([]bool, n)
	var keptColumns []vector.Vector
	var keptCost []vector.IntData
	var newNames []VarMapping
	var pinned []string

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		group := []int{i}
		bestIdx := i
		bestCost := p.c.At(i)

		colI := p.a.Column(i)
		for j := i + 1; j < n; j++ {
			if visited[j] {
				continue
			}
			if !p.a.Column(j).Equal(colI) {
				continue
			}
			visited[j] = true
			group = append(group, j)
			if cost := p.c.At(j); cost > bestCost {
				bestIdx, bestCost = j, cost
			}
		}

		newIdx := len(keptColumns)
		keptColumns = append(keptColumns, p.a.Column(bestIdx))
		keptCost = append(keptCost, bestCost)
		if name := nameByIndex[bestIdx]; name != "" {
			newNames = append(newNames, VarMapping{Name: name, Index: newIdx})
		}

		for _, idx := range group {
			if idx == bestIdx {
				continue
			}
			if name := nameByIndex[idx]; name != "" {
				pinned = append(pinned, name)
			}
		}
	}

	newA := matrix.FromColumns(keptColumns)
	newC := vector.FromSlice(keptCost)
	simplified := New(newA, p.b, newC)
	if len(newNames) > 0 {
		simplified = WithNames(simplified, newNames)
	}

	return simplified, pinned
}
