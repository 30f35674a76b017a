package ilp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-intopt/intopt/ilp"
	"github.com/go-intopt/intopt/matrix"
	"github.com/go-intopt/intopt/vector"
)

func identity3() (matrix.Matrix, vector.Vector, vector.Vector) {
	a := matrix.FromRowMajor(3, 3, []vector.IntData{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	b := vector.FromSlice([]vector.IntData{5, 6, 5})
	c := vector.FromSlice([]vector.IntData{1, 2, 3})
	return a, b, c
}

func TestNewCachesDeltas(t *testing.T) {
	a, b, c := identity3()
	p := ilp.New(a, b, c)
	require.Equal(t, vector.IntData(1), p.DeltaA())
	require.Equal(t, vector.IntData(6), p.DeltaB())
	require.Equal(t, 3, p.M())
	require.Equal(t, 3, p.N())
}

func TestNewDimensionMismatchPanics(t *testing.T) {
	a, _, c := identity3()
	badB := vector.Zero(2)
	require.Panics(t, func() { ilp.New(a, badB, c) })
}

func TestNewEmptyProblemPanics(t *testing.T) {
	require.Panics(t, func() {
		ilp.New(matrix.FromColumns([]vector.Vector{vector.Zero(0)}), vector.Zero(0), vector.Zero(1))
	})
}

func TestWithNamesSortsByIndex(t *testing.T) {
	a, b, c := identity3()
	p := ilp.WithNames(ilp.New(a, b, c), []ilp.VarMapping{
		{Name: "z", Index: 2},
		{Name: "x", Index: 0},
	})
	names := p.NamedVariables()
	require.Equal(t, "x", names[0].Name)
	require.Equal(t, "z", names[1].Name)
}

func TestWithNamesOutOfRangePanics(t *testing.T) {
	a, b, c := identity3()
	require.Panics(t, func() {
		ilp.WithNames(ilp.New(a, b, c), []ilp.VarMapping{{Name: "x", Index: 99}})
	})
}

func TestSimplifyCollapsesDuplicatesKeepingMaxCost(t *testing.T) {
	// Two duplicate columns [1,1]; the second has higher cost and
	// should survive. A third, distinct column always survives.
	a := matrix.FromColumns([]vector.Vector{
		vector.FromSlice([]vector.IntData{1, 1}),
		vector.FromSlice([]vector.IntData{1, 1}),
		vector.FromSlice([]vector.IntData{2, 0}),
	})
	b := vector.FromSlice([]vector.IntData{3, 1})
	c := vector.FromSlice([]vector.IntData{5, 9, 1})
	p := ilp.WithNames(ilp.New(a, b, c), []ilp.VarMapping{
		{Name: "x0", Index: 0},
		{Name: "x1", Index: 1},
		{Name: "x2", Index: 2},
	})

	simplified, pinned := p.Simplify()

	require.Equal(t, 2, simplified.N())
	require.ElementsMatch(t, []string{"x0"}, pinned)

	names := simplified.NamedVariables()
	require.Len(t, names, 2)
	// The surviving duplicate (originally x1, cost 9) keeps its name
	// and lands in the first kept slot (group discovered at i=0).
	require.Equal(t, "x1", names[0].Name)
	require.Equal(t, vector.IntData(9), simplified.C().At(0))
	require.Equal(t, "x2", names[1].Name)
}

func TestSimplifyTiesKeepEarliest(t *testing.T) {
	a := matrix.FromColumns([]vector.Vector{
		vector.FromSlice([]vector.IntData{1}),
		vector.FromSlice([]vector.IntData{1}),
	})
	b := vector.FromSlice([]vector.IntData{1})
	c := vector.FromSlice([]vector.IntData{4, 4})
	p := ilp.WithNames(ilp.New(a, b, c), []ilp.VarMapping{
		{Name: "first", Index: 0},
		{Name: "second", Index: 1},
	})

	simplified, pinned := p.Simplify()
	require.Equal(t, 1, simplified.N())
	require.Equal(t, []string{"second"}, pinned)
	require.Equal(t, "first", simplified.NamedVariables()[0].Name)
}

func TestSimplifyPreservesBAndRelativeOrder(t *testing.T) {
	a := matrix.FromColumns([]vector.Vector{
		vector.FromSlice([]vector.IntData{3, 0}),
		vector.FromSlice([]vector.IntData{0, 3}),
	})
	b := vector.FromSlice([]vector.IntData{9, 9})
	c := vector.FromSlice([]vector.IntData{1, 1})
	p := ilp.New(a, b, c)

	simplified, pinned := p.Simplify()
	require.Empty(t, pinned)
	require.Equal(t, 2, simplified.N())
	require.True(t, simplified.B().Equal(b))
	require.True(t, simplified.A().Column(0).Equal(a.Column(0)))
	require.True(t, simplified.A().Column(1).Equal(a.Column(1)))
}
