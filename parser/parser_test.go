package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-intopt/intopt/parser"
	"github.com/go-intopt/intopt/steinitz"
	"github.com/go-intopt/intopt/vector"
)

func TestParseIdentityMatrix(t *testing.T) {
	source := "maximize 1x + 2y + 3z subject to x = 5; y = 6; z = 5"

	problem, err := parser.Parse(source)
	require.NoError(t, err)
	require.Equal(t, 3, problem.M())
	require.Equal(t, 3, problem.N())
	require.True(t, problem.B().Equal(vector.FromSlice([]vector.IntData{5, 6, 5})))
	require.True(t, problem.C().Equal(vector.FromSlice([]vector.IntData{1, 2, 3})))

	names := problem.NamedVariables()
	require.Len(t, names, 3)
	require.Equal(t, "x", names[0].Name)
	require.Equal(t, "y", names[1].Name)
	require.Equal(t, "z", names[2].Name)
}

// TestParseLiteralSpecSyntax exercises spec.md §6's documented grammar
// exactly as written: the "subject to" phrase, ";" between
// constraints, and whitespace/line breaks that carry no meaning.
func TestParseLiteralSpecSyntax(t *testing.T) {
	source := "maximize\n  1*x_1 + 2*y\nSUBJECT TO\n  x_1 = 5 ;\n  y = 6\n"

	problem, err := parser.Parse(source)
	require.NoError(t, err)
	require.Equal(t, 2, problem.M())
	require.Equal(t, 2, problem.N())
	require.True(t, problem.B().Equal(vector.FromSlice([]vector.IntData{5, 6})))

	names := problem.NamedVariables()
	require.Len(t, names, 2)
	require.Equal(t, "x_1", names[0].Name)
	require.Equal(t, "y", names[1].Name)
}

func TestParseMinimizeNegatesObjective(t *testing.T) {
	problem, err := parser.Parse("minimize 1x subject to x = 4")
	require.NoError(t, err)
	require.Equal(t, vector.IntData(-1), problem.C().At(0))
}

func TestParseInequalityAppendsSlackColumn(t *testing.T) {
	problem, err := parser.Parse("maximize 1x subject to x <= 4")
	require.NoError(t, err)
	require.Equal(t, 1, problem.M())
	require.Equal(t, 2, problem.N())
	require.Equal(t, vector.IntData(1), problem.A().Column(1).At(0))
	require.Equal(t, vector.IntData(0), problem.C().At(1))

	x, err := steinitz.Solve(problem)
	require.NoError(t, err)
	require.Equal(t, vector.IntData(4), x.At(0))
}

func TestParseGreaterEqualNegatesSlackColumn(t *testing.T) {
	problem, err := parser.Parse("minimize 1x subject to x >= 4")
	require.NoError(t, err)
	require.Equal(t, vector.IntData(-1), problem.A().Column(1).At(0))
}

func TestParseMovesConstantsAcrossEquals(t *testing.T) {
	// "x + 2 = 7" moves the left constant to the right: b = 7 - 2 = 5.
	problem, err := parser.Parse("maximize 1x subject to x + 2 = 7")
	require.NoError(t, err)
	require.Equal(t, vector.IntData(5), problem.B().At(0))
}

func TestParseAllowsUnderscoreInVariableNames(t *testing.T) {
	problem, err := parser.Parse("maximize 1x_1 subject to x_1 = 3")
	require.NoError(t, err)
	require.Equal(t, "x_1", problem.NamedVariables()[0].Name)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	_, err := parser.Parse("not an ilp program at all @@@")
	require.ErrorIs(t, err, parser.ErrSyntax)
}

func TestParseRejectsEmptyProgram(t *testing.T) {
	// Every term here is a bare constant, so no variable is ever
	// discovered and n0 == 0.
	_, err := parser.Parse("maximize 2 subject to 3 = 3")
	require.ErrorIs(t, err, parser.ErrEmptyProgram)
}
