package parser

import (
	"fmt"
	"strings"

	"github.com/go-intopt/intopt/ilp"
	"github.com/go-intopt/intopt/matrix"
	"github.com/go-intopt/intopt/vector"
)

// Parse reads source in the expression-form ILP grammar (spec.md
// §4.5) and returns the resulting ilp.ILP with its variable names
// attached. Variables are indexed in first-appearance order across
// the objective then the constraints, in that order; each inequality
// constraint contributes one unnamed slack column.
func Parse(source string) (ilp.ILP, error) {
	doc, err := grammar.ParseString("", source)
	if err != nil {
		return ilp.ILP{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	maximize := strings.EqualFold(doc.Direction, "maximize")

	varOrder, varIndex := discoverVariables(doc)
	m := len(doc.Constraints)
	n0 := len(varOrder)
	if m == 0 || n0 == 0 {
		return ilp.ILP{}, ErrEmptyProgram
	}

	columns := make([]vector.Vector, n0)
	for i := range columns {
		columns[i] = vector.Zero(m)
	}
	c := vector.Zero(n0)
	b := vector.Zero(m)

	for _, t := range doc.Objective.Terms {
		if t.Var == nil {
			if t.Coeff == nil {
				return ilp.ILP{}, fmt.Errorf("%w: sign with no integer or variable", ErrSyntax)
			}
			continue // objective constants don't affect c (spec.md §4.5).
		}
		delta := coefficient(t)
		idx := varIndex[*t.Var]
		if maximize {
			c.Set(idx, c.At(idx)+delta)
		} else {
			c.Set(idx, c.At(idx)-delta)
		}
	}

	for row, con := range doc.Constraints {
		var leftConst, rightConst vector.IntData
		for _, t := range con.Left.Terms {
			delta := coefficient(t)
			if t.Var == nil {
				if t.Coeff == nil {
					return ilp.ILP{}, fmt.Errorf("%w: sign with no integer or variable", ErrSyntax)
				}
				leftConst += delta
				continue
			}
			idx := varIndex[*t.Var]
			columns[idx].Set(row, columns[idx].At(row)+delta)
		}
		for _, t := range con.Right.Terms {
			delta := coefficient(t)
			if t.Var == nil {
				if t.Coeff == nil {
					return ilp.ILP{}, fmt.Errorf("%w: sign with no integer or variable", ErrSyntax)
				}
				rightConst += delta
				continue
			}
			idx := varIndex[*t.Var]
			columns[idx].Set(row, columns[idx].At(row)-delta)
		}
		b.Set(row, rightConst-leftConst)

		switch con.Op {
		case "<=":
			slack := vector.Zero(m)
			slack.Set(row, 1)
			columns = append(columns, slack)
			c.Append(0)
		case ">=":
			slack := vector.Zero(m)
			slack.Set(row, -1)
			columns = append(columns, slack)
			c.Append(0)
		case "=":
			// No slack column for an equality row.
		default:
			return ilp.ILP{}, fmt.Errorf("%w: unknown relational operator %q", ErrSyntax, con.Op)
		}
	}

	a := matrix.FromColumns(columns)
	names := make([]ilp.VarMapping, n0)
	for name, idx := range varIndex {
		names[idx] = ilp.VarMapping{Name: name, Index: idx}
	}

	return ilp.WithNames(ilp.New(a, b, c), names), nil
}

// discoverVariables walks the objective then the constraints, in
// order, recording each variable's first-appearance index.
func discoverVariables(doc *document) ([]string, map[string]int) {
	var order []string
	index := make(map[string]int)

	record := func(s *sum) {
		for _, t := range s.Terms {
			if t.Var == nil {
				continue
			}
			if _, ok := index[*t.Var]; !ok {
				index[*t.Var] = len(order)
				order = append(order, *t.Var)
			}
		}
	}

	record(doc.Objective)
	for _, con := range doc.Constraints {
		record(con.Left)
		record(con.Right)
	}
	return order, index
}

// coefficient returns a term's signed coefficient: the parsed integer
// if present, else 1 (a bare variable or bare sign), with Sign
// negating it.
func coefficient(t *term) vector.IntData {
	value := vector.IntData(1)
	if t.Coeff != nil {
		value = vector.IntData(*t.Coeff)
	}
	if t.Sign == "-" {
		value = -value
	}
	return value
}
