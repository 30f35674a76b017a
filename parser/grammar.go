package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ilpLexer tokenizes the expression-form input: a direction keyword,
// the "subject to" phrase, identifiers, integers, the relational and
// sign operators, the optional "*" between a coefficient and its
// variable, and the ";" constraint separator. Whitespace,
// including line breaks, is insignificant (spec.md §6) and is elided
// entirely rather than tokenized, so a program may be written on one
// line or spread across many with no change in meaning. A sum's term
// list is otherwise unbounded ("@@+"); what stops it from greedily
// consuming past the end of an objective or constraint is not a line
// boundary but the SubjectTo/Semi tokens themselves, which a term
// can never start with. SubjectTo must be tried before Ident, else
// "subject"/"to" would themselves lex as identifiers.
var ilpLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(maximize|minimize)\b`},
	{Name: "SubjectTo", Pattern: `(?i)subject\s+to\b`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Op", Pattern: `<=|>=|=`},
	{Name: "Sign", Pattern: `[+-]`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Semi", Pattern: `;`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// document is the grammar's top-level production, matching spec.md
// §6 literally:
//
//	ilp         := direction objective "subject to" constraints
//	constraints := constraint (";" constraint)*
type document struct {
	Direction   string        `parser:"@Keyword"`
	Objective   *sum          `parser:"@@"`
	Constraints []*constraint `parser:"SubjectTo @@ (Semi @@)*"`
}

// constraint is one row: two linear sums joined by a relational
// operator (spec.md §4.5: equality, or <=/>= producing a slack).
type constraint struct {
	Left  *sum   `parser:"@@"`
	Op    string `parser:"@Op"`
	Right *sum   `parser:"@@"`
}

// sum is a non-empty sequence of signed constants and signed
// coefficient-variable products.
type sum struct {
	Terms []*term `parser:"@@+"`
}

// term is one signed summand: a bare constant ("-5"), a product of a
// coefficient and a variable written in juxtaposition ("3x") or with
// an explicit "*" ("3*x"), or a bare variable with an implied
// coefficient of 1 ("-x"). A term without Var is a constant; Parse
// rejects a term parsed with neither Coeff nor Var (a lone sign) as
// ErrSyntax. coefficient() treats a nil Coeff as 1, so a bare "-x"
// still yields the right value.
type term struct {
	Sign  string  `parser:"@Sign?"`
	Coeff *int    `parser:"@Int?"`
	Var   *string `parser:"(Star? @Ident)?"`
}

var grammar = participle.MustBuild[document](
	participle.Lexer(ilpLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)
