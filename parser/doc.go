// Package parser reads the expression-form ILP input format described
// in spec.md §6: a direction keyword ("maximize"/"minimize",
// case-insensitive), a linear objective sum, the literal phrase
// "subject to", and a ";"-separated list of equality or inequality
// constraints between two linear sums. Whitespace and line breaks are
// insignificant throughout.
//
// Parse builds the grammar's AST with github.com/alecthomas/participle/v2
// (the struct-tag-driven parser-combinator the wider example corpus
// reaches for when it needs a small textual DSL, replacing the
// original implementation's pest grammar — see DESIGN.md), then walks
// that AST to discover variables in objective-then-constraints,
// first-appearance order, move constants to the right-hand side of
// each constraint, and append one slack column per inequality.
package parser
