// Package surface defines the surface-syntax data model that a parser
// produces and internal/lower consumes. No textual grammar is implemented
// here — per spec, the surface-syntax parser itself is an external
// collaborator; this package only defines the shape of its output, the way
// original_source/src/modusfile.rs's ModusClause/Expression/ModusTerm types
// do for the Rust implementation.
package surface

import "github.com/evanrichter/modus/internal/ir"

// Term is a surface-level argument: a constant, a user variable, or a
// format string awaiting expansion into a chain of string_concat literals.
type Term interface {
	isSurfaceTerm()
}

// Constant is a literal string argument.
type Constant string

func (Constant) isSurfaceTerm() {}

// UserVariable is a variable as written by the program author.
type UserVariable string

func (UserVariable) isSurfaceTerm() {}

// FormatString holds the raw, unparsed content of a format-string literal,
// e.g. `"ubuntu:${distr_version}"` with the raw value
// `ubuntu:${distr_version}`. internal/lower expands it into a chain of
// string_concat literals and an auxiliary variable standing in for the
// result.
type FormatString string

func (FormatString) isSurfaceTerm() {}

// Literal is a predicate applied to surface terms, with an optional source
// position carried through to the lowered IR literal for diagnostics.
type Literal struct {
	Predicate ir.Predicate
	Args      []Term
	Position  *ir.Position
}

// Expression is a clause body: a literal, a conjunction, a disjunction, or
// an operator application wrapping a sub-expression.
type Expression interface {
	isExpression()
}

// ExprLiteral is a leaf expression: a single literal.
type ExprLiteral struct {
	Literal Literal
}

func (ExprLiteral) isExpression() {}

// ExprAnd is the conjunction of two expressions.
type ExprAnd struct {
	Left, Right Expression
}

func (ExprAnd) isExpression() {}

// ExprOr is the disjunction of two expressions.
type ExprOr struct {
	Left, Right Expression
}

func (ExprOr) isExpression() {}

// ExprOperatorApplication wraps an expression with an operator literal that
// the core ignores (operators are interpreted downstream by the image-plan
// generator, not by lowering or resolution).
type ExprOperatorApplication struct {
	Expr     Expression
	Operator Literal
}

func (ExprOperatorApplication) isExpression() {}

// Clause is a surface clause: a head literal and an optional body
// expression. A nil Body lowers to a fact (an IR clause with empty body).
type Clause struct {
	Head Literal
	Body Expression
}
