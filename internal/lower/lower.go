// Package lower translates surface clauses (which may contain operator
// applications, disjunction, conjunction, and format-string terms) into a
// flat list of IR clauses. Grounded on original_source/src/translate.rs's
// `impl From<&ModusClause> for Vec<logic::Clause>` and
// convert_format_string.
package lower

import "github.com/evanrichter/modus/internal/surface"
import "github.com/evanrichter/modus/internal/ir"

// lowerLiteral lowers a surface literal's arguments to IR terms. Format
// string arguments expand to an auxiliary variable plus a prefix of
// string_concat literals that construct it; those prefix literals are
// returned separately so the caller can prepend them to whatever body the
// literal ends up in.
func lowerLiteral(l surface.Literal) ([]ir.Literal, ir.Literal) {
	var prefix []ir.Literal
	args := make([]ir.Term, len(l.Args))
	for i, a := range l.Args {
		switch t := a.(type) {
		case surface.Constant:
			args[i] = ir.Constant(t)
		case surface.UserVariable:
			args[i] = ir.UserVariable(t)
		case surface.FormatString:
			lits, v := expandFormatString(string(t))
			prefix = append(prefix, lits...)
			args[i] = v
		}
	}
	return prefix, ir.Literal{Predicate: l.Predicate, Args: args, Position: l.Position}
}

// lowerExpression returns every body (an ordered list of IR literals) that
// expr can lower to. And takes the Cartesian concatenation of its operands'
// bodies; Or takes their union; an operator application is transparent to
// lowering (the operator is forwarded, not interpreted, by leaving it out
// of the IR entirely — downstream stages read it off the surface AST).
func lowerExpression(expr surface.Expression) [][]ir.Literal {
	switch e := expr.(type) {
	case surface.ExprLiteral:
		prefix, lit := lowerLiteral(e.Literal)
		body := make([]ir.Literal, 0, len(prefix)+1)
		body = append(body, prefix...)
		body = append(body, lit)
		return [][]ir.Literal{body}

	case surface.ExprOperatorApplication:
		return lowerExpression(e.Expr)

	case surface.ExprAnd:
		left := lowerExpression(e.Left)
		right := lowerExpression(e.Right)
		out := make([][]ir.Literal, 0, len(left)*len(right))
		for _, lb := range left {
			for _, rb := range right {
				combined := make([]ir.Literal, 0, len(lb)+len(rb))
				combined = append(combined, lb...)
				combined = append(combined, rb...)
				out = append(out, combined)
			}
		}
		return out

	case surface.ExprOr:
		left := lowerExpression(e.Left)
		right := lowerExpression(e.Right)
		out := make([][]ir.Literal, 0, len(left)+len(right))
		out = append(out, left...)
		out = append(out, right...)
		return out

	default:
		return nil
	}
}

// LowerClause lowers one surface clause into zero or more IR clauses
// sharing the same head (modulo format-string rewriting of the head's own
// arguments). A nil Body lowers to a single fact with an empty body.
//
// If the head itself contains a format string, the literals needed to
// construct it are prepended to every produced clause's body — unlike a
// body literal's format string (which only needs proving along the one
// body it appears in), a head format string's bindings are needed no
// matter which body disjunct ultimately proves the clause.
func LowerClause(c surface.Clause) []ir.Clause {
	headPrefix, head := lowerLiteral(c.Head)

	var bodies [][]ir.Literal
	if c.Body == nil {
		bodies = [][]ir.Literal{nil}
	} else {
		bodies = lowerExpression(c.Body)
	}

	out := make([]ir.Clause, len(bodies))
	for i, b := range bodies {
		full := make([]ir.Literal, 0, len(headPrefix)+len(b))
		full = append(full, headPrefix...)
		full = append(full, b...)
		out[i] = ir.Clause{Head: head, Body: full}
	}
	return out
}

// LowerGoal lowers a query's literals the same way a clause body's literals
// are lowered: each literal's format-string prefix is expanded and spliced
// in immediately before it.
func LowerGoal(lits []surface.Literal) []ir.Literal {
	var out []ir.Literal
	for _, l := range lits {
		prefix, lit := lowerLiteral(l)
		out = append(out, prefix...)
		out = append(out, lit)
	}
	return out
}

// LowerProgram lowers an ordered sequence of surface clauses into the flat
// IR program the SLD engine resolves over, preserving clause order (later
// stages select rules by program order).
func LowerProgram(clauses []surface.Clause) []ir.Clause {
	var out []ir.Clause
	for _, c := range clauses {
		out = append(out, LowerClause(c)...)
	}
	return out
}
