// Package unify implements first-order syntactic unification over the
// flat (non-compound) ir.Term universe, substitution composition, and
// clause renaming, grounded on gitrdm/gokanlogic's primitives.go
// unify()/Bind()/Walk() shape — adapted here because Term values are
// immutable, so no mutex-guarded Var/Substitution types are needed, only
// plain value composition.
package unify

import "github.com/evanrichter/modus/internal/ir"

// Unify attempts to unify two literals, producing a most-general unifier.
// It succeeds only when the literals share a signature and every positional
// argument pair unifies.
func Unify(a, b ir.Literal) (ir.Substitution, bool) {
	if a.Signature() != b.Signature() {
		return nil, false
	}
	sub := ir.NewSubstitution()
	for i := range a.Args {
		next, ok := unifyTerm(a.Args[i], b.Args[i], sub)
		if !ok {
			return nil, false
		}
		sub = next
	}
	return sub, true
}

// unifyTerm unifies two terms under sub, returning the extended
// substitution. Walking each term through sub before comparing means any
// binding made earlier in the same Unify call is already applied to later
// pairs, which is what keeps the result idempotent.
func unifyTerm(a, b ir.Term, sub ir.Substitution) (ir.Substitution, bool) {
	wa := sub.Walk(a)
	wb := sub.Walk(b)

	if wa == wb {
		return sub, true
	}

	if ca, ok := ir.AsConstant(wa); ok {
		if _, ok := ir.AsConstant(wb); ok {
			// Two distinct constants: wa != wb was already established above.
			return nil, false
		}
		_ = ca
		// wb is a variable (and wa a constant): bind the variable.
		return sub.With(wb, wa), true
	}

	// wa is a variable (constant/constant and constant/variable cases are
	// handled above; this covers variable/variable and variable/constant).
	return sub.With(wa, wb), true
}

// ComposeExtend composes s1 then s2: s1's bindings are re-applied through
// s2, and s2's bindings whose key is absent from s1 are added.
func ComposeExtend(s1, s2 ir.Substitution) ir.Substitution {
	out := make(ir.Substitution, len(s1)+len(s2))
	for k, v := range s1 {
		out[k] = s2.Apply(v)
	}
	for k, v := range s2 {
		if _, ok := s1[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// ComposeNoExtend composes s1 then s2, like ComposeExtend, but drops keys
// not already present in s1. It is used to re-project an MGU through a
// clause's renaming substitution so that a reported valuation is keyed by
// the clause's original variables rather than its renamed copies.
func ComposeNoExtend(s1, s2 ir.Substitution) ir.Substitution {
	out := make(ir.Substitution, len(s1))
	for k, v := range s1 {
		out[k] = s2.Apply(v)
	}
	return out
}

// Rename produces a fresh copy of c in which every variable is replaced by
// a RenamedVariable, and returns both the renamed clause and the renaming
// substitution (original variable -> renamed variable).
func Rename(c ir.Clause) (ir.Clause, ir.Substitution) {
	renaming := make(ir.Substitution, len(c.Variables()))
	for v := range c.Variables() {
		renaming[v] = ir.NewRenamedVariable(v)
	}
	return renaming.ApplyClause(c), renaming
}
