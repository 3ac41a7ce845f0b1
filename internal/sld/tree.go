// Package sld builds an SLD tree by selecting a goal literal, resolving it
// against builtins and user clauses, and recursing with a depth bound,
// carrying per-literal history so a proof tree can later be reconstructed.
// Grounded on original_source/src/sld.rs's sld()/inner()/resolve(), adapted
// to gitrdm/gokanlogic's preference for plain immutable values over
// mutex-guarded state: the hot path here is purely functional.
package sld

import (
	"fmt"

	"github.com/evanrichter/modus/internal/ir"
)

// ClauseKind distinguishes the three ways a resolvent can have been
// produced.
type ClauseKind int

const (
	// ClauseQuery marks the original goal's own literals.
	ClauseQuery ClauseKind = iota
	// ClauseRule marks a resolvent produced by a user-defined rule.
	ClauseRule
	// ClauseBuiltin marks a resolvent produced by a builtin predicate.
	ClauseBuiltin
)

// ClauseID is a tagged union identifying the clause a resolvent came from:
// the query itself, a user rule by index, or a builtin's fabricated head
// literal.
type ClauseID struct {
	Kind        ClauseKind
	RuleIndex   int
	BuiltinHead ir.Literal
}

func (c ClauseID) String() string {
	switch c.Kind {
	case ClauseQuery:
		return "query"
	case ClauseRule:
		return fmt.Sprintf("rule#%d", c.RuleIndex)
	case ClauseBuiltin:
		return fmt.Sprintf("builtin(%s)", c.BuiltinHead)
	default:
		return "?"
	}
}

// Origin identifies where a literal in a goal-with-history came from: the
// clause that introduced it, and its index within that clause's body.
type Origin struct {
	Clause    ClauseID
	BodyIndex int
}

// GoalLiteral is a literal paired with the tree level at which it was
// introduced and its origin, enabling proof reconstruction.
type GoalLiteral struct {
	Literal      ir.Literal
	Introduction int
	Origin       Origin
}

// Resolvent is one entry of a Tree node's resolvent set: the clause
// applied, the MGU produced by unifying its head against the selected
// literal, the renaming substitution used to freshen that clause's
// variables (empty for Query/Builtin), and the subtree built from the
// resulting resolvent goal.
type Resolvent struct {
	LiteralIndex int
	ClauseID     ClauseID
	MGU          ir.Substitution
	Renaming     ir.Substitution
	Child        *Tree
}

// Tree is one node of the SLD search: a goal with history, the level at
// which it was reached, and the resolvents produced by selecting and
// resolving its leftmost admissible literal. Resolvents is ordered
// (builtin match, if any, before user rules in program order) rather than
// map-keyed, since Go literals aren't comparable, and the ordering already
// satisfies the requirements that builtin resolvents precede rule
// resolvents and that rule iteration order is the program order.
type Tree struct {
	Goal       []GoalLiteral
	Level      int
	Resolvents []Resolvent
}
