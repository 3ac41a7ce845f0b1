package ir

import (
	"fmt"
	"strings"
)

// Position records where a literal appeared in source text, for diagnostics
// only. It has no bearing on the engine's resolution behavior.
type Position struct {
	Offset int
	Length int
}

// Predicate is a predicate symbol.
type Predicate string

// Signature is a predicate paired with its arity; it is the key against
// which the groundness map and rule-head matching are indexed.
type Signature struct {
	Predicate Predicate
	Arity     int
}

func (s Signature) String() string {
	return fmt.Sprintf("%s/%d", s.Predicate, s.Arity)
}

// Literal is an applied predicate: a name, an ordered sequence of term
// arguments, and an optional source position used only for diagnostics.
type Literal struct {
	Predicate Predicate
	Args      []Term
	Position  *Position
}

// Signature returns the literal's (predicate, arity) key.
func (l Literal) Signature() Signature {
	return Signature{Predicate: l.Predicate, Arity: len(l.Args)}
}

// Variables returns the union of the variables of l's arguments.
func (l Literal) Variables() map[Term]struct{} {
	out := map[Term]struct{}{}
	for _, a := range l.Args {
		for v := range Variables(a) {
			out[v] = struct{}{}
		}
	}
	return out
}

// IsGround reports whether every argument of l is a Constant.
func (l Literal) IsGround() bool {
	return len(l.Variables()) == 0
}

// EqualIgnoringPosition compares predicate and args only; required by the
// test suite because parsed and hand-built literals carry different (or
// absent) positions even when they denote the same literal.
func (l Literal) EqualIgnoringPosition(other Literal) bool {
	if l.Predicate != other.Predicate || len(l.Args) != len(other.Args) {
		return false
	}
	for i := range l.Args {
		if l.Args[i] != other.Args[i] {
			return false
		}
	}
	return true
}

// Equal is full structural equality, including Position. This is the
// default notion used internally (e.g. to de-duplicate answers); use
// EqualIgnoringPosition when comparing literals sourced from different
// parses or construction paths.
func (l Literal) Equal(other Literal) bool {
	if !l.EqualIgnoringPosition(other) {
		return false
	}
	switch {
	case l.Position == nil && other.Position == nil:
		return true
	case l.Position == nil || other.Position == nil:
		return false
	default:
		return *l.Position == *other.Position
	}
}

func (l Literal) String() string {
	if len(l.Args) == 0 {
		return string(l.Predicate)
	}
	parts := make([]string, len(l.Args))
	for i, a := range l.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", l.Predicate, strings.Join(parts, ", "))
}

// key is a canonical string encoding used to put literals (and goals, i.e.
// []Literal) into Go maps for set membership/de-duplication purposes. It
// folds in Position so that it agrees with Equal.
func (l Literal) key() string {
	var b strings.Builder
	b.WriteString(string(l.Predicate))
	b.WriteByte('(')
	for i, a := range l.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%T:%s", a, a.String())
	}
	b.WriteByte(')')
	if l.Position != nil {
		fmt.Fprintf(&b, "@%d:%d", l.Position.Offset, l.Position.Length)
	}
	return b.String()
}

// GoalKey is a canonical string encoding of an ordered literal sequence
// (a "goal"), suitable as a map key for de-duplicating sets of answers or
// proofs by the grounded goal they project to.
func GoalKey(goal []Literal) string {
	parts := make([]string, len(goal))
	for i, l := range goal {
		parts[i] = l.key()
	}
	return strings.Join(parts, "|")
}
