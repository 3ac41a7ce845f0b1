package ir

import "fmt"

// Term is a value in the intermediate language: a ground constant, a
// user-written variable, a variable introduced during lowering, or a fresh
// copy of some other variable introduced during clause renaming.
//
// All four implementations are plain comparable values (no pointers, no
// embedded mutexes), so a Term can be used directly as a map key and two
// Terms can be compared with ==: equality and hashing are structural. A
// miniKanren-style *Var/*Atom pair would instead carry identity via a
// mutex-guarded id field, because those terms can be mutated under
// concurrent search; these terms are immutable once constructed, so Go's
// built-in structural comparison already gives the semantics needed here.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Constant is a ground string value.
type Constant string

func (Constant) isTerm()         {}
func (c Constant) String() string { return fmt.Sprintf("%q", string(c)) }

// UserVariable is a variable written by the program author; its identity is
// its name.
type UserVariable string

func (UserVariable) isTerm()          {}
func (v UserVariable) String() string { return string(v) }

// AuxiliaryVariable is generated during surface-to-IR lowering, e.g. to hold
// an intermediate result of a format-string expansion. Its identity is a
// process-unique integer from the global fresh-id counter.
type AuxiliaryVariable uint64

func (AuxiliaryVariable) isTerm() {}
func (v AuxiliaryVariable) String() string {
	return fmt.Sprintf("__AUX_%d", uint64(v))
}

// NewAuxiliaryVariable draws a fresh AuxiliaryVariable from the global
// counter.
func NewAuxiliaryVariable() AuxiliaryVariable {
	return AuxiliaryVariable(nextID())
}

// RenamedVariable is a fresh copy of some other variable, created while
// renaming a clause so that applying it doesn't capture variables already
// in use elsewhere in the search. Its identity is ID; Inner records which
// variable it was copied from, for display purposes only.
type RenamedVariable struct {
	ID    uint64
	Inner Term
}

func (RenamedVariable) isTerm() {}
func (v RenamedVariable) String() string {
	return fmt.Sprintf("__RENAMED_%d(%s)", v.ID, v.Inner)
}

// NewRenamedVariable draws a fresh RenamedVariable copying inner.
func NewRenamedVariable(inner Term) RenamedVariable {
	return RenamedVariable{ID: nextID(), Inner: inner}
}

// IsGround reports whether t is a Constant.
func IsGround(t Term) bool {
	_, ok := t.(Constant)
	return ok
}

// Variables returns the set of variables occurring in t: empty for a
// Constant, {t} otherwise.
func Variables(t Term) map[Term]struct{} {
	if IsGround(t) {
		return map[Term]struct{}{}
	}
	return map[Term]struct{}{t: {}}
}

// AsConstant returns the underlying string and true if t is a Constant.
func AsConstant(t Term) (string, bool) {
	c, ok := t.(Constant)
	return string(c), ok
}
