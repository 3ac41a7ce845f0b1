// Package builtin holds the fixed registry of builtin predicates the SLD
// engine consults before looking at user clauses: string_concat/3 (three
// groundness modes), run/1, and from/1.
//
// Grounded on original_source/src/builtin.rs's BuiltinPredicate trait
// (name/arg_groundness/select/apply) and select_builtin dispatch macro;
// modeled here as a table of value-like descriptors per gokando's "don't
// require polymorphic inheritance" norm (Registry in this file is the
// closest analogue to gokando's Relation/Fact value types in pldb.go).
package builtin

import "github.com/evanrichter/modus/internal/ir"

// Outcome is the result of selecting a builtin mode for a literal.
type Outcome int

const (
	// NoMatch means no builtin owns this predicate name.
	NoMatch Outcome = iota
	// Match means exactly one mode accepts the literal; Mode identifies it.
	Match
	// GroundnessMismatch means some registered mode has this name, but the
	// literal's argument groundness pattern satisfies none of them.
	GroundnessMismatch
)

// Mode is one groundness-qualified mode of a builtin predicate.
type Mode struct {
	// Name is the predicate name this mode handles.
	Name string
	// Groundness is the arg_groundness mask: Groundness[i] == true means
	// argument i may be a variable under this mode; false means it must be
	// a constant for this mode to apply.
	Groundness []bool
	// Apply produces a head literal that, when unified with the input,
	// realizes the mode's semantics. It returns ok == false if the mode's
	// semantics don't hold for the given (already-groundness-checked)
	// arguments, e.g. a suffix/prefix split that doesn't match.
	Apply func(ir.Literal) (ir.Literal, bool)
}

func (m Mode) selects(l ir.Literal) bool {
	if ir.Predicate(m.Name) != l.Predicate {
		return false
	}
	if len(m.Groundness) != len(l.Args) {
		return false
	}
	for i, mayBeVar := range m.Groundness {
		if mayBeVar {
			continue
		}
		if _, ok := ir.AsConstant(l.Args[i]); !ok {
			return false
		}
	}
	return true
}

// Registry is the ordered set of builtin modes. Dispatch among modes
// sharing a name goes by declaration order here: the first whose selects
// guard passes wins, matching the original's select_builtins! macro which
// short-circuits on the first matching mode.
var Registry = []Mode{
	stringConcatMode1,
	stringConcatMode2,
	stringConcatMode3,
	runMode,
	fromMode,
}

// Select returns the dispatch outcome for l: Match with the winning mode,
// GroundnessMismatch if some mode shares l's name but none of its modes
// accept l's groundness pattern, or NoMatch if no builtin owns this name at
// all.
func Select(l ir.Literal) (Outcome, Mode) {
	sameNameExists := false
	for _, m := range Registry {
		if ir.Predicate(m.Name) == l.Predicate {
			sameNameExists = true
		}
		if m.selects(l) {
			return Match, m
		}
	}
	if sameNameExists {
		return GroundnessMismatch, Mode{}
	}
	return NoMatch, Mode{}
}
