package sld

import (
	"github.com/evanrichter/modus/internal/builtin"
	"github.com/evanrichter/modus/internal/diag"
	"github.com/evanrichter/modus/internal/ir"
)

// selectLiteral scans goal left to right for the first admissible literal.
// A literal is admissible if a builtin mode matches it outright, or if its
// signature is in groundness and its argument pattern satisfies that
// signature's mask. A literal whose builtin modes all reject its
// groundness pattern, or whose signature satisfies neither condition, is
// skipped in favor of a later literal — except that a literal with no
// builtin of that name AND no groundness entry is genuinely unknown, which
// is reported as a Diagnostic rather than silently skipped.
//
// Grounded on original_source/src/sld.rs's select(): a groundness map
// entry always takes precedence over a same-named builtin's
// GroundnessMismatch, and GroundnessMismatch itself is never escalated to an
// error — only the total absence of both is.
func selectLiteral(goal []GoalLiteral, groundness GroundnessMap) (int, bool, error) {
	for idx, gl := range goal {
		lit := gl.Literal

		outcome, _ := builtin.Select(lit)
		if outcome == builtin.Match {
			return idx, true, nil
		}

		if mask, ok := groundness[lit.Signature()]; ok {
			if groundnessSatisfied(lit, mask) {
				return idx, true, nil
			}
			continue
		}

		if outcome == builtin.GroundnessMismatch {
			continue
		}

		return 0, false, diag.UnknownPredicate(lit.Position)
	}
	return 0, false, nil
}

// groundnessSatisfied reports whether lit's argument pattern is compatible
// with mask: every position where mask is false must hold a Constant.
func groundnessSatisfied(lit ir.Literal, mask []bool) bool {
	if len(mask) != len(lit.Args) {
		return false
	}
	for i, mayBeVar := range mask {
		if mayBeVar {
			continue
		}
		if _, ok := ir.AsConstant(lit.Args[i]); !ok {
			return false
		}
	}
	return true
}
