package sld

import "github.com/evanrichter/modus/internal/ir"

// resolveGoal builds the successor goal for resolving the literal at lid
// against a clause whose (already-renamed) body is body, under the MGU mgu
// produced by unifying that clause's head with the selected literal. The
// selected literal is dropped, body is appended with fresh history stamped
// at level, and mgu is applied across the whole result — matching
// original_source/src/sld.rs's resolve(): `g.remove(lid); g.extend(body);
// g.substitute(mgu)`.
func resolveGoal(lid int, cid ClauseID, goal []GoalLiteral, mgu ir.Substitution, body []ir.Literal, level int) []GoalLiteral {
	out := make([]GoalLiteral, 0, len(goal)-1+len(body))
	for i, gl := range goal {
		if i == lid {
			continue
		}
		out = append(out, gl)
	}
	for i, l := range body {
		out = append(out, GoalLiteral{
			Literal:      l,
			Introduction: level,
			Origin:       Origin{Clause: cid, BodyIndex: i},
		})
	}
	for i, gl := range out {
		out[i] = GoalLiteral{
			Literal:      mgu.ApplyLiteral(gl.Literal),
			Introduction: gl.Introduction,
			Origin:       gl.Origin,
		}
	}
	return out
}
