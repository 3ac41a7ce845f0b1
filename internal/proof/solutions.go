package proof

import (
	"github.com/evanrichter/modus/internal/ir"
	"github.com/evanrichter/modus/internal/sld"
)

// Solutions enumerates every root-to-leaf path of tree, composes each path's
// MGUs, applies the result to the original goal, and returns the set of
// distinct grounded answers — distinct by structural equality, first
// occurrence wins, matching the de-dup rule used throughout this package.
// tree may be nil (no proof within the depth bound), in which case the
// result is empty.
func Solutions(tree *sld.Tree, goal []ir.Literal) [][]ir.Literal {
	seen := map[string]bool{}
	var out [][]ir.Literal
	for _, path := range flattenPaths(tree) {
		answer := ir.ApplyGoal(composeAll(path), goal)
		key := ir.GoalKey(answer)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, answer)
	}
	return out
}
