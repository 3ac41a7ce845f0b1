// Package proof extracts answers and proof trees from a built sld.Tree.
// Grounded on original_source/src/sld.rs's solutions()/proofs()/
// flatten_compose()/proof_for_level().
package proof

import (
	"github.com/evanrichter/modus/internal/ir"
	"github.com/evanrichter/modus/internal/sld"
	"github.com/evanrichter/modus/internal/unify"
)

// step is one clause application along a root-to-leaf path: the node before
// resolution (its goal and level) and the resolvent chosen at that node.
type step struct {
	Node      *sld.Tree
	Resolvent sld.Resolvent
}

// flattenPaths enumerates every root-to-leaf path through tree's resolvent
// structure. A leaf is a node with an empty goal (success); a node with a
// non-empty goal and no resolvents cannot occur in a tree built by sld.Solve
// (inner returns nil rather than construct such a node), so it contributes
// no paths.
func flattenPaths(tree *sld.Tree) [][]step {
	if tree == nil {
		return nil
	}
	if len(tree.Resolvents) == 0 {
		if len(tree.Goal) == 0 {
			return [][]step{{}}
		}
		return nil
	}
	var out [][]step
	for _, r := range tree.Resolvents {
		for _, rest := range flattenPaths(r.Child) {
			path := make([]step, 0, len(rest)+1)
			path = append(path, step{Node: tree, Resolvent: r})
			path = append(path, rest...)
			out = append(out, path)
		}
	}
	return out
}

// composeAll folds compose_extend across a path's MGUs in root-to-leaf
// order, producing the single substitution that answers/proofs project the
// original goal through.
func composeAll(path []step) ir.Substitution {
	acc := ir.NewSubstitution()
	for _, st := range path {
		acc = unify.ComposeExtend(acc, st.Resolvent.MGU)
	}
	return acc
}

func goalVariables(goal []ir.Literal) map[ir.Term]struct{} {
	out := map[ir.Term]struct{}{}
	for _, l := range goal {
		for v := range l.Variables() {
			out[v] = struct{}{}
		}
	}
	return out
}

func identityOver(vars map[ir.Term]struct{}) ir.Substitution {
	out := ir.NewSubstitution()
	for v := range vars {
		out[v] = v
	}
	return out
}
