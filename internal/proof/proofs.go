package proof

import (
	"fmt"

	"github.com/evanrichter/modus/internal/ir"
	"github.com/evanrichter/modus/internal/sld"
	"github.com/evanrichter/modus/internal/unify"
)

// Proof is one reconstructed proof tree: the clause applied at this node,
// the valuation of its own variables (the clause's original variables for a
// Rule, the original goal's variables for the synthetic root Query node,
// empty for a Builtin), and its children indexed by body position.
type Proof struct {
	ClauseID  sld.ClauseID
	Valuation ir.Substitution
	Children  map[int]*Proof
}

// levelBodyIndex identifies a literal's origin by the level at which it was
// introduced and its position in the introducing clause's body; within a
// single root-to-leaf path this pair uniquely identifies the step that will
// eventually select and resolve it, since a linear path visits exactly one
// node per level.
type levelBodyIndex struct {
	level     int
	bodyIndex int
}

// consumerIndex maps each (introduction level, body index) appearing along
// path to the index of the step that selects the corresponding literal.
func consumerIndex(path []step) map[levelBodyIndex]int {
	out := make(map[levelBodyIndex]int, len(path))
	for i, st := range path {
		lit := st.Node.Goal[st.Resolvent.LiteralIndex]
		out[levelBodyIndex{level: lit.Introduction, bodyIndex: lit.Origin.BodyIndex}] = i
	}
	return out
}

// childCount returns how many direct children a clause application's proof
// node must have: 0 for a Builtin, the rule's body length for a Rule. The
// synthetic Query root is handled separately by Proofs itself.
func childCount(cid sld.ClauseID, rules []ir.Clause) int {
	switch cid.Kind {
	case sld.ClauseRule:
		return len(rules[cid.RuleIndex].Body)
	default:
		return 0
	}
}

// reconstruct builds the Proof node for path[stepIdx], recursing into each
// of its body literals' eventual resolution steps.
func reconstruct(path []step, rules []ir.Clause, finalMGU ir.Substitution, consumers map[levelBodyIndex]int, stepIdx int) *Proof {
	st := path[stepIdx]
	cid := st.Resolvent.ClauseID
	n := childCount(cid, rules)
	introducedAt := st.Node.Level + 1

	children := make(map[int]*Proof, n)
	for m := 0; m < n; m++ {
		idx, ok := consumers[levelBodyIndex{level: introducedAt, bodyIndex: m}]
		if !ok {
			panic(fmt.Sprintf("proof: clause %s body index %d never resolved along its own path", cid, m))
		}
		children[m] = reconstruct(path, rules, finalMGU, consumers, idx)
	}

	return &Proof{
		ClauseID:  cid,
		Valuation: unify.ComposeNoExtend(st.Resolvent.Renaming, finalMGU),
		Children:  children,
	}
}

// Proofs reconstructs one proof tree per distinct root-to-leaf path of tree,
// de-duplicated by the projected goal each proof's root valuation produces
// — first occurrence wins (no optimality ranking is attempted). rules
// must be the same program tree was built
// against, since a Rule ClauseID is an index into it.
func Proofs(tree *sld.Tree, rules []ir.Clause, goal []ir.Literal) []*Proof {
	goalIdentity := identityOver(goalVariables(goal))

	seen := map[string]bool{}
	var out []*Proof
	for _, path := range flattenPaths(tree) {
		finalMGU := composeAll(path)
		consumers := consumerIndex(path)

		root := &Proof{
			ClauseID:  sld.ClauseID{Kind: sld.ClauseQuery},
			Valuation: unify.ComposeNoExtend(goalIdentity, finalMGU),
			Children:  make(map[int]*Proof, len(goal)),
		}
		for i := range goal {
			if idx, ok := consumers[levelBodyIndex{level: 0, bodyIndex: i}]; ok {
				root.Children[i] = reconstruct(path, rules, finalMGU, consumers, idx)
			}
		}

		projected := ir.ApplyGoal(root.Valuation, goal)
		key := ir.GoalKey(projected)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, root)
	}
	return out
}
