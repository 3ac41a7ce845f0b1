package sld

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/evanrichter/modus/internal/builtin"
	"github.com/evanrichter/modus/internal/ir"
	"github.com/evanrichter/modus/internal/unify"
)

// candidate is one clause (builtin or user rule) whose head unifies with the
// literal currently selected at a tree node.
type candidate struct {
	id       ClauseID
	mgu      ir.Substitution
	renaming ir.Substitution
	body     []ir.Literal
}

// Solve builds the full SLD tree for goal against rules. It returns
// (nil, nil) if the goal has no proof within MaxDepth, and a non-nil error
// only for an unrecoverable Diagnostic (an unknown predicate) — those two
// failure modes are deliberately distinct channels.
func Solve(rules []ir.Clause, goal []ir.Literal, groundness GroundnessMap, opts Options) (*Tree, error) {
	initial := make([]GoalLiteral, len(goal))
	for i, l := range goal {
		initial[i] = GoalLiteral{
			Literal:      l,
			Introduction: 0,
			Origin:       Origin{Clause: ClauseID{Kind: ClauseQuery}, BodyIndex: i},
		}
	}
	return inner(rules, initial, groundness, opts, 0)
}

// inner implements original_source/src/sld.rs's sld()/inner() recursion: an
// empty goal is success (a leaf tree with no resolvents); a goal at the
// depth bound is a dead end; otherwise select the leftmost admissible
// literal, gather every clause whose head unifies with it (builtins first,
// then user rules in program order), recurse into each resulting resolvent
// goal, and keep only the resolvents whose subtree is non-nil. A node with
// zero surviving resolvents is itself a dead end, not a leaf — leaves are
// exactly the empty-goal case.
func inner(rules []ir.Clause, goal []GoalLiteral, groundness GroundnessMap, opts Options, level int) (*Tree, error) {
	if len(goal) == 0 {
		return &Tree{Goal: goal, Level: level}, nil
	}
	if level >= opts.MaxDepth {
		return nil, nil
	}

	lid, found, err := selectLiteral(goal, groundness)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	candidates := gatherCandidates(rules, goal[lid].Literal)
	if len(candidates) == 0 {
		return nil, nil
	}

	resolvents, err := exploreCandidates(rules, goal, groundness, opts, level, lid, candidates)
	if err != nil {
		return nil, err
	}
	if len(resolvents) == 0 {
		return nil, nil
	}
	return &Tree{Goal: goal, Level: level, Resolvents: resolvents}, nil
}

// gatherCandidates lists, in the order resolvents must appear (builtin match
// if any, then user rules in program order), every clause whose head
// unifies with selected.
func gatherCandidates(rules []ir.Clause, selected ir.Literal) []candidate {
	var out []candidate

	if outcome, mode := builtin.Select(selected); outcome == builtin.Match {
		if head, ok := mode.Apply(selected); ok {
			if mgu, ok := unify.Unify(head, selected); ok {
				out = append(out, candidate{
					id:       ClauseID{Kind: ClauseBuiltin, BuiltinHead: head},
					mgu:      mgu,
					renaming: ir.NewSubstitution(),
				})
			}
		}
	}

	for idx, rule := range rules {
		if rule.Head.Signature() != selected.Signature() {
			continue
		}
		renamed, renaming := unify.Rename(rule)
		mgu, ok := unify.Unify(renamed.Head, selected)
		if !ok {
			continue
		}
		out = append(out, candidate{
			id:       ClauseID{Kind: ClauseRule, RuleIndex: idx},
			mgu:      mgu,
			renaming: renaming,
			body:     renamed.Body,
		})
	}

	return out
}

// exploreCandidates builds the subtree for each candidate, in parallel when
// opts.Parallel is set, and returns the resolvents whose subtree survived.
// Results are always collected in candidate order regardless of execution
// order, so Parallel never changes a Tree's observable shape.
func exploreCandidates(rules []ir.Clause, goal []GoalLiteral, groundness GroundnessMap, opts Options, level, lid int, candidates []candidate) ([]Resolvent, error) {
	children := make([]*Tree, len(candidates))

	if opts.Parallel && len(candidates) > 1 {
		g := new(errgroup.Group)
		limit := opts.MaxParallelism
		if limit <= 0 {
			limit = runtime.GOMAXPROCS(0)
		}
		g.SetLimit(limit)
		for i, cand := range candidates {
			i, cand := i, cand
			g.Go(func() error {
				child, err := inner(rules, resolveGoal(lid, cand.id, goal, cand.mgu, cand.body, level+1), groundness, opts, level+1)
				if err != nil {
					return err
				}
				children[i] = child
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, cand := range candidates {
			child, err := inner(rules, resolveGoal(lid, cand.id, goal, cand.mgu, cand.body, level+1), groundness, opts, level+1)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
	}

	var resolvents []Resolvent
	for i, cand := range candidates {
		if children[i] == nil {
			continue
		}
		resolvents = append(resolvents, Resolvent{
			LiteralIndex: lid,
			ClauseID:     cand.id,
			MGU:          cand.mgu,
			Renaming:     cand.renaming,
			Child:        children[i],
		})
	}
	return resolvents, nil
}
