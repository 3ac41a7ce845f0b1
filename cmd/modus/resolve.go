package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/evanrichter/modus/internal/ir"
	"github.com/evanrichter/modus/internal/lower"
	"github.com/evanrichter/modus/internal/program"
	"github.com/evanrichter/modus/internal/sld"
)

// loaded bundles everything resolveProgram produces from one program file:
// the lowered rule set, the lowered goal, and the tree built from them (nil
// if the goal has no proof within depth).
type loaded struct {
	Rules []ir.Clause
	Goal  []ir.Literal
	Tree  *sld.Tree
}

// resolveProgram loads path, lowers its clauses and goal, and runs the SLD
// engine over the result, honoring the --max-depth and --parallel flags.
func resolveProgram(path string) (*loaded, error) {
	doc, err := program.Load(path)
	if err != nil {
		return nil, err
	}

	groundness, err := doc.GroundnessMap()
	if err != nil {
		return nil, fmt.Errorf("groundness map: %w", err)
	}

	rules := lower.LowerProgram(doc.SurfaceClauses())
	goal := lower.LowerGoal(doc.SurfaceGoal())

	depth := doc.MaxDepth
	if maxDepth > 0 {
		depth = maxDepth
	}
	if depth <= 0 {
		return nil, fmt.Errorf("program %s: max_depth must be positive (set it in the program or pass --max-depth)", path)
	}

	logger.Debug("resolving",
		zap.String("program", path),
		zap.Int("rules", len(rules)),
		zap.Int("goal_literals", len(goal)),
		zap.Int("max_depth", depth),
		zap.Bool("parallel", parallel),
	)

	tree, err := sld.Solve(rules, goal, groundness, sld.Options{MaxDepth: depth, Parallel: parallel})
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return &loaded{Rules: rules, Goal: goal, Tree: tree}, nil
}
