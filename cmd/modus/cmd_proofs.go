package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evanrichter/modus/internal/ir"
	"github.com/evanrichter/modus/internal/proof"
)

var proofsCmd = &cobra.Command{
	Use:   "proofs PROGRAM.yaml",
	Short: "Print every reconstructed proof tree for a program's goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := resolveProgram(args[0])
		if err != nil {
			return err
		}
		proofs := proof.Proofs(result.Tree, result.Rules, result.Goal)
		if len(proofs) == 0 {
			fmt.Println("no proofs")
			return nil
		}
		for i, p := range proofs {
			fmt.Printf("proof %d:\n", i+1)
			printProof(p, 1)
		}
		return nil
	},
}

func printProof(p *proof.Proof, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s  valuation=%s\n", indent, p.ClauseID, valuationString(p.Valuation))

	indices := make([]int, 0, len(p.Children))
	for idx := range p.Children {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	for _, idx := range indices {
		printProof(p.Children[idx], depth+1)
	}
}

func valuationString(sub ir.Substitution) string {
	if len(sub) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(sub))
	for v, t := range sub {
		parts = append(parts, fmt.Sprintf("%s=%s", v, t))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}
