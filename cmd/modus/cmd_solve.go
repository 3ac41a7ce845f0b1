package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanrichter/modus/internal/proof"
)

var solveCmd = &cobra.Command{
	Use:   "solve PROGRAM.yaml",
	Short: "Print every answer (the goal with its variables bound) for a program's goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := resolveProgram(args[0])
		if err != nil {
			return err
		}
		answers := proof.Solutions(result.Tree, result.Goal)
		if len(answers) == 0 {
			fmt.Println("no answers")
			return nil
		}
		for _, answer := range answers {
			fmt.Println(literalSequenceString(answer))
		}
		return nil
	},
}
