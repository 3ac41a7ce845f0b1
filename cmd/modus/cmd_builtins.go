package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanrichter/modus/internal/builtin"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "List the fixed builtin predicate registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, mode := range builtin.Registry {
			fmt.Printf("%s/%d  groundness=%v\n", mode.Name, len(mode.Groundness), mode.Groundness)
		}
		return nil
	},
}
