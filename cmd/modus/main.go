// Command modus is the Modus logic-core CLI: load a YAML program, resolve
// its goal against the engine, and print answers or reconstructed proofs.
// Command/flag layout mirrors theRebelliousNerd/codenerd's nerd CLI (a
// cobra root command with a persistent --verbose flag wiring a zap logger,
// and a query/why command pair that this repo's solve/proofs mirror).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose  bool
	maxDepth int
	parallel bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "modus",
	Short: "Resolve Modus build-plan programs against the SLD engine",
	Long: `modus loads a YAML-encoded Modus program (clauses, groundness map,
and goal) and resolves it with the same SLD engine a real Modus build-plan
generator embeds.

  modus solve program.yaml     print every answer (the goal with its variables bound)
  modus proofs program.yaml    print every reconstructed proof tree
  modus builtins               list the fixed builtin predicate registry`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		cfg.EncoderConfig.TimeKey = "ts"
		built, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		requestID := uuid.New().String()
		logger = built.With(zap.String("request_id", requestID))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "override the program's max_depth (0: use the program's own value)")
	rootCmd.PersistentFlags().BoolVar(&parallel, "parallel", false, "explore a node's candidate clauses concurrently")

	rootCmd.AddCommand(solveCmd, proofsCmd, builtinsCmd)
}

func main() {
	start := time.Now()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logger != nil {
		logger.Debug("done", zap.Duration("elapsed", time.Since(start)))
	}
}
