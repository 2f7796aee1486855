// Command finmat decides finiteness of finitely generated matrix groups
// over Q or a number field, from a YAML description of the generators.
//
// Exit codes: 0 success (group finite), 1 group proved infinite,
// 2 input or internal error.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/veldtlabs/finmat/recog"
)

var (
	// Global flags
	verbose    bool
	startAbove uint64

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "finmat",
	Short: "finmat - finite matrix group recognition over Q and number fields",
	Long: `finmat decides whether a set of invertible matrices over the rationals
or over an algebraic number field generates a finite group.

On success it reports a certified isomorphic copy of the group over a
finite field: the chosen prime, the residue field, and the exact order.
A negative verdict is a proof of infiniteness, not a timeout.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	// Error reporting happens once, in main; cobra stays quiet so the
	// infinite verdict is not followed by a second "Error:" line.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	recognizeCmd.Flags().Uint64Var(&startAbove, "start-above", 0, "start the prime search strictly above this bound (overrides the input file)")
	rootCmd.AddCommand(recognizeCmd)
	rootCmd.AddCommand(boundCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, recog.ErrGroupInfinite) {
			// The verdict was already printed by the subcommand.
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
