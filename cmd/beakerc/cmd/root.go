// Package cmd implements the beakerc command-line driver: one binary,
// dispatched either by an explicit subcommand or by invocation name. A
// package-level rootCmd plus one file per subcommand, a persistent
// --verbose flag, and a custom version template.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// invocationName returns path's base name with any ".exe"/".out"
// extension trimmed, so invocation-name dispatch works the same on
// every platform the driver runs on.
func invocationName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(strings.TrimSuffix(name, ".exe"), ".out")
}

var (
	// Version is set by build flags; left at its development default
	// otherwise.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"

	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "beakerc",
	Short:   "Front end and interpreter for the beaker language",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(verbose)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newLogger configures a development logger (human-readable) at debug
// level under -v and the same logger raised to warn level and above
// otherwise, following neo-go's cli package convention of gating a
// verbose zap.Logger behind a single CLI flag.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		// A logger misconfiguration is a programmer error, not a
		// translation error; fall back rather than leave logger nil.
		return zap.NewNop()
	}
	return l
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("beakerc version %%s\ncommit: %s\n", GitCommit))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")
}

// Execute runs the root command, dispatching to translate when invoked
// under the translator's own name.
func Execute() {
	if dispatchByName(os.Args) {
		return
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dispatchByName runs the translate subcommand directly when argv[0]'s
// base name is the translator's own name, treating every remaining
// argument as an argument of translate; grounded on beaker/driver.cpp's
// name-based dispatch.
func dispatchByName(argv []string) bool {
	if len(argv) < 1 || invocationName(argv[0]) != "beaker-translate" {
		return false
	}
	rootCmd.SetArgs(append([]string{"translate"}, argv[1:]...))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return true
}
