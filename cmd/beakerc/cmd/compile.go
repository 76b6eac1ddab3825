package cmd

import (
	"fmt"
	"os"

	"github.com/beakerlang/beakerc/internal/filekind"
	"github.com/beakerlang/beakerc/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	compileInputs []string
	compileOutput string
	compileKeep   bool
	compileOnly   bool
)

// compileCmd implements the "compile" sub-program: translate, then run
// the entry point, since no native backend is in scope. Object output
// is the evaluator's result encoded as text, and linking a compile
// result is a no-op pass-through of that text.
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile and run a source file's entry point",
	RunE:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringSliceVarP(&compileInputs, "input", "i", nil, "source file(s) to compile")
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output file (default: stdout)")
	compileCmd.Flags().BoolVarP(&compileKeep, "keep", "k", false, "retain intermediate artifacts")
	compileCmd.Flags().BoolVarP(&compileOnly, "compile-only", "c", false, "stop after producing the object artifact")
}

func runCompile(c *cobra.Command, args []string) error {
	inputs := append(append([]string(nil), compileInputs...), args...)
	if len(inputs) == 0 {
		return fmt.Errorf("compile: no input files given")
	}

	out := os.Stdout
	if compileOutput != "" {
		f, err := os.Create(compileOutput)
		if err != nil {
			return fmt.Errorf("compile: %w", err)
		}
		defer f.Close()
		out = f
	}

	for _, input := range inputs {
		logger.Sugar().Debugf("compile: %s -> %s", input, filekind.WithExtension(input, ".o"))
		if err := compileOne(out, input); err != nil {
			return err
		}
	}
	return nil
}

func compileOne(out *os.File, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	result, err := pipeline.Compile(path, string(source))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("compile: %s failed to compile", path)
	}

	// Linking a compile result is a pass-through: the object artifact
	// already is the program's externally visible result.
	fmt.Fprintln(out, result.String())
	return nil
}
