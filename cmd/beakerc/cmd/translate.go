package cmd

import (
	"fmt"
	"os"

	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/filekind"
	"github.com/beakerlang/beakerc/internal/mangle"
	"github.com/beakerlang/beakerc/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	translateInputs []string
	translateOutput string
	translateKeep   bool
)

// translateCmd implements the "translate" sub-program: source -> an
// intermediate textual artifact, here an s-expression-flavored dump of
// the elaborated tree labeled with each declaration's mangled name,
// since no native backend is in scope.
var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate source files to the intermediate textual artifact",
	RunE:  runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().StringSliceVarP(&translateInputs, "input", "i", nil, "source file(s) to translate")
	translateCmd.Flags().StringVarP(&translateOutput, "output", "o", "", "output file (default: stdout)")
	translateCmd.Flags().BoolVarP(&translateKeep, "keep", "k", false, "retain intermediate artifacts")
}

func runTranslate(c *cobra.Command, args []string) error {
	inputs := append(append([]string(nil), translateInputs...), args...)
	if len(inputs) == 0 {
		return fmt.Errorf("translate: no input files given")
	}

	out := os.Stdout
	if translateOutput != "" {
		f, err := os.Create(translateOutput)
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}
		defer f.Close()
		out = f
	}

	for _, input := range inputs {
		logger.Sugar().Debugf("translate: %s is a %s file", input, filekind.Of(input))
		if err := translateOne(out, input); err != nil {
			return err
		}
	}
	return nil
}

func translateOne(out *os.File, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	unit, err := pipeline.Translate(path, string(source))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("translate: %s failed to translate", path)
	}

	fmt.Fprintf(out, "; %s\n", path)
	for _, d := range unit.Mod.Decls {
		fmt.Fprintf(out, "; %s -> %s\n", d.Name().Spelling(), mangle.Decl(d))
	}
	ast.Dump(out, unit.Mod)
	return nil
}
