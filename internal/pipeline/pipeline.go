// Package pipeline wires the lexer, parser, elaborator, and evaluator
// into the two front-end stages the driver dispatches between: translate
// (parse + elaborate, yielding an inspectable tree) and compile (the
// same, then evaluate). Grounded on beaker/compiler.cpp's translate/
// compile entry points, which thread one Context through the same
// sequence of phases.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/elaborate"
	"github.com/beakerlang/beakerc/internal/eval"
	"github.com/beakerlang/beakerc/internal/lexer"
	"github.com/beakerlang/beakerc/internal/parser"
	"github.com/beakerlang/beakerc/internal/symbol"
)

// Unit is one translated source file: its elaborated tree plus the
// elaborator state (type store, location map) later phases need.
type Unit struct {
	File string
	Mod  *ast.ModuleDecl
	El   *elaborate.Elaborator
}

// Translate runs the lexer, parser, and elaborator over source,
// returning the elaborated module or the accumulated diagnostics.
// Grounded on beaker/compiler.cpp's translate(), which stops at the
// elaborated tree and leaves code generation to a later stage.
func Translate(file, source string) (*Unit, error) {
	symbols := symbol.NewTable()
	locs := diag.NewLocations()

	lx := lexer.New(file, source, symbols)
	ps := parser.New(lx, symbols, locs)
	mod := ps.Parse()

	if errs := ps.Errors(); len(errs) > 0 {
		return nil, joinErrors(errs)
	}

	el := elaborate.New(symbols, locs)
	if err := el.ElaborateModule(mod); err != nil {
		return nil, err
	}

	return &Unit{File: file, Mod: mod, El: el}, nil
}

// Compile translates source and, if that succeeds, evaluates its main
// function, mirroring beaker/compiler.cpp's compile(): translate, then
// generate — here, evaluate in place of native code generation, since
// no backend is in scope.
func Compile(file, source string) (eval.Value, error) {
	unit, err := Translate(file, source)
	if err != nil {
		return nil, err
	}
	main := unit.El.Main()
	if main == nil {
		return nil, fmt.Errorf("%s: no entry point named %q", file, "main")
	}
	ev := eval.New(unit.El.Store, unit.El.Locs)
	return ev.Run(unit.Mod, main)
}

func joinErrors(errs []error) error {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return errors.New(strings.Join(parts, "\n"))
}
