// Package elaborate implements the semantic analyzer: full type
// checking, name resolution, and implicit conversion insertion over the
// parser's tree, in place. Grounded on beaker/elaborator.hpp/.cpp, with
// the two-phase declare/define split it declares but never finishes
// implementing fully built out here, so module-scope functions can call
// each other regardless of declaration order.
package elaborate

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/scope"
	"github.com/beakerlang/beakerc/internal/symbol"
	"github.com/beakerlang/beakerc/internal/types"
)

// Elaborator holds the state threaded through one translation unit's
// semantic analysis: the canonical type store, the scope stack, and the
// location side table used to attach positions to diagnostics.
// Grounded on beaker/elaborator.hpp's Elaborator class (Scope_stack
// stack, Symbol_table syms_, Location_map locs_ fields).
type Elaborator struct {
	Store   *types.Store
	Symbols *symbol.Table
	Locs    *diag.Locations

	scopes    *scope.Stack
	loopDepth int
	main      *ast.FunctionDecl
}

// New creates an elaborator over a fresh type store and the given
// symbol table and location map (both owned by the lexer/parser that
// produced the tree being elaborated).
func New(symbols *symbol.Table, locs *diag.Locations) *Elaborator {
	return &Elaborator{
		Store:   types.NewStore(),
		Symbols: symbols,
		Locs:    locs,
		scopes:  scope.NewStack(),
	}
}

// Main returns the program's entry point, found by spelling during
// module elaboration: a function whose name equals "main" ignoring case
// is recorded as the entry point, or nil if the module declares none.
func (el *Elaborator) Main() *ast.FunctionDecl { return el.main }

func (el *Elaborator) loc(n ast.Node) diag.Location {
	if el.Locs == nil {
		return diag.Location{}
	}
	return el.Locs.Get(n)
}

func (el *Elaborator) errorf(n ast.Node, kind diag.Kind, format string, args ...any) error {
	return diag.New(kind, el.loc(n), format, args...)
}

func wrap(n ast.Node, loc *diag.Locations, kind diag.Kind, err error) error {
	if err == nil {
		return nil
	}
	l := diag.Location{}
	if loc != nil {
		l = loc.Get(n)
	}
	return diag.New(kind, l, "%s", err)
}

// ElaborateModule runs both phases of analysis over the whole
// translation unit: declare every top-level name first (so that every
// function signature is visible to every other function's body, however
// they are ordered in the source), then define every body. Grounded on
// beaker/elaborator.cpp's Module_decl case, split into two explicit
// passes rather than one.
func (el *Elaborator) ElaborateModule(mod *ast.ModuleDecl) error {
	leave := el.scopes.Enter(scope.ModuleScope, mod)
	defer leave()

	for _, d := range mod.Decls {
		if err := el.declare(d); err != nil {
			return err
		}
	}
	for _, d := range mod.Decls {
		if err := el.define(d); err != nil {
			return err
		}
	}
	return nil
}

// declare performs phase one: resolve a declaration's own type (its
// signature, for a function; its field types, for a record; its
// declared or inferred type, for a variable) and admit it into the
// current scope, without touching any function body or record method
// body.
func (el *Elaborator) declare(d ast.Decl) error {
	switch d := d.(type) {
	case *ast.FunctionDecl:
		return el.declareFunction(d)
	case *ast.VariableDecl:
		return el.declareVariable(d)
	case *ast.RecordDecl:
		return el.declareRecord(d)
	default:
		return el.errorf(d, diag.Type, "cannot declare %T", d)
	}
}

// define performs phase two: elaborate the body of every function and
// method declared in phase one, and the initializer of every variable
// not already fully elaborated during declare.
func (el *Elaborator) define(d ast.Decl) error {
	switch d := d.(type) {
	case *ast.FunctionDecl:
		return el.defineFunction(d)
	case *ast.VariableDecl:
		return nil // fully elaborated during declare
	case *ast.RecordDecl:
		return el.defineRecord(d)
	default:
		return el.errorf(d, diag.Type, "cannot define %T", d)
	}
}

func (el *Elaborator) admit(d ast.Decl) error {
	ast.SetContext(d, el.scopes.Current().Owner())
	_, err := scope.Admit(el.scopes.Current(), d)
	if err != nil {
		return wrap(d, el.Locs, diag.Type, err)
	}
	return nil
}
