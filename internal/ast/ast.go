// Package ast defines the tree produced by the parser and mutated in
// place by the elaborator. Each category (Type expression, Expr, Stmt,
// Decl) is a small interface with one concrete struct per variant,
// dispatched with a type switch rather than the double-dispatch visitor
// of the beaker sources this package's domain logic is grounded on.
// Shaped around Node/Expression/Statement interfaces with one struct
// per node.
package ast

import (
	"github.com/beakerlang/beakerc/internal/symbol"
	"github.com/beakerlang/beakerc/internal/types"
)

// Node is the minimal capability every tree node provides: a debug
// rendering used by the translate subcommand and by tests. Source
// positions live in a side table (diag.Locations), not on the node
// itself.
type Node interface {
	String() string
}

// Specifier is the bitset of declaration specifiers a declaration may carry.
type Specifier int

const (
	NoSpec   Specifier = 0
	Foreign  Specifier = 1 << iota
	Virtual
	Abstract
	Root
)

func (s Specifier) Has(f Specifier) bool { return s&f != 0 }

// typed is embedded by every Expr to provide the cached post-elaboration
// type cell, initially nil, following a read-once/write-once discipline:
// once SetType has been called, elaboration never calls it again on the
// same node.
type typed struct {
	typ types.Type
}

func (t *typed) Type() types.Type      { return t.typ }
func (t *typed) SetType(ty types.Type) { t.typ = ty }

// Expr is any node that produces a value.
type Expr interface {
	Node
	Type() types.Type
	SetType(types.Type)
	exprNode()
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is any named entity declaration.
type Decl interface {
	Node
	Name() *symbol.Symbol
	Type() types.Type
	SetType(types.Type)
	Specifiers() Specifier
	Context() Decl
	setContext(Decl)
	declNode()
}

// declBase is embedded by every Decl, grounded on beaker/decl.hpp's Decl
// base class (specifier flags, name, declared type, enclosing context).
type declBase struct {
	spec Specifier
	name *symbol.Symbol
	typ  types.Type
	cxt  Decl
}

func (d *declBase) Name() *symbol.Symbol  { return d.name }
func (d *declBase) Type() types.Type      { return d.typ }
func (d *declBase) SetType(t types.Type)  { d.typ = t }
func (d *declBase) Specifiers() Specifier { return d.spec }
func (d *declBase) Context() Decl         { return d.cxt }
func (d *declBase) setContext(c Decl)     { d.cxt = c }

// SetContext is the exported form of setContext, used by the scope
// stack when it binds a declaration into the current scope.
func SetContext(d Decl, cxt Decl) { d.setContext(cxt) }
