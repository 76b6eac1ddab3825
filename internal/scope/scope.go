// Package scope implements the lexical scope stack and overload-set
// admission rules. Grounded on beaker/scope.hpp/.cpp (Scope,
// Record_scope, Scope_stack) and on a case-sensitive symbol-table style
// of outer-scope chaining with a Define* method family.
package scope

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/symbol"
)

// Kind classifies what a scope was opened for, mirroring beaker's
// Scope_stack::function()/module()/record() queries.
type Kind int

const (
	ModuleScope Kind = iota
	FunctionScope
	RecordScope
	BlockScope
)

// Overload is the set of declarations sharing one spelling in one
// scope: a single non-function declaration is a singleton overload set
// of size one; a function name may accumulate several, distinguished
// by parameter types (beaker/overload.hpp's Overload).
type Overload struct {
	Name  *symbol.Symbol
	Decls []ast.Decl
}

// IsSingleton reports whether this overload set names exactly one
// declaration.
func (o *Overload) IsSingleton() bool { return len(o.Decls) == 1 }

// Single returns the overload set's sole declaration. Only meaningful
// when IsSingleton is true.
func (o *Overload) Single() ast.Decl { return o.Decls[0] }

// Scope is one lexical binding level. Grounded on beaker/scope.hpp's
// Scope : Environment<Symbol const*, Overload>.
type Scope struct {
	kind  Kind
	owner ast.Decl // the function/record/module this scope was opened for, nil for a plain block
	outer *Scope
	table map[string]*Overload
}

func newScope(kind Kind, owner ast.Decl, outer *Scope) *Scope {
	return &Scope{kind: kind, owner: owner, outer: outer, table: make(map[string]*Overload)}
}

// Outer returns the enclosing scope, nil at the module scope.
func (s *Scope) Outer() *Scope { return s.outer }

// Kind reports what this scope was opened for.
func (s *Scope) Kind() Kind { return s.kind }

// Owner returns the declaration this scope belongs to (a *FunctionDecl,
// *RecordDecl, or *ModuleDecl); nil for a bare block scope.
func (s *Scope) Owner() ast.Decl { return s.owner }

// LookupLocal searches only this scope, not its enclosing scopes.
func (s *Scope) LookupLocal(name string) (*Overload, bool) {
	o, ok := s.table[name]
	return o, ok
}

// Lookup searches this scope and then each enclosing scope in turn,
// implementing beaker's unqualified_lookup.
func (s *Scope) Lookup(name string) (*Overload, bool) {
	for cur := s; cur != nil; cur = cur.outer {
		if o, ok := cur.table[name]; ok {
			return o, true
		}
	}
	return nil, false
}

// RecordScope walks outward to find the nearest enclosing record scope,
// mirroring beaker's Scope_stack::record().
func (s *Scope) RecordScope() (*ast.RecordDecl, bool) {
	for cur := s; cur != nil; cur = cur.outer {
		if cur.kind == RecordScope {
			return cur.owner.(*ast.RecordDecl), true
		}
	}
	return nil, false
}

// FunctionScope walks outward to find the nearest enclosing function
// scope, mirroring beaker's Scope_stack::function().
func (s *Scope) FunctionScope() (*ast.FunctionDecl, bool) {
	for cur := s; cur != nil; cur = cur.outer {
		if cur.kind == FunctionScope {
			switch owner := cur.owner.(type) {
			case *ast.FunctionDecl:
				return owner, true
			case *ast.MethodDecl:
				return &owner.FunctionDecl, true
			}
		}
	}
	return nil, false
}
