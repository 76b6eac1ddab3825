package scope

import (
	"github.com/beakerlang/beakerc/internal/ast"
)

// Stack is the scope stack the elaborator pushes and pops as it enters
// and leaves blocks, functions, and records. Grounded on
// beaker/scope.hpp's Scope_stack, reimplemented as a Go value with an
// Enter method returning a closer instead of a Scope_sentinel RAII
// guard, so callers use defer in place of guard-object destruction.
type Stack struct {
	top *Scope
}

// NewStack creates an empty scope stack.
func NewStack() *Stack { return &Stack{} }

// Current returns the innermost open scope, nil if the stack is empty.
func (st *Stack) Current() *Scope { return st.top }

// Enter opens a new scope of the given kind, owned by owner, and
// returns a function that restores the previous current scope. Callers
// use it with defer, mirroring beaker's Scope_sentinel but without a
// dedicated guard type:
//
//	leave := stack.Enter(scope.BlockScope, nil)
//	defer leave()
func (st *Stack) Enter(kind Kind, owner ast.Decl) (leave func()) {
	prev := st.top
	st.top = newScope(kind, owner, prev)
	return func() { st.top = prev }
}

// Disposition is the result of attempting to admit a declaration into a
// scope: extend, replace, or reject its overload set.
type Disposition int

const (
	// New means the spelling was unbound in this scope; a fresh
	// singleton overload set was created.
	New Disposition = iota
	// Extend means d was appended to an existing function overload set
	// because its signature differs from every sibling's.
	Extend
	// Replace means d supplies the body for an existing forward
	// function declaration with a matching signature.
	Replace
)

// Admit implements the overload-set admission rule, grounded
// on beaker/overload.cpp's can_overload / can_overload_functions /
// vary_only_in_return_type / diagnose_error. d.Type() must already be
// resolved (the declare phase elaborates a declaration's own signature
// before admitting it), so admission can compare function types
// directly instead of deferring to body elaboration.
func Admit(s *Scope, d ast.Decl) (Disposition, error) {
	name := d.Name().Spelling()
	existing, ok := s.table[name]
	if !ok {
		s.table[name] = &Overload{Name: d.Name(), Decls: []ast.Decl{d}}
		return New, nil
	}

	fn, isFunc := asFunction(d)
	if !isFunc {
		// Non-function declarations never overload: any existing binding
		// for this spelling, function or not, is a conflict.
		return New, redefinitionError(d)
	}

	for i, prev := range existing.Decls {
		prevFn, wasFunc := asFunction(prev)
		if !wasFunc {
			return New, conflictingKindError(d)
		}
		sameSig := sameSignature(fn, prevFn)
		if !sameSig {
			continue
		}
		if !prevFn.HasBody() && fn.HasBody() {
			existing.Decls[i] = d
			return Replace, nil
		}
		if sameReturn(fn, prevFn) {
			return New, redefinitionError(d)
		}
		return New, returnTypeOnlyError(d)
	}
	existing.Decls = append(existing.Decls, d)
	return Extend, nil
}

func asFunction(d ast.Decl) (*ast.FunctionDecl, bool) {
	switch d := d.(type) {
	case *ast.FunctionDecl:
		return d, true
	case *ast.MethodDecl:
		return &d.FunctionDecl, true
	default:
		return nil, false
	}
}
