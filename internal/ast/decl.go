package ast

import (
	"fmt"
	"strings"

	"github.com/beakerlang/beakerc/internal/symbol"
	"github.com/beakerlang/beakerc/internal/types"
)

// VariableDecl declares a named, typed storage location. TypeExpr is
// the parser's unresolved annotation; Init is the (possibly absent)
// initializer expression, elaborated into a DefaultInit/CopyInit/
// ReferenceInit node. Grounded on beaker/decl.hpp's Variable_decl.
type VariableDecl struct {
	declBase
	TypeExpr TypeExpr
	Init     Expr
}

func (*VariableDecl) declNode() {}
func (d *VariableDecl) String() string {
	return fmt.Sprintf("var %s: %s = %s;", d.Name().Spelling(), d.TypeExpr, d.Init)
}

// ParameterDecl declares one function parameter. Grounded on
// beaker/decl.hpp's Parameter_decl.
type ParameterDecl struct {
	declBase
	TypeExpr TypeExpr
}

func (*ParameterDecl) declNode() {}
func (d *ParameterDecl) String() string {
	return fmt.Sprintf("%s: %s", d.Name().Spelling(), d.TypeExpr)
}

// FunctionDecl declares a (possibly overloaded, possibly forward)
// function. Body is nil for a forward declaration; HasBody distinguishes
// a declared-but-undefined function from a fully elaborated one, driving
// the two-phase admission rule. Grounded on beaker/decl.hpp's Function_decl.
type FunctionDecl struct {
	declBase
	Params         []*ParameterDecl
	ReturnTypeExpr TypeExpr
	Body           Stmt
}

func (*FunctionDecl) declNode() {}

// HasBody reports whether this declaration carries a definition.
func (d *FunctionDecl) HasBody() bool { return d.Body != nil }

// ReturnType returns the declared function type's result, valid once
// Type() has been elaborated to a *types.FunctionType.
func (d *FunctionDecl) ReturnType() types.Type {
	ft, ok := d.Type().(*types.FunctionType)
	if !ok {
		return nil
	}
	return ft.Result
}

func (d *FunctionDecl) String() string {
	parts := make([]string, len(d.Params))
	for i, p := range d.Params {
		parts[i] = p.String()
	}
	sig := fmt.Sprintf("def %s(%s): %s", d.Name().Spelling(), strings.Join(parts, ", "), d.ReturnTypeExpr)
	if d.Body == nil {
		return sig + ";"
	}
	return sig + " " + d.Body.String()
}

// FieldDecl declares one record field. Index is this field's position
// within its own declaring record's Fields list, computed once and
// cached by the elaborator, resolving the uninitialized-pointer defect
// in the original Field_decl::index(): a field is only ever asked for
// its position within its own declaring record, so the walk never needs
// to cross a base boundary — that boundary crossing belongs to member
// lookup's path construction, not to the field's own index.
type FieldDecl struct {
	declBase
	TypeExpr TypeExpr
	index    int
}

func (*FieldDecl) declNode() {}
func (d *FieldDecl) String() string {
	return fmt.Sprintf("%s: %s;", d.Name().Spelling(), d.TypeExpr)
}

// Index returns the field's position within its declaring record.
func (d *FieldDecl) Index() int { return d.index }

// SetIndex sets the field's cached position; called once by the
// elaborator while declaring a RecordDecl's fields.
func (d *FieldDecl) SetIndex(i int) { d.index = i }

// MethodDecl is a function with an implicit receiver of the enclosing
// record's type. Grounded on beaker/decl.hpp's Method_decl.
type MethodDecl struct {
	FunctionDecl
	Receiver *RecordDecl
}

func (*MethodDecl) declNode() {}

// RecordDecl declares a nominal record, optionally deriving from a
// single base record. BaseName is the unresolved base spelling from the
// parser (nil for a root record); BaseDecl is filled in by the elaborator.
// Grounded on beaker/decl.hpp's Record_decl.
type RecordDecl struct {
	declBase
	BaseName *symbol.Symbol
	BaseDecl *RecordDecl
	Fields   []*FieldDecl
	Methods  []*MethodDecl
}

func (*RecordDecl) declNode() {}

// RecordName implements types.RecordDecl.
func (d *RecordDecl) RecordName() string { return d.Name().Spelling() }

// Base implements types.RecordDecl without this package importing types'
// RecordDecl interface back at types (the interface is satisfied
// structurally).
func (d *RecordDecl) Base() (types.RecordDecl, bool) {
	if d.BaseDecl == nil {
		return nil, false
	}
	return d.BaseDecl, true
}

// FieldByIndex finds the field declared at the given index within this
// record only (no base-chain walk).
func (d *RecordDecl) FieldByIndex(i int) *FieldDecl {
	if i < 0 || i >= len(d.Fields) {
		return nil
	}
	return d.Fields[i]
}

// AllFields flattens this record's fields together with every base
// record's, ordered base-first, so that a record value's runtime
// storage can be one flat slice of cells.
func (d *RecordDecl) AllFields() []*FieldDecl {
	if d.BaseDecl == nil {
		return append([]*FieldDecl(nil), d.Fields...)
	}
	return append(d.BaseDecl.AllFields(), d.Fields...)
}

// InheritedFieldCount is the number of fields this record inherits from
// its base chain, i.e. the offset at which its own Fields begin within
// AllFields.
func (d *RecordDecl) InheritedFieldCount() int {
	if d.BaseDecl == nil {
		return 0
	}
	return len(d.BaseDecl.AllFields())
}

func (d *RecordDecl) String() string {
	parts := make([]string, 0, len(d.Fields)+len(d.Methods))
	for _, f := range d.Fields {
		parts = append(parts, f.String())
	}
	for _, m := range d.Methods {
		parts = append(parts, m.String())
	}
	header := "record " + d.Name().Spelling()
	if d.BaseName != nil {
		header += " : " + d.BaseName.Spelling()
	}
	return header + " { " + strings.Join(parts, " ") + " }"
}

// ModuleDecl is the translation unit's single root declaration: an
// ordered sequence of top-level declarations. Grounded on
// beaker/decl.hpp's Module_decl.
type ModuleDecl struct {
	declBase
	Decls []Decl
}

func (*ModuleDecl) declNode() {}
func (d *ModuleDecl) String() string {
	parts := make([]string, len(d.Decls))
	for i, decl := range d.Decls {
		parts[i] = decl.String()
	}
	return strings.Join(parts, "\n")
}
