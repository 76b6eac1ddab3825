package ast

import "github.com/beakerlang/beakerc/internal/symbol"

// This file collects constructors for every Decl variant. declBase's
// fields are unexported so that Context() can only ever be set through
// SetContext, so the parser (and the elaborator, when it synthesizes a
// declaration of its own) builds declarations through these functions
// rather than composite-literal access to the embedded struct.

// NewVariableDecl builds a variable declaration. typeExpr may be nil if
// the variable's type is to be inferred from init.
func NewVariableDecl(name *symbol.Symbol, spec Specifier, typeExpr TypeExpr, init Expr) *VariableDecl {
	return &VariableDecl{declBase: declBase{name: name, spec: spec}, TypeExpr: typeExpr, Init: init}
}

// NewParameterDecl builds a function or method parameter declaration.
func NewParameterDecl(name *symbol.Symbol, typeExpr TypeExpr) *ParameterDecl {
	return &ParameterDecl{declBase: declBase{name: name}, TypeExpr: typeExpr}
}

// NewFunctionDecl builds a function declaration. body is nil for a
// forward declaration.
func NewFunctionDecl(name *symbol.Symbol, spec Specifier, params []*ParameterDecl, returnType TypeExpr, body Stmt) *FunctionDecl {
	return &FunctionDecl{
		declBase:       declBase{name: name, spec: spec},
		Params:         params,
		ReturnTypeExpr: returnType,
		Body:           body,
	}
}

// NewFieldDecl builds a record field declaration; its index is assigned
// later by the elaborator.
func NewFieldDecl(name *symbol.Symbol, typeExpr TypeExpr) *FieldDecl {
	return &FieldDecl{declBase: declBase{name: name}, TypeExpr: typeExpr, index: -1}
}

// NewMethodDecl builds a method declaration. Receiver is filled in by
// the elaborator once it knows which record owns this method.
func NewMethodDecl(name *symbol.Symbol, spec Specifier, params []*ParameterDecl, returnType TypeExpr, body Stmt) *MethodDecl {
	return &MethodDecl{
		FunctionDecl: FunctionDecl{
			declBase:       declBase{name: name, spec: spec},
			Params:         params,
			ReturnTypeExpr: returnType,
			Body:           body,
		},
	}
}

// NewRecordDecl builds a record declaration. baseName is nil for a root
// record.
func NewRecordDecl(name *symbol.Symbol, spec Specifier, baseName *symbol.Symbol, fields []*FieldDecl, methods []*MethodDecl) *RecordDecl {
	return &RecordDecl{
		declBase: declBase{name: name, spec: spec},
		BaseName: baseName,
		Fields:   fields,
		Methods:  methods,
	}
}

// NewModuleDecl builds the translation unit's root declaration.
func NewModuleDecl(decls []Decl) *ModuleDecl {
	return &ModuleDecl{Decls: decls}
}
