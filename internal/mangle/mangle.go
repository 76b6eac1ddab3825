// Package mangle computes the backend name-mangling scheme, used by the
// translate subcommand to label declarations in its dump of the
// elaborated tree — the nearest stand-in this repository has for the
// native-backend contract, which is otherwise out of scope. Grounded on
// beaker/mangle.cpp's family of `mangle(ostream&, T const*)` overloads,
// collapsed into one function per category dispatched with a type
// switch, matching this codebase's dispatch convention throughout.
package mangle

import (
	"fmt"
	"strings"

	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/types"
)

// Type renders t per the type-mangling grammar: b/c/i for the scalar
// families, F params* return for functions, A extent _ element for
// arrays, B element for blocks, R referent for references, Tr name _
// for records.
func Type(t types.Type) string {
	switch t := t.(type) {
	case types.BooleanType:
		return "b"
	case types.CharacterType:
		return "c"
	case types.IntegerType:
		return "i"
	case types.FloatType:
		return "f"
	case types.DoubleType:
		return "d"
	case *types.FunctionType:
		var b strings.Builder
		b.WriteByte('F')
		for _, p := range t.Params {
			b.WriteString(Type(p))
		}
		b.WriteString(Type(t.Result))
		return b.String()
	case *types.ArrayType:
		return fmt.Sprintf("A%d_%s", t.Extent, Type(t.Elem))
	case *types.BlockType:
		return "B" + Type(t.Elem)
	case *types.ReferenceType:
		return "R" + Type(t.Referent)
	case *types.RecordType:
		return "Tr" + t.Decl.RecordName() + "_"
	case *types.IDType:
		// Only ever reached for a type that failed to resolve; the
		// elaborator would have already reported the lookup error.
		return "?" + t.Name
	default:
		return "?"
	}
}

// Decl renders d's mangled linkage name. Foreign-linkage declarations
// mangle to their plain source spelling; everything else is its
// enclosing module name (if any), its own name, and its type mangling,
// concatenated with '_' separators, mirroring beaker/mangle.cpp's
// mangle_scope + name + '_' + type pattern.
func Decl(d ast.Decl) string {
	if d.Specifiers().Has(ast.Foreign) {
		return d.Name().Spelling()
	}
	switch d.(type) {
	case *ast.ParameterDecl, *ast.FieldDecl:
		// These never have a standalone linkage name of their own; the
		// original's equivalents are unreachable for the same reason.
		return d.Name().Spelling()
	case *ast.RecordDecl:
		return d.Name().Spelling()
	}

	var b strings.Builder
	if m := moduleName(d); m != "" {
		b.WriteString(m)
		b.WriteByte('_')
	}
	b.WriteString(d.Name().Spelling())
	b.WriteByte('_')
	b.WriteString(Type(d.Type()))
	return b.String()
}

// moduleName walks d's declaration context to the enclosing module, if
// any; this language's module is anonymous, with no "module name"
// directive, so there is currently never a prefix to emit, but the
// walk is kept so a named-module directive could be added later
// without touching every call site.
func moduleName(d ast.Decl) string {
	cxt := d.Context()
	for cxt != nil {
		if _, ok := cxt.(*ast.ModuleDecl); ok {
			return ""
		}
		cxt = cxt.Context()
	}
	return ""
}
