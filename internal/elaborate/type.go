package elaborate

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/token"
	"github.com/beakerlang/beakerc/internal/types"
)

// builtinScalars maps the reserved type-name spellings to their
// canonical type, checked before falling back to record lookup.
func (el *Elaborator) builtinScalar(name string) (types.Type, bool) {
	switch name {
	case "bool":
		return el.Store.GetBoolean(), true
	case "char":
		return el.Store.GetCharacter(), true
	case "int":
		return el.Store.GetInteger(32, true), true
	case "int16":
		return el.Store.GetInteger(16, true), true
	case "int64":
		return el.Store.GetInteger(64, true), true
	case "uint":
		return el.Store.GetInteger(32, false), true
	case "uint16":
		return el.Store.GetInteger(16, false), true
	case "uint64":
		return el.Store.GetInteger(64, false), true
	case "float":
		return el.Store.GetFloat(), true
	case "double":
		return el.Store.GetDouble(), true
	}
	return nil, false
}

// ElaborateType resolves a parsed type expression to a canonical
// types.Type, grounded on beaker/elaborator.hpp's elaborate_type
// overloads: an Id_type resolves through unqualified lookup exactly
// like an identifier expression.
func (el *Elaborator) ElaborateType(te ast.TypeExpr) (types.Type, error) {
	switch te := te.(type) {
	case *ast.NamedTypeExpr:
		name := te.Name.Spelling()
		if t, ok := el.builtinScalar(name); ok {
			return t, nil
		}
		ov, ok := el.scopes.Current().Lookup(name)
		if !ok {
			return nil, el.errorf(te, diag.Lookup, "undeclared type %q", name)
		}
		if !ov.IsSingleton() {
			return nil, el.errorf(te, diag.Lookup, "%q does not name a type", name)
		}
		rec, ok := ov.Single().(*ast.RecordDecl)
		if !ok {
			return nil, el.errorf(te, diag.Type, "%q does not name a type", name)
		}
		return el.Store.GetRecord(rec), nil

	case *ast.ArrayTypeExpr:
		elem, err := el.ElaborateType(te.Elem)
		if err != nil {
			return nil, err
		}
		extentExpr, err := el.elaborateExpr(te.Extent)
		if err != nil {
			return nil, err
		}
		extent, ok := constantInt(extentExpr)
		if !ok {
			return nil, el.errorf(te.Extent, diag.Type, "array extent must be a constant integer expression")
		}
		if extent < 0 {
			return nil, el.errorf(te.Extent, diag.Type, "array extent must be non-negative, got %d", extent)
		}
		return el.Store.GetArray(elem, extent), nil

	case *ast.BlockTypeExpr:
		elem, err := el.ElaborateType(te.Elem)
		if err != nil {
			return nil, err
		}
		return el.Store.GetBlock(elem), nil

	case *ast.ReferenceTypeExpr:
		referent, err := el.ElaborateType(te.Referent)
		if err != nil {
			return nil, err
		}
		return el.Store.GetReference(referent), nil

	default:
		return nil, el.errorf(te, diag.Type, "unknown type expression %T", te)
	}
}

// constantInt reads the value of an array extent. Only an integer
// literal qualifies; no constant folding is done, so any other
// expression, even one built only from literals such as 2 + 2, is
// rejected as not a constant.
func constantInt(e ast.Expr) (int64, bool) {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok || lit.Sym.Kind() != token.Integer {
		return 0, false
	}
	return lit.Sym.IntValue(), true
}
