package elaborate

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/convert"
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/types"
)

// elaborateExpr type-checks e and returns the expression that should
// replace it in the tree (itself, or a rewritten/wrapped node),
// grounded on beaker/elaborator.cpp's elaborate(Expr*) dispatch (one Fn
// functor per variant there, one type-switch case per variant here).
func (el *Elaborator) elaborateExpr(e ast.Expr) (ast.Expr, error) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return el.elaborateLiteral(e)
	case *ast.IdExpr:
		return el.elaborateID(e)
	case *ast.DeclExpr:
		return e, nil // already resolved, e.g. re-elaborated after a rewrite
	case *ast.BinaryExpr:
		return el.elaborateBinary(e)
	case *ast.UnaryExpr:
		return el.elaborateUnary(e)
	case *ast.CallExpr:
		return el.elaborateCall(e)
	case *ast.MemberExpr:
		return el.elaborateMember(e)
	case *ast.IndexExpr:
		return el.elaborateIndex(e)
	default:
		return nil, el.errorf(e, diag.Type, "cannot elaborate expression of type %T", e)
	}
}

func (el *Elaborator) elaborateLiteral(e *ast.LiteralExpr) (ast.Expr, error) {
	switch e.Sym.Kind().String() {
	case "boolean":
		e.SetType(el.Store.GetBoolean())
	case "integer":
		e.SetType(el.Store.GetInteger(32, true))
	case "float":
		e.SetType(el.Store.GetFloat())
	case "character":
		e.SetType(el.Store.GetCharacter())
	case "string":
		s := e.Sym.StringValue()
		e.SetType(el.Store.GetArray(el.Store.GetCharacter(), int64(len(s))))
	default:
		return nil, el.errorf(e, diag.Type, "unrecognized literal kind %s", e.Sym.Kind())
	}
	return e, nil
}

// elaborateID resolves a bare identifier through unqualified lookup. An
// overload set of more than one function cannot be resolved outside a
// call, matching beaker/elaborator.cpp's Id_expr case (a successful
// lookup, or a Lookup_error).
func (el *Elaborator) elaborateID(e *ast.IdExpr) (ast.Expr, error) {
	decl, err := el.resolveSingle(e, e.Sym.Spelling())
	if err != nil {
		return nil, err
	}
	return el.declRef(decl), nil
}

func (el *Elaborator) resolveSingle(n ast.Node, name string) (ast.Decl, error) {
	ov, ok := el.scopes.Current().Lookup(name)
	if !ok {
		return nil, el.errorf(n, diag.Lookup, "%q was not declared in this scope", name)
	}
	if !ov.IsSingleton() {
		return nil, el.errorf(n, diag.Lookup, "%q is ambiguous; call it directly to select an overload", name)
	}
	return ov.Single(), nil
}

// declRef wraps decl in a DeclExpr, typed as a reference for any
// storage location (variable, parameter, field) and as the declaration's
// own type for anything else (functions are referenced by value, not
// through the store, matching the first-class-function data model).
func (el *Elaborator) declRef(decl ast.Decl) *ast.DeclExpr {
	ref := &ast.DeclExpr{Decl: decl}
	switch decl.(type) {
	case *ast.VariableDecl, *ast.ParameterDecl, *ast.FieldDecl:
		ref.SetType(decl.Type().Ref(el.Store))
	default:
		ref.SetType(decl.Type())
	}
	return ref
}

func (el *Elaborator) elaborateBinary(e *ast.BinaryExpr) (ast.Expr, error) {
	left, err := el.elaborateExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := el.elaborateExpr(e.Right)
	if err != nil {
		return nil, err
	}
	e.Left, e.Right = left, right

	switch e.Op {
	case ast.LogAnd, ast.LogOr:
		e.Left, err = convert.To(el.Store, e.Left, el.Store.GetBoolean())
		if err != nil {
			return nil, el.errorf(e, diag.Type, "left operand of %s: %s", e.Op, err)
		}
		e.Right, err = convert.To(el.Store, e.Right, el.Store.GetBoolean())
		if err != nil {
			return nil, el.errorf(e, diag.Type, "right operand of %s: %s", e.Op, err)
		}
		e.SetType(el.Store.GetBoolean())
		return e, nil

	case ast.Eq, ast.Ne, ast.Lt, ast.Gt, ast.Le, ast.Ge:
		common, lc, rc, err := unifyScalars(el.Store, e.Left, e.Right)
		if err != nil {
			return nil, el.errorf(e, diag.Type, "%s: %s", e.Op, err)
		}
		_ = common
		e.Left, e.Right = lc, rc
		e.SetType(el.Store.GetBoolean())
		return e, nil

	default: // arithmetic: Add, Sub, Mul, Div, Rem
		common, lc, rc, err := unifyScalars(el.Store, e.Left, e.Right)
		if err != nil {
			return nil, el.errorf(e, diag.Type, "%s: %s", e.Op, err)
		}
		e.Left, e.Right = lc, rc
		e.SetType(common)
		return e, nil
	}
}

// unifyScalars loads both operands through value conversion and, if
// their scalar types differ, promotes the narrower to the broader,
// grounded on beaker/elaborator.cpp's check_arithmetic/check_compare
// templates, which require the two converted operands to share a type.
func unifyScalars(store *types.Store, l, r ast.Expr) (types.Type, ast.Expr, ast.Expr, error) {
	lv, err := toValue(store, l)
	if err != nil {
		return nil, nil, nil, err
	}
	rv, err := toValue(store, r)
	if err != nil {
		return nil, nil, nil, err
	}
	if lv.Type() == rv.Type() {
		return lv.Type(), lv, rv, nil
	}
	if conv, err := convert.To(store, lv, rv.Type()); err == nil {
		return rv.Type(), conv, rv, nil
	}
	if conv, err := convert.To(store, rv, lv.Type()); err == nil {
		return lv.Type(), lv, conv, nil
	}
	return nil, nil, nil, errIncompatible(lv.Type(), rv.Type())
}

func toValue(store *types.Store, e ast.Expr) (ast.Expr, error) {
	if _, isRef := e.Type().(*types.ReferenceType); !isRef {
		return e, nil
	}
	return convert.To(store, e, e.Type().(*types.ReferenceType).Referent)
}

func errIncompatible(a, b types.Type) error {
	return &incompatibleTypesError{a, b}
}

type incompatibleTypesError struct{ a, b types.Type }

func (e *incompatibleTypesError) Error() string {
	return "incompatible operand types " + e.a.String() + " and " + e.b.String()
}

func (el *Elaborator) elaborateUnary(e *ast.UnaryExpr) (ast.Expr, error) {
	operand, err := el.elaborateExpr(e.Operand)
	if err != nil {
		return nil, err
	}
	operand, err = toValue(el.Store, operand)
	if err != nil {
		return nil, el.errorf(e, diag.Type, "%s", err)
	}
	e.Operand = operand

	if e.Op == ast.Not {
		e.Operand, err = convert.To(el.Store, e.Operand, el.Store.GetBoolean())
		if err != nil {
			return nil, el.errorf(e, diag.Type, "operand of !: %s", err)
		}
		e.SetType(el.Store.GetBoolean())
		return e, nil
	}

	if !types.IsInteger(e.Operand.Type()) {
		if _, isFloat := e.Operand.Type().(types.FloatType); !isFloat {
			if _, isDouble := e.Operand.Type().(types.DoubleType); !isDouble {
				return nil, el.errorf(e, diag.Type, "operand of %s must be numeric, got %s", e.Op, e.Operand.Type())
			}
		}
	}
	e.SetType(e.Operand.Type())
	return e, nil
}

// elaborateCall resolves overloaded targets before elaborating them as
// a plain expression, since an overload set can only be disambiguated
// by the argument list it is applied to (beaker/elaborator.hpp's
// call/resolve members).
func (el *Elaborator) elaborateCall(e *ast.CallExpr) (ast.Expr, error) {
	args := make([]ast.Expr, len(e.Args))
	for i, a := range e.Args {
		ea, err := el.elaborateExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = ea
	}

	switch target := e.Target.(type) {
	case *ast.IdExpr:
		fn, err := el.resolveCall(target, target.Sym.Spelling(), args)
		if err != nil {
			return nil, err
		}
		return el.finishCall(e, el.declRef(fn), fn.Type().(*types.FunctionType), args)

	case *ast.MemberExpr:
		recv, err := el.elaborateExpr(target.Receiver)
		if err != nil {
			return nil, err
		}
		method, path, err := el.resolveMethod(target, recv.Type(), target.Name.Spelling(), args)
		if err != nil {
			return nil, err
		}
		me := &ast.MethodExpr{Receiver: recv, Name: target.Name, Method: method, Path: path}
		me.SetType(method.Type())
		ft := method.Type().(*types.FunctionType)
		boundFt := &types.FunctionType{Params: ft.Params[1:], Result: ft.Result}
		return el.finishCall(e, me, boundFt, args)

	default:
		ce, err := el.elaborateExpr(e.Target)
		if err != nil {
			return nil, err
		}
		ft, ok := ce.Type().(*types.FunctionType)
		if !ok {
			return nil, el.errorf(e, diag.Type, "cannot call a value of type %s", ce.Type())
		}
		return el.finishCall(e, ce, ft, args)
	}
}

func (el *Elaborator) finishCall(e *ast.CallExpr, target ast.Expr, ft *types.FunctionType, args []ast.Expr) (ast.Expr, error) {
	converted, err := convert.Args(el.Store, args, ft.Params)
	if err != nil {
		return nil, el.errorf(e, diag.Type, "%s", err)
	}
	e.Target = target
	e.Args = converted
	e.SetType(ft.Result)
	return e, nil
}

// resolveCall picks the overload whose parameter list the given
// (already elaborated) arguments convert to, grounded on
// beaker/overload.cpp's shape for a call site: try each candidate in
// turn, succeed on the first whose argument list converts cleanly.
func (el *Elaborator) resolveCall(n ast.Node, name string, args []ast.Expr) (*ast.FunctionDecl, error) {
	ov, ok := el.scopes.Current().Lookup(name)
	if !ok {
		return nil, el.errorf(n, diag.Lookup, "%q was not declared in this scope", name)
	}
	for _, d := range ov.Decls {
		fn, isFunc := d.(*ast.FunctionDecl)
		if !isFunc {
			m, ok := d.(*ast.MethodDecl)
			if !ok {
				return nil, el.errorf(n, diag.Type, "%q does not name a function", name)
			}
			fn = &m.FunctionDecl
		}
		ft := fn.Type().(*types.FunctionType)
		if _, err := convert.Args(el.Store, args, ft.Params); err == nil {
			return fn, nil
		}
	}
	return nil, el.errorf(n, diag.Type, "no matching overload for %q with these argument types", name)
}

// resolveMethod finds a method named name on recvType (or one of its
// bases), returning it along with the base-hop path from recvType's
// record down to the method's declaring record.
func (el *Elaborator) resolveMethod(n ast.Node, recvType types.Type, name string, args []ast.Expr) (*ast.MethodDecl, []int, error) {
	rt, ok := dereferenceRecord(recvType)
	if !ok {
		return nil, nil, el.errorf(n, diag.Type, "%s has no members", recvType)
	}
	var path []int
	for cur := rt; cur != nil; {
		for _, m := range cur.Methods {
			if m.Name().Spelling() != name {
				continue
			}
			ft := m.Type().(*types.FunctionType)
			if _, err := convert.Args(el.Store, args, ft.Params[1:]); err == nil {
				return m, path, nil
			}
		}
		next := cur.BaseDecl
		if next == nil {
			break
		}
		path = append(path, 0)
		cur = next
	}
	return nil, nil, el.errorf(n, diag.Lookup, "%s has no method %q matching these arguments", recvType, name)
}

func dereferenceRecord(t types.Type) (*ast.RecordDecl, bool) {
	if r, ok := t.(*types.ReferenceType); ok {
		t = r.Referent
	}
	rt, ok := t.(*types.RecordType)
	if !ok {
		return nil, false
	}
	rd, ok := rt.Decl.(*ast.RecordDecl)
	return rd, ok
}

func (el *Elaborator) elaborateMember(e *ast.MemberExpr) (ast.Expr, error) {
	recv, err := el.elaborateExpr(e.Receiver)
	if err != nil {
		return nil, err
	}
	rt, ok := dereferenceRecord(recv.Type())
	if !ok {
		return nil, el.errorf(e, diag.Type, "%s has no members", recv.Type())
	}
	field, path, abs, ok := lookupField(rt, e.Name.Spelling())
	if !ok {
		return nil, el.errorf(e, diag.Lookup, "%s has no field %q", rt.RecordName(), e.Name.Spelling())
	}
	fe := &ast.FieldExpr{Receiver: recv, Name: e.Name, Field: field, Path: path, AbsIndex: abs}
	fe.SetType(field.Type().Ref(el.Store))
	return fe, nil
}

// lookupField finds a field by name in rt or one of its bases,
// returning the access path (a zero per base hop, then the field's own
// index) and the field's absolute index into AllFields, grounded on the
// corrected Field_decl::index() walk.
func lookupField(rt *ast.RecordDecl, name string) (*ast.FieldDecl, []int, int, bool) {
	var path []int
	for cur := rt; cur != nil; {
		for _, f := range cur.Fields {
			if f.Name().Spelling() == name {
				return f, append(path, f.Index()), cur.InheritedFieldCount() + f.Index(), true
			}
		}
		next := cur.BaseDecl
		if next == nil {
			return nil, nil, 0, false
		}
		path = append(path, 0)
		cur = next
	}
	return nil, nil, 0, false
}

func (el *Elaborator) elaborateIndex(e *ast.IndexExpr) (ast.Expr, error) {
	arr, err := el.elaborateExpr(e.Array)
	if err != nil {
		return nil, err
	}
	idx, err := el.elaborateExpr(e.Index)
	if err != nil {
		return nil, err
	}
	idx, err = toValue(el.Store, idx)
	if err != nil {
		return nil, err
	}
	idx, err = convert.To(el.Store, idx, el.Store.GetInteger(32, true))
	if err != nil {
		return nil, el.errorf(e, diag.Type, "array index: %s", err)
	}

	elemType, err := elementType(arr.Type())
	if err != nil {
		return nil, el.errorf(e, diag.Type, "%s", err)
	}
	e.Array, e.Index = arr, idx
	e.SetType(elemType.Ref(el.Store))
	return e, nil
}

func elementType(t types.Type) (types.Type, error) {
	if r, ok := t.(*types.ReferenceType); ok {
		t = r.Referent
	}
	switch t := t.(type) {
	case *types.ArrayType:
		return t.Elem, nil
	case *types.BlockType:
		return t.Elem, nil
	default:
		return nil, notIndexableError{t}
	}
}

type notIndexableError struct{ t types.Type }

func (e notIndexableError) Error() string { return "cannot index a value of type " + e.t.String() }
