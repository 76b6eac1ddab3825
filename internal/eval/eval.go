package eval

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/token"
	"github.com/beakerlang/beakerc/internal/types"
)

// Evaluator walks an elaborated tree, executing it. Grounded on
// beaker/evaluator.hpp's Evaluator class; Store/Store_stack become
// *Stack, and the class's many single-purpose eval overloads become one
// Eval method per node category dispatched with a type switch.
type Evaluator struct {
	Store *types.Store
	Locs  *diag.Locations
	stack *Stack
}

// New creates an evaluator sharing the type store the tree was
// elaborated against.
func New(store *types.Store, locs *diag.Locations) *Evaluator {
	return &Evaluator{Store: store, Locs: locs, stack: NewStack()}
}

func (ev *Evaluator) loc(n ast.Node) diag.Location {
	if ev.Locs == nil {
		return diag.Location{}
	}
	return ev.Locs.Get(n)
}

func (ev *Evaluator) errorf(n ast.Node, format string, args ...any) error {
	return diag.New(diag.Evaluation, ev.loc(n), format, args...)
}

// Eval evaluates an expression to a Value. Grounded on
// beaker/evaluator.cpp's eval(Expr const*) dispatch.
func (ev *Evaluator) Eval(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return ev.evalLiteral(e)
	case *ast.DeclExpr:
		return ev.evalDecl(e)
	case *ast.BinaryExpr:
		return ev.evalBinary(e)
	case *ast.UnaryExpr:
		return ev.evalUnary(e)
	case *ast.CallExpr:
		return ev.evalCall(e)
	case *ast.FieldExpr:
		return ev.evalField(e)
	case *ast.MethodExpr:
		return ev.evalMethod(e)
	case *ast.IndexExpr:
		return ev.evalIndex(e)
	case *ast.ValueConv:
		return ev.evalValueConv(e)
	case *ast.BlockConv:
		return ev.Eval(e.Source) // a block is simply an array viewed without its extent
	case *ast.BaseConv:
		return ev.Eval(e.Source) // reinterpretation only; storage is identical
	case *ast.PromoteConv:
		return ev.evalPromote(e)
	case *ast.DefaultInit:
		return zeroValue(e.Type()), nil
	case *ast.CopyInit:
		return ev.Eval(e.Value)
	case *ast.ReferenceInit:
		return ev.Eval(e.Value)
	default:
		return nil, ev.errorf(e, "cannot evaluate expression of type %T", e)
	}
}

func (ev *Evaluator) evalLiteral(e *ast.LiteralExpr) (Value, error) {
	switch e.Sym.Kind() {
	case token.Boolean:
		return Bool(e.Sym.BoolValue()), nil
	case token.Integer:
		return Int(e.Sym.IntValue()), nil
	case token.Float:
		return Float32(e.Sym.FloatValue()), nil
	case token.Character:
		return Char(e.Sym.CharValue()), nil
	case token.String:
		return stringValue(e.Sym.StringValue()), nil
	default:
		return nil, ev.errorf(e, "unrecognized literal kind %s", e.Sym.Kind())
	}
}

func stringValue(s string) *Array {
	runes := []rune(s)
	elems := make([]*Cell, len(runes))
	for i, r := range runes {
		elems[i] = &Cell{V: Char(r)}
	}
	return &Array{Elems: elems}
}

func (ev *Evaluator) evalDecl(e *ast.DeclExpr) (Value, error) {
	switch d := e.Decl.(type) {
	case *ast.VariableDecl, *ast.ParameterDecl:
		cell, ok := ev.stack.Lookup(d)
		if !ok {
			return nil, ev.errorf(e, "%q is not bound in this frame", e.Decl.Name().Spelling())
		}
		return &Ref{Cell: cell}, nil
	case *ast.FunctionDecl:
		return &Function{Decl: d}, nil
	default:
		return nil, ev.errorf(e, "cannot evaluate a reference to %T", d)
	}
}

// deref loads through a reference value; a non-reference value passes
// through unchanged (mirrors beaker/evaluator.cpp's Value_conv, applied
// defensively at the few sites that need either shape).
func deref(v Value) Value {
	if r, ok := v.(*Ref); ok {
		return r.Cell.V
	}
	return v
}

func (ev *Evaluator) evalValueConv(e *ast.ValueConv) (Value, error) {
	v, err := ev.Eval(e.Source)
	if err != nil {
		return nil, err
	}
	return deref(v), nil
}
