package eval

import "github.com/beakerlang/beakerc/internal/ast"

// evalCall evaluates a call's target and arguments, then invokes the
// resolved function with a fresh frame, grounded on
// beaker/evaluator.cpp's Call_expr eval: evaluate target, evaluate args,
// push a new store, bind parameters, evaluate body, require a returned
// value.
func (ev *Evaluator) evalCall(e *ast.CallExpr) (Value, error) {
	targetValue, err := ev.Eval(e.Target)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := ev.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := targetValue.(*Function)
	if !ok {
		return nil, ev.errorf(e, "call target is not a function value")
	}
	return ev.invoke(e, fn, args)
}

func (ev *Evaluator) invoke(n ast.Node, fn *Function, args []Value) (Value, error) {
	if fn.Decl.Body == nil {
		return nil, ev.errorf(n, "%q has no definition", fn.Decl.Name().Spelling())
	}
	leave := ev.stack.Enter()
	defer leave()

	params := fn.Decl.Params
	if fn.Receiver != nil {
		ev.stack.Alias(params[0], fn.Receiver.Cell)
		params = params[1:]
	}
	for i, p := range params {
		ev.bindParam(p, args[i])
	}

	ctl, ret, err := ev.execStmt(fn.Decl.Body)
	if err != nil {
		return nil, err
	}
	if ctl != ReturnControl {
		return nil, ev.errorf(n, "%q fell off the end without returning a value", fn.Decl.Name().Spelling())
	}
	return ret, nil
}

// bindParam copies a by-value argument into a fresh cell, or aliases a
// by-reference argument's existing cell, depending on the argument's
// runtime shape (a *Ref for a reference-typed parameter, since
// elaboration only inserts identity/value conversions that preserve
// that shape).
func (ev *Evaluator) bindParam(p *ast.ParameterDecl, v Value) {
	if ref, ok := v.(*Ref); ok {
		ev.stack.Alias(p, ref.Cell)
		return
	}
	ev.stack.Bind(p, v)
}

func (ev *Evaluator) evalMethod(e *ast.MethodExpr) (Value, error) {
	recv, err := ev.Eval(e.Receiver)
	if err != nil {
		return nil, err
	}
	ref, ok := recv.(*Ref)
	if !ok {
		return nil, ev.errorf(e, "method receiver is not addressable")
	}
	return &Function{Decl: &e.Method.FunctionDecl, Receiver: ref}, nil
}

// fieldCell walks Receiver down to the Cell holding the named field,
// using the precomputed absolute index into the record's flattened
// field layout.
func (ev *Evaluator) fieldCell(e *ast.FieldExpr) (*Cell, error) {
	recv, err := ev.Eval(e.Receiver)
	if err != nil {
		return nil, err
	}
	ref, ok := recv.(*Ref)
	if !ok {
		return nil, ev.errorf(e, "field receiver is not addressable")
	}
	rec, ok := ref.Cell.V.(*Record)
	if !ok {
		return nil, ev.errorf(e, "receiver is not a record value")
	}
	if e.AbsIndex < 0 || e.AbsIndex >= len(rec.Fields) {
		return nil, ev.errorf(e, "field index %d out of range for record with %d field(s)", e.AbsIndex, len(rec.Fields))
	}
	return rec.Fields[e.AbsIndex], nil
}

func (ev *Evaluator) evalField(e *ast.FieldExpr) (Value, error) {
	cell, err := ev.fieldCell(e)
	if err != nil {
		return nil, err
	}
	return &Ref{Cell: cell}, nil
}

func (ev *Evaluator) evalIndex(e *ast.IndexExpr) (Value, error) {
	arrV, err := ev.Eval(e.Array)
	if err != nil {
		return nil, err
	}
	ref, ok := arrV.(*Ref)
	if !ok {
		return nil, ev.errorf(e, "array operand is not addressable")
	}
	arr, ok := ref.Cell.V.(*Array)
	if !ok {
		return nil, ev.errorf(e, "indexed value is not an array")
	}
	idxV, err := ev.Eval(e.Index)
	if err != nil {
		return nil, err
	}
	idx := int64(deref(idxV).(Int))
	if idx < 0 || int(idx) >= len(arr.Elems) {
		return nil, ev.errorf(e, "array index %d out of range [0, %d)", idx, len(arr.Elems))
	}
	return &Ref{Cell: arr.Elems[idx]}, nil
}
