package eval

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/types"
)

func (ev *Evaluator) evalBinary(e *ast.BinaryExpr) (Value, error) {
	if e.Op == ast.LogAnd || e.Op == ast.LogOr {
		return ev.evalShortCircuit(e)
	}

	l, err := ev.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := ev.Eval(e.Right)
	if err != nil {
		return nil, err
	}
	l, r = deref(l), deref(r)

	switch e.Op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Rem:
		return ev.evalArith(e, l, r)
	default:
		return ev.evalCompare(e, l, r)
	}
}

// evalShortCircuit evaluates Right only when Left's value does not
// already determine the result, grounded on beaker/evaluator.cpp's
// And_expr/Or_expr.
func (ev *Evaluator) evalShortCircuit(e *ast.BinaryExpr) (Value, error) {
	l, err := ev.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	lb := bool(deref(l).(Bool))
	if e.Op == ast.LogAnd && !lb {
		return Bool(false), nil
	}
	if e.Op == ast.LogOr && lb {
		return Bool(true), nil
	}
	r, err := ev.Eval(e.Right)
	if err != nil {
		return nil, err
	}
	return Bool(bool(deref(r).(Bool))), nil
}

// evalArith applies an arithmetic operator, grounded on
// beaker/evaluator.cpp's Add_expr..Rem_expr cases. Rem uses Go's %
// operator, fixing the original's defect of dividing instead of taking
// the remainder.
func (ev *Evaluator) evalArith(e *ast.BinaryExpr, l, r Value) (Value, error) {
	switch lv := l.(type) {
	case Int:
		rv := r.(Int)
		if (e.Op == ast.Div || e.Op == ast.Rem) && rv == 0 {
			return nil, ev.errorf(e, "division by zero")
		}
		switch e.Op {
		case ast.Add:
			return lv + rv, nil
		case ast.Sub:
			return lv - rv, nil
		case ast.Mul:
			return lv * rv, nil
		case ast.Div:
			return lv / rv, nil
		case ast.Rem:
			return lv % rv, nil
		}
	case Float32:
		rv := r.(Float32)
		switch e.Op {
		case ast.Add:
			return lv + rv, nil
		case ast.Sub:
			return lv - rv, nil
		case ast.Mul:
			return lv * rv, nil
		case ast.Div:
			if rv == 0 {
				return nil, ev.errorf(e, "division by zero")
			}
			return lv / rv, nil
		}
	case Float64:
		rv := r.(Float64)
		switch e.Op {
		case ast.Add:
			return lv + rv, nil
		case ast.Sub:
			return lv - rv, nil
		case ast.Mul:
			return lv * rv, nil
		case ast.Div:
			if rv == 0 {
				return nil, ev.errorf(e, "division by zero")
			}
			return lv / rv, nil
		}
	}
	return nil, ev.errorf(e, "unsupported arithmetic operand type")
}

func (ev *Evaluator) evalCompare(e *ast.BinaryExpr, l, r Value) (Value, error) {
	switch e.Op {
	case ast.Eq:
		return Bool(valuesEqual(l, r)), nil
	case ast.Ne:
		return Bool(!valuesEqual(l, r)), nil
	}
	switch lv := l.(type) {
	case Int:
		return orderResult(e.Op, int64(lv), int64(r.(Int))), nil
	case Char:
		return orderResult(e.Op, int64(lv), int64(r.(Char))), nil
	case Float32:
		return orderResultF(e.Op, float64(lv), float64(r.(Float32))), nil
	case Float64:
		return orderResultF(e.Op, float64(lv), float64(r.(Float64))), nil
	default:
		return nil, ev.errorf(e, "unsupported ordering operand type")
	}
}

func valuesEqual(l, r Value) bool {
	switch lv := l.(type) {
	case Bool:
		return lv == r.(Bool)
	case Int:
		return lv == r.(Int)
	case Char:
		return lv == r.(Char)
	case Float32:
		return lv == r.(Float32)
	case Float64:
		return lv == r.(Float64)
	default:
		return false
	}
}

func orderResult(op ast.BinaryOp, l, r int64) Bool {
	switch op {
	case ast.Lt:
		return Bool(l < r)
	case ast.Gt:
		return Bool(l > r)
	case ast.Le:
		return Bool(l <= r)
	case ast.Ge:
		return Bool(l >= r)
	default:
		return false
	}
}

func orderResultF(op ast.BinaryOp, l, r float64) Bool {
	switch op {
	case ast.Lt:
		return Bool(l < r)
	case ast.Gt:
		return Bool(l > r)
	case ast.Le:
		return Bool(l <= r)
	case ast.Ge:
		return Bool(l >= r)
	default:
		return false
	}
}

func (ev *Evaluator) evalUnary(e *ast.UnaryExpr) (Value, error) {
	v, err := ev.Eval(e.Operand)
	if err != nil {
		return nil, err
	}
	v = deref(v)
	switch e.Op {
	case ast.Not:
		return Bool(!bool(v.(Bool))), nil
	case ast.Neg:
		switch n := v.(type) {
		case Int:
			return -n, nil
		case Float32:
			return -n, nil
		case Float64:
			return -n, nil
		}
	case ast.Pos:
		return v, nil
	}
	return nil, ev.errorf(e, "unsupported unary operand type")
}

// evalPromote widens a scalar value to match e's target type (an
// integer promotion is a no-op under this evaluator's uniform int64
// representation; float32 -> double is a real conversion), grounded on
// beaker/evaluator.cpp's Promote_conv.
func (ev *Evaluator) evalPromote(e *ast.PromoteConv) (Value, error) {
	v, err := ev.Eval(e.Source)
	if err != nil {
		return nil, err
	}
	v = deref(v)
	if f, ok := v.(Float32); ok {
		if _, isDouble := e.Type().(types.DoubleType); isDouble {
			return Float64(f), nil
		}
	}
	return v, nil
}
