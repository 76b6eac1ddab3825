package eval

import "github.com/beakerlang/beakerc/internal/ast"

// Control is the state an executed statement leaves behind, grounded on
// beaker/evaluator.hpp's Control enum: a statement's effect is either
// "fall through to the next statement" or one of three ways to jump.
type Control int

const (
	NextControl Control = iota
	ReturnControl
	BreakControl
	ContinueControl
)

// execStmt executes s, returning the resulting control token and, for
// ReturnControl, the returned value. Grounded on beaker/evaluator.cpp's
// eval(Stmt const*) dispatch, in particular Block_stmt's rule of
// propagating the first non-Next control a member statement produces.
func (ev *Evaluator) execStmt(s ast.Stmt) (Control, Value, error) {
	switch s := s.(type) {
	case *ast.EmptyStmt:
		return NextControl, nil, nil

	case *ast.BlockStmt:
		for _, st := range s.Stmts {
			ctl, v, err := ev.execStmt(st)
			if err != nil {
				return NextControl, nil, err
			}
			if ctl != NextControl {
				return ctl, v, nil
			}
		}
		return NextControl, nil, nil

	case *ast.AssignStmt:
		return ev.execAssign(s)

	case *ast.ReturnStmt:
		v, err := ev.Eval(s.Value)
		if err != nil {
			return NextControl, nil, err
		}
		return ReturnControl, copyValue(deref(v)), nil

	case *ast.IfThenStmt:
		cond, err := ev.evalBool(s.Cond)
		if err != nil {
			return NextControl, nil, err
		}
		if cond {
			return ev.execStmt(s.Body)
		}
		return NextControl, nil, nil

	case *ast.IfElseStmt:
		cond, err := ev.evalBool(s.Cond)
		if err != nil {
			return NextControl, nil, err
		}
		if cond {
			return ev.execStmt(s.True)
		}
		return ev.execStmt(s.False)

	case *ast.WhileStmt:
		for {
			cond, err := ev.evalBool(s.Cond)
			if err != nil {
				return NextControl, nil, err
			}
			if !cond {
				return NextControl, nil, nil
			}
			ctl, v, err := ev.execStmt(s.Body)
			if err != nil {
				return NextControl, nil, err
			}
			switch ctl {
			case BreakControl:
				return NextControl, nil, nil
			case ReturnControl:
				return ReturnControl, v, nil
			}
		}

	case *ast.ForStmt:
		if _, _, err := ev.execStmt(s.Init); err != nil {
			return NextControl, nil, err
		}
		for {
			cond, err := ev.evalBool(s.Cond)
			if err != nil {
				return NextControl, nil, err
			}
			if !cond {
				return NextControl, nil, nil
			}
			ctl, v, err := ev.execStmt(s.Body)
			if err != nil {
				return NextControl, nil, err
			}
			if ctl == ReturnControl {
				return ReturnControl, v, nil
			}
			if ctl == BreakControl {
				return NextControl, nil, nil
			}
			if _, _, err := ev.execStmt(s.Step); err != nil {
				return NextControl, nil, err
			}
		}

	case *ast.BreakStmt:
		return BreakControl, nil, nil

	case *ast.ContinueStmt:
		return ContinueControl, nil, nil

	case *ast.ExpressionStmt:
		if _, err := ev.Eval(s.Expr); err != nil {
			return NextControl, nil, err
		}
		return NextControl, nil, nil

	case *ast.DeclarationStmt:
		if err := ev.bindVariable(s.Decl.(*ast.VariableDecl)); err != nil {
			return NextControl, nil, err
		}
		return NextControl, nil, nil

	default:
		return NextControl, nil, ev.errorf(s, "cannot execute statement of type %T", s)
	}
}

func (ev *Evaluator) evalBool(e ast.Expr) (bool, error) {
	v, err := ev.Eval(e)
	if err != nil {
		return false, err
	}
	return bool(deref(v).(Bool)), nil
}

func (ev *Evaluator) execAssign(s *ast.AssignStmt) (Control, Value, error) {
	obj, err := ev.Eval(s.Object)
	if err != nil {
		return NextControl, nil, err
	}
	ref, ok := obj.(*Ref)
	if !ok {
		return NextControl, nil, ev.errorf(s, "assignment target is not a storage location")
	}
	val, err := ev.Eval(s.Value)
	if err != nil {
		return NextControl, nil, err
	}
	ref.Cell.V = copyValue(deref(val))
	return NextControl, nil, nil
}

// bindVariable evaluates a local variable's initializer and binds it
// into the current (innermost call) frame: a reference initializer
// aliases an existing cell, anything else binds a fresh, independently
// owned copy.
func (ev *Evaluator) bindVariable(d *ast.VariableDecl) error {
	if ri, ok := d.Init.(*ast.ReferenceInit); ok {
		v, err := ev.Eval(ri.Value)
		if err != nil {
			return err
		}
		ref, ok := v.(*Ref)
		if !ok {
			return ev.errorf(d, "reference initializer did not produce a storage location")
		}
		ev.stack.Alias(d, ref.Cell)
		return nil
	}
	v, err := ev.Eval(d.Init)
	if err != nil {
		return err
	}
	ev.stack.Bind(d, copyValue(deref(v)))
	return nil
}

// copyValue deep-copies an aggregate so that value assignment and
// by-value initialization never alias storage with their source: value
// types copy on assignment; scalars pass through unchanged since Go
// already copies them by value.
func copyValue(v Value) Value {
	switch v := v.(type) {
	case *Record:
		fields := make([]*Cell, len(v.Fields))
		for i, c := range v.Fields {
			fields[i] = &Cell{V: copyValue(c.V)}
		}
		return &Record{Fields: fields}
	case *Array:
		elems := make([]*Cell, len(v.Elems))
		for i, c := range v.Elems {
			elems[i] = &Cell{V: copyValue(c.V)}
		}
		return &Array{Elems: elems}
	default:
		return v
	}
}
