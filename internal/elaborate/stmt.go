package elaborate

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/convert"
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/scope"
	"github.com/beakerlang/beakerc/internal/types"
)

// elaborateStmt type-checks s, grounded on beaker/elaborator.cpp's
// elaborate(Stmt*) dispatch. It returns the statement that should
// replace it in the tree (conversions may rewrite declarations nested
// inside a statement, e.g. a DeclarationStmt's variable).
func (el *Elaborator) elaborateStmt(s ast.Stmt) (ast.Stmt, error) {
	switch s := s.(type) {
	case *ast.EmptyStmt:
		return s, nil

	case *ast.BlockStmt:
		leave := el.scopes.Enter(scope.BlockScope, nil)
		defer leave()
		for i, st := range s.Stmts {
			rewritten, err := el.elaborateStmt(st)
			if err != nil {
				return nil, err
			}
			s.Stmts[i] = rewritten
		}
		return s, nil

	case *ast.AssignStmt:
		obj, err := el.elaborateExpr(s.Object)
		if err != nil {
			return nil, err
		}
		ref, ok := obj.Type().(*types.ReferenceType)
		if !ok {
			return nil, el.errorf(s, diag.Type, "left side of assignment must be a storage location")
		}
		value, err := el.elaborateExpr(s.Value)
		if err != nil {
			return nil, err
		}
		value, err = convert.To(el.Store, value, ref.Referent)
		if err != nil {
			return nil, el.errorf(s, diag.Type, "assignment: %s", err)
		}
		s.Object, s.Value = obj, value
		return s, nil

	case *ast.ReturnStmt:
		fn, ok := el.scopes.Current().FunctionScope()
		if !ok {
			return nil, el.errorf(s, diag.Type, "return outside a function")
		}
		if s.Value == nil {
			return nil, el.errorf(s, diag.Type, "function %q must return a value", fn.Name().Spelling())
		}
		value, err := el.elaborateExpr(s.Value)
		if err != nil {
			return nil, err
		}
		value, err = convert.To(el.Store, value, fn.ReturnType())
		if err != nil {
			return nil, el.errorf(s, diag.Type, "return value: %s", err)
		}
		s.Value = value
		return s, nil

	case *ast.IfThenStmt:
		cond, err := el.elaborateBoolean(s.Cond)
		if err != nil {
			return nil, err
		}
		body, err := el.elaborateStmt(s.Body)
		if err != nil {
			return nil, err
		}
		s.Cond, s.Body = cond, body
		return s, nil

	case *ast.IfElseStmt:
		cond, err := el.elaborateBoolean(s.Cond)
		if err != nil {
			return nil, err
		}
		t, err := el.elaborateStmt(s.True)
		if err != nil {
			return nil, err
		}
		f, err := el.elaborateStmt(s.False)
		if err != nil {
			return nil, err
		}
		s.Cond, s.True, s.False = cond, t, f
		return s, nil

	case *ast.WhileStmt:
		cond, err := el.elaborateBoolean(s.Cond)
		if err != nil {
			return nil, err
		}
		el.loopDepth++
		body, err := el.elaborateStmt(s.Body)
		el.loopDepth--
		if err != nil {
			return nil, err
		}
		s.Cond, s.Body = cond, body
		return s, nil

	case *ast.ForStmt:
		leave := el.scopes.Enter(scope.BlockScope, nil)
		defer leave()
		init, err := el.elaborateStmt(s.Init)
		if err != nil {
			return nil, err
		}
		cond, err := el.elaborateBoolean(s.Cond)
		if err != nil {
			return nil, err
		}
		step, err := el.elaborateStmt(s.Step)
		if err != nil {
			return nil, err
		}
		el.loopDepth++
		body, err := el.elaborateStmt(s.Body)
		el.loopDepth--
		if err != nil {
			return nil, err
		}
		s.Init, s.Cond, s.Step, s.Body = init, cond, step, body
		return s, nil

	case *ast.BreakStmt:
		if el.loopDepth == 0 {
			return nil, el.errorf(s, diag.Type, "break outside a loop")
		}
		return s, nil

	case *ast.ContinueStmt:
		if el.loopDepth == 0 {
			return nil, el.errorf(s, diag.Type, "continue outside a loop")
		}
		return s, nil

	case *ast.ExpressionStmt:
		e, err := el.elaborateExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		s.Expr = e
		return s, nil

	case *ast.DeclarationStmt:
		v, ok := s.Decl.(*ast.VariableDecl)
		if !ok {
			return nil, el.errorf(s, diag.Type, "unsupported local declaration %T", s.Decl)
		}
		if err := el.declareVariable(v); err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, el.errorf(s, diag.Type, "cannot elaborate statement of type %T", s)
	}
}

func (el *Elaborator) elaborateBoolean(e ast.Expr) (ast.Expr, error) {
	v, err := el.elaborateExpr(e)
	if err != nil {
		return nil, err
	}
	v, err = toValue(el.Store, v)
	if err != nil {
		return nil, err
	}
	return convert.To(el.Store, v, el.Store.GetBoolean())
}
