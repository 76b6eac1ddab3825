package eval

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/types"
)

// zeroValue produces the default value of t, grounded on
// beaker/evaluator.cpp's Default_init handling: scalars zero out,
// arrays and records recurse over their element/field types, and a
// reference has no meaningful default (a reference must always be
// bound to something, so DefaultInit never reaches one in an
// elaborated tree).
func zeroValue(t types.Type) Value {
	switch t := t.(type) {
	case types.BooleanType:
		return Bool(false)
	case types.CharacterType:
		return Char(0)
	case types.IntegerType:
		return Int(0)
	case types.FloatType:
		return Float32(0)
	case types.DoubleType:
		return Float64(0)
	case *types.ArrayType:
		elems := make([]*Cell, t.Extent)
		for i := range elems {
			elems[i] = &Cell{V: zeroValue(t.Elem)}
		}
		return &Array{Elems: elems}
	case *types.RecordType:
		rd := t.Decl.(*ast.RecordDecl)
		fields := rd.AllFields()
		cells := make([]*Cell, len(fields))
		for i, f := range fields {
			cells[i] = &Cell{V: zeroValue(f.Type())}
		}
		return &Record{Fields: cells}
	default:
		return nil
	}
}

// Run pushes a frame, binds every module-scope variable into it, then
// invokes the entry point function, grounded on beaker/evaluator.cpp's
// top-level driver: Module_decl's declarations are evaluated in order
// before Main is called, and Main is called with no arguments and no
// receiver.
func (ev *Evaluator) Run(mod *ast.ModuleDecl, main *ast.FunctionDecl) (Value, error) {
	leave := ev.stack.Enter()
	defer leave()

	for _, d := range mod.Decls {
		v, ok := d.(*ast.VariableDecl)
		if !ok {
			continue
		}
		if err := ev.bindVariable(v); err != nil {
			return nil, err
		}
	}

	if main == nil {
		return nil, ev.errorf(mod, "module declares no entry point named %q", "main")
	}
	return ev.invoke(mod, &Function{Decl: main}, nil)
}
