package elaborate

import (
	"strings"

	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/convert"
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/scope"
	"github.com/beakerlang/beakerc/internal/symbol"
	"github.com/beakerlang/beakerc/internal/token"
	"github.com/beakerlang/beakerc/internal/types"
)

// declareFunction elaborates a function's signature (not its body) and
// admits it into the current scope, building the overload set. Grounded
// on beaker/elaborator.cpp's Function_decl case, split so the body is
// deferred to defineFunction, the second phase of elaboration.
func (el *Elaborator) declareFunction(d *ast.FunctionDecl) error {
	paramTypes := make([]types.Type, len(d.Params))
	for i, p := range d.Params {
		if p.TypeExpr == nil && p.Type() != nil {
			// Synthesized parameter (e.g. a method's implicit self),
			// already carrying its resolved type.
			paramTypes[i] = p.Type()
			continue
		}
		t, err := el.ElaborateType(p.TypeExpr)
		if err != nil {
			return err
		}
		p.SetType(t)
		paramTypes[i] = t
	}
	result, err := el.ElaborateType(d.ReturnTypeExpr)
	if err != nil {
		return err
	}
	d.SetType(el.Store.GetFunction(paramTypes, result))

	if err := el.admit(d); err != nil {
		return err
	}
	if strings.EqualFold(d.Name().Spelling(), "main") {
		el.main = d
	}
	return nil
}

// defineFunction elaborates a function's body in its own scope, with
// its parameters bound as local declarations (beaker/elaborator.cpp's
// Function_decl case, second half: "push the function's scope... and
// elaborate the body").
func (el *Elaborator) defineFunction(d *ast.FunctionDecl) error {
	if d.Body == nil {
		return nil // forward declaration only
	}
	leave := el.scopes.Enter(scope.FunctionScope, d)
	defer leave()
	for _, p := range d.Params {
		if err := el.admit(p); err != nil {
			return err
		}
	}
	body, err := el.elaborateStmt(d.Body)
	if err != nil {
		return err
	}
	d.Body = body
	return nil
}

// declareVariable fully elaborates a variable in one step: variables do
// not participate in the two-phase mutual-recursion scheme functions
// do, since an initializer can only ever reference names already in
// scope. Grounded on beaker/elaborator.cpp's Variable_decl case
// ("declares before elaborating the initializer, exact type match
// required"), extended to allow the implicit conversion search this
// package layers over the original's exact-match rule, and to infer the
// variable's type from its initializer when no annotation is given.
func (el *Elaborator) declareVariable(d *ast.VariableDecl) error {
	var declared types.Type
	if d.TypeExpr != nil {
		t, err := el.ElaborateType(d.TypeExpr)
		if err != nil {
			return err
		}
		declared = t
	}

	switch init := d.Init.(type) {
	case nil:
		if declared == nil {
			return el.errorf(d, diag.Type, "variable %q needs either a type or an initializer", d.Name().Spelling())
		}
		if _, isRef := declared.(*types.ReferenceType); isRef {
			return el.errorf(d, diag.Type, "reference variable %q requires an initializer", d.Name().Spelling())
		}
		def := &ast.DefaultInit{}
		def.SetType(declared)
		d.Init = def
		d.SetType(declared)

	case *ast.ReferenceInit:
		value, err := el.elaborateExpr(init.Value)
		if err != nil {
			return err
		}
		ref, ok := value.Type().(*types.ReferenceType)
		if !ok {
			return el.errorf(d, diag.Type, "reference initializer must name a storage location")
		}
		if declared != nil && declared != ref.Referent {
			return el.errorf(d, diag.Type, "reference initializer type %s does not match declared type %s", ref.Referent, declared)
		}
		init.Value = value
		init.SetType(ref)
		d.Init = init
		d.SetType(ref.Referent)

	default:
		value, err := el.elaborateExpr(d.Init)
		if err != nil {
			return err
		}
		value, err = toValue(el.Store, value)
		if err != nil {
			return err
		}
		if declared == nil {
			declared = value.Type()
		} else {
			value, err = convert.To(el.Store, value, declared)
			if err != nil {
				return el.errorf(d, diag.Type, "initializer for %q: %s", d.Name().Spelling(), err)
			}
		}
		ci := &ast.CopyInit{Value: value}
		ci.SetType(declared)
		d.Init = ci
		d.SetType(declared)
	}

	return el.admit(d)
}

// declareRecord resolves a record's base (if any) and elaborates its
// field types, assigning each field its index, then admits the record
// type into scope. Method signatures are elaborated here too (so every
// method is callable from any function body regardless of declaration
// order), with method bodies deferred to defineRecord.
func (el *Elaborator) declareRecord(d *ast.RecordDecl) error {
	if d.BaseName != nil {
		base, err := el.resolveSingle(d, d.BaseName.Spelling())
		if err != nil {
			return err
		}
		baseRec, ok := base.(*ast.RecordDecl)
		if !ok {
			return el.errorf(d, diag.Type, "%q is not a record", d.BaseName.Spelling())
		}
		d.BaseDecl = baseRec
	}

	for i, f := range d.Fields {
		t, err := el.ElaborateType(f.TypeExpr)
		if err != nil {
			return err
		}
		f.SetType(t)
		f.SetIndex(i)
	}

	d.SetType(el.Store.GetRecord(d))
	if err := el.admit(d); err != nil {
		return err
	}

	leave := el.scopes.Enter(scope.RecordScope, d)
	defer leave()
	selfType := el.Store.GetRecord(d).Ref(el.Store)
	for _, m := range d.Methods {
		m.Receiver = d
		self := ast.NewParameterDecl(el.selfSymbol(), nil)
		self.SetType(selfType)
		m.Params = append([]*ast.ParameterDecl{self}, m.Params...)
		if err := el.declareFunction(&m.FunctionDecl); err != nil {
			return err
		}
	}
	return nil
}

func (el *Elaborator) selfSymbol() *symbol.Symbol {
	if s, ok := el.Symbols.Lookup("self"); ok {
		return s
	}
	return el.Symbols.Intern("self", token.Ident)
}

// defineRecord elaborates every method body, with an implicit "self"
// parameter of reference-to-record type bound ahead of the method's own
// declared parameters (beaker/decl.hpp's Method_decl: "implicit this
// context").
func (el *Elaborator) defineRecord(d *ast.RecordDecl) error {
	recvLeave := el.scopes.Enter(scope.RecordScope, d)
	defer recvLeave()
	for _, m := range d.Methods {
		if err := el.defineFunction(&m.FunctionDecl); err != nil {
			return err
		}
	}
	return nil
}
