package scope

import (
	"fmt"

	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/types"
)

func sameSignature(a, b *ast.FunctionDecl) bool {
	at, aok := a.Type().(*types.FunctionType)
	bt, bok := b.Type().(*types.FunctionType)
	if !aok || !bok || len(at.Params) != len(bt.Params) {
		return false
	}
	for i := range at.Params {
		if at.Params[i] != bt.Params[i] {
			return false
		}
	}
	return true
}

func sameReturn(a, b *ast.FunctionDecl) bool {
	at, aok := a.Type().(*types.FunctionType)
	bt, bok := b.Type().(*types.FunctionType)
	return aok && bok && at.Result == bt.Result
}

// redefinitionError reports that d repeats an already-defined
// declaration, grounded on beaker/overload.cpp's "redefinition of"
// diagnosis.
func redefinitionError(d ast.Decl) error {
	return fmt.Errorf("redefinition of %q", d.Name().Spelling())
}

// conflictingKindError reports that d's spelling is already bound to a
// declaration of a different kind (e.g. a variable and a function
// sharing a name), grounded on beaker/overload.cpp's
// "declared as different kind of symbol" diagnosis.
func conflictingKindError(d ast.Decl) error {
	return fmt.Errorf("%q already declared as a different kind of entity", d.Name().Spelling())
}

// returnTypeOnlyError reports two function declarations whose parameter
// lists match but whose return types differ, which is not a valid
// overload (beaker/overload.cpp's vary_only_in_return_type check).
func returnTypeOnlyError(d ast.Decl) error {
	return fmt.Errorf("%q cannot be overloaded by return type alone", d.Name().Spelling())
}
