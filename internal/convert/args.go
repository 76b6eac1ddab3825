package convert

import (
	"fmt"

	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/types"
)

// Args converts each of args to the corresponding entry of params,
// returning the rewritten argument list. It fails on arity mismatch or
// if any single argument has no conversion path, grounded on
// beaker/convert.cpp's convert(Expr_seq const&, Type_seq const&).
func Args(store *types.Store, args []ast.Expr, params []types.Type) ([]ast.Expr, error) {
	if len(args) != len(params) {
		return nil, fmt.Errorf("expected %d argument(s), got %d", len(params), len(args))
	}
	out := make([]ast.Expr, len(args))
	for i, a := range args {
		conv, err := To(store, a, params[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = conv
	}
	return out, nil
}
