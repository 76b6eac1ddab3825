// Package convert implements the implicit conversion search, inserting
// value/block/base/promotion conversion nodes around an already-elaborated
// expression so that it matches a target type. Grounded on
// beaker/convert.cpp's convert(Expr*, Type const*) and its
// can_promote/convert_to_value/convert_to_block/convert_to_base helpers.
package convert

import (
	"fmt"

	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/types"
)

// To searches for a sequence of implicit conversions taking e (already
// elaborated, e.Type() non-nil) to the target type t, returning the
// rewritten expression with conversion nodes inserted as needed. It
// reports an error if no such sequence exists.
//
// The search follows beaker/convert.cpp's six steps in order:
//  1. identity: e's type already equals t.
//  2. value conversion: a reference to t loads to t.
//  3. block conversion: a reference to an array of elem decays to a
//     reference to (or value of) a block of elem.
//  4. base conversion: a reference to a derived record converts to a
//     reference to one of its bases, recording the hop path.
//  5. promotion: a narrower scalar widens to a broader one of the same
//     family.
//  6. failure: no conversion connects e's type to t.
func To(store *types.Store, e ast.Expr, t types.Type) (ast.Expr, error) {
	et := e.Type()
	if et == nil {
		return nil, fmt.Errorf("convert: source expression has no elaborated type")
	}

	if et == t {
		return e, nil
	}

	if r, ok := et.(*types.ReferenceType); ok && r.Referent == t {
		return valueConv(e, t), nil
	}

	if conv, ok := tryBlock(store, e, et, t); ok {
		return conv, nil
	}

	if conv, ok := tryBase(store, e, et, t); ok {
		return conv, nil
	}

	if conv, ok := tryPromote(e, et, t); ok {
		return conv, nil
	}

	return nil, fmt.Errorf("no conversion from %s to %s", et, t)
}

func valueConv(e ast.Expr, t types.Type) *ast.ValueConv {
	v := &ast.ValueConv{Source: e}
	v.SetType(t)
	return v
}

// tryBlock converts a reference to a fixed-extent array into a
// reference to (or value of) its decayed block type, grounded on
// beaker/convert.cpp's convert_to_block.
func tryBlock(store *types.Store, e ast.Expr, et, t types.Type) (ast.Expr, bool) {
	ref, isRef := et.(*types.ReferenceType)
	var arr *types.ArrayType
	if isRef {
		arr, isRef = ref.Referent.(*types.ArrayType)
	} else {
		arr, isRef = et.(*types.ArrayType)
	}
	if !isRef || arr == nil {
		return nil, false
	}
	block := store.GetBlock(arr.Elem)
	if block != t && store.GetReference(block) != t {
		return nil, false
	}
	conv := &ast.BlockConv{Source: e}
	conv.SetType(t)
	return conv, true
}

// tryBase reinterprets a reference to a derived record as a reference
// to one of its bases, recording the hop path from the source's static
// record down to the target base (grounded on beaker/convert.cpp's
// convert_to_base, which walks decl->base()->declaration() accumulating
// a zero per hop).
func tryBase(store *types.Store, e ast.Expr, et, t types.Type) (ast.Expr, bool) {
	srcRef, isRef := et.(*types.ReferenceType)
	dstRef, dstIsRef := t.(*types.ReferenceType)
	if !isRef || !dstIsRef {
		return nil, false
	}
	srcRec, ok := srcRef.Referent.(*types.RecordType)
	if !ok {
		return nil, false
	}
	dstRec, ok := dstRef.Referent.(*types.RecordType)
	if !ok {
		return nil, false
	}
	var path []int
	cur := srcRec.Decl
	for cur != nil {
		if cur == dstRec.Decl {
			conv := &ast.BaseConv{Source: e, Path: path}
			conv.SetType(t)
			return conv, true
		}
		next, ok := cur.Base()
		if !ok {
			return nil, false
		}
		path = append(path, 0)
		cur = next
	}
	return nil, false
}

// tryPromote widens a narrower scalar to a broader one of the same
// family, grounded on beaker/convert.cpp's can_promote: an integer
// promotes to any integer of greater precision, an unsigned integer
// also promotes to the signed integer of the same precision, and float
// promotes to double.
func tryPromote(e ast.Expr, et, t types.Type) (ast.Expr, bool) {
	if canPromote(et, t) {
		conv := &ast.PromoteConv{Source: e}
		conv.SetType(t)
		return conv, true
	}
	return nil, false
}

func canPromote(from, to types.Type) bool {
	if from == to {
		return false
	}
	if _, isChar := to.(types.CharacterType); isChar {
		return false
	}
	if fi, ok := from.(types.IntegerType); ok {
		if ti, ok := to.(types.IntegerType); ok {
			if ti.Precision > fi.Precision {
				return true
			}
			if ti.Precision == fi.Precision && ti.Signed && !fi.Signed {
				return true
			}
			return false
		}
	}
	if _, ok := from.(types.FloatType); ok {
		if _, ok := to.(types.DoubleType); ok {
			return true
		}
	}
	return false
}
