package convert_test

import (
	"testing"

	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/convert"
	"github.com/beakerlang/beakerc/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idOfType(t types.Type) *ast.IdExpr {
	e := &ast.IdExpr{}
	e.SetType(t)
	return e
}

func TestConvertIdentity(t *testing.T) {
	store := types.NewStore()
	intT := store.GetInteger(32, true)
	e := idOfType(intT)
	out, err := convert.To(store, e, intT)
	require.NoError(t, err)
	assert.Same(t, e, out)
}

func TestConvertValueLoadsThroughReference(t *testing.T) {
	store := types.NewStore()
	intT := store.GetInteger(32, true)
	ref := store.GetReference(intT)
	e := idOfType(ref)
	out, err := convert.To(store, e, intT)
	require.NoError(t, err)
	vc, ok := out.(*ast.ValueConv)
	require.True(t, ok)
	assert.Equal(t, intT, vc.Type())
}

func TestConvertBlockDecayFromArrayReference(t *testing.T) {
	store := types.NewStore()
	intT := store.GetInteger(32, true)
	arr := store.GetArray(intT, 4)
	ref := store.GetReference(arr)
	block := store.GetBlock(intT)

	e := idOfType(ref)
	out, err := convert.To(store, e, block)
	require.NoError(t, err)
	_, ok := out.(*ast.BlockConv)
	assert.True(t, ok)
}

type stubRecord struct {
	name string
	base *stubRecord
}

func (s *stubRecord) RecordName() string { return s.name }
func (s *stubRecord) Base() (types.RecordDecl, bool) {
	if s.base == nil {
		return nil, false
	}
	return s.base, true
}

func TestConvertBaseReinterpretsDerivedReferenceAsBase(t *testing.T) {
	store := types.NewStore()
	base := &stubRecord{name: "Base"}
	derived := &stubRecord{name: "Derived", base: base}

	baseRef := store.GetReference(store.GetRecord(base))
	derivedRef := store.GetReference(store.GetRecord(derived))

	e := idOfType(derivedRef)
	out, err := convert.To(store, e, baseRef)
	require.NoError(t, err)
	bc, ok := out.(*ast.BaseConv)
	require.True(t, ok)
	assert.Equal(t, []int{0}, bc.Path)
}

func TestConvertPromotesNarrowerIntegerToWider(t *testing.T) {
	store := types.NewStore()
	i16 := store.GetInteger(16, true)
	i32 := store.GetInteger(32, true)
	e := idOfType(i16)
	out, err := convert.To(store, e, i32)
	require.NoError(t, err)
	_, ok := out.(*ast.PromoteConv)
	assert.True(t, ok)
}

func TestConvertFloatPromotesToDouble(t *testing.T) {
	store := types.NewStore()
	e := idOfType(store.GetFloat())
	out, err := convert.To(store, e, store.GetDouble())
	require.NoError(t, err)
	_, ok := out.(*ast.PromoteConv)
	assert.True(t, ok)
}

func TestConvertNoPathIsAnError(t *testing.T) {
	store := types.NewStore()
	e := idOfType(store.GetBoolean())
	_, err := convert.To(store, e, store.GetInteger(32, true))
	assert.Error(t, err)
}

func TestArgsArityMismatch(t *testing.T) {
	store := types.NewStore()
	intT := store.GetInteger(32, true)
	_, err := convert.Args(store, []ast.Expr{idOfType(intT)}, []types.Type{intT, intT})
	assert.Error(t, err)
}
