package mangle_test

import (
	"testing"

	"github.com/beakerlang/beakerc/internal/mangle"
	"github.com/beakerlang/beakerc/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestTypeScalars(t *testing.T) {
	assert.Equal(t, "b", mangle.Type(types.BooleanType{}))
	assert.Equal(t, "c", mangle.Type(types.CharacterType{}))
	assert.Equal(t, "i", mangle.Type(types.IntegerType{Precision: 32, Signed: true}))
	assert.Equal(t, "f", mangle.Type(types.FloatType{}))
	assert.Equal(t, "d", mangle.Type(types.DoubleType{}))
}

func TestTypeFunctionArrayBlockReference(t *testing.T) {
	store := types.NewStore()
	intT := store.GetInteger(32, true)
	boolT := store.GetBoolean()

	fn := store.GetFunction([]types.Type{intT, intT}, boolT)
	assert.Equal(t, "Fiib", mangle.Type(fn))

	arr := store.GetArray(intT, 4)
	assert.Equal(t, "A4_i", mangle.Type(arr))

	block := store.GetBlock(intT)
	assert.Equal(t, "Bi", mangle.Type(block))

	ref := store.GetReference(intT)
	assert.Equal(t, "Ri", mangle.Type(ref))
}

type stubRecordDecl struct{ name string }

func (s *stubRecordDecl) RecordName() string            { return s.name }
func (s *stubRecordDecl) Base() (types.RecordDecl, bool) { return nil, false }

func TestTypeRecord(t *testing.T) {
	store := types.NewStore()
	rt := store.GetRecord(&stubRecordDecl{name: "Point"})
	assert.Equal(t, "TrPoint_", mangle.Type(rt))
}

func TestTypeUnresolvedIDIsDefensiveFallback(t *testing.T) {
	store := types.NewStore()
	assert.Equal(t, "?Widget", mangle.Type(store.GetID("Widget")))
}
