package types

import (
	"strconv"
	"strings"
)

// Store is the canonical type store: every accessor returns the one
// instance for its arguments, for the lifetime of one translation. Pass
// it explicitly to the elaborator and evaluator rather than reaching
// for package-level state, so tests can run in isolation.
type Store struct {
	boolean   BooleanType
	character CharacterType
	float     FloatType
	double    DoubleType

	integers   map[IntegerType]IntegerType
	functions  map[string]*FunctionType
	arrays     map[string]*ArrayType
	blocks     map[string]*BlockType
	references map[string]*ReferenceType
	records    map[RecordDecl]*RecordType
	ids        map[string]*IDType
}

// NewStore creates an empty canonical type store.
func NewStore() *Store {
	return &Store{
		integers:   make(map[IntegerType]IntegerType),
		functions:  make(map[string]*FunctionType),
		arrays:     make(map[string]*ArrayType),
		blocks:     make(map[string]*BlockType),
		references: make(map[string]*ReferenceType),
		records:    make(map[RecordDecl]*RecordType),
		ids:        make(map[string]*IDType),
	}
}

// GetBoolean returns the unique boolean type.
func (s *Store) GetBoolean() Type { return s.boolean }

// GetCharacter returns the unique character type.
func (s *Store) GetCharacter() Type { return s.character }

// GetFloat returns the unique single-precision floating type.
func (s *Store) GetFloat() Type { return s.float }

// GetDouble returns the unique double-precision floating type.
func (s *Store) GetDouble() Type { return s.double }

// GetInteger returns the unique integer type for the given precision and
// signedness. The default "int" is precision 32, signed.
func (s *Store) GetInteger(precision int, signed bool) Type {
	key := IntegerType{Precision: precision, Signed: signed}
	if t, ok := s.integers[key]; ok {
		return t
	}
	s.integers[key] = key
	return key
}

func typeKey(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// GetFunction returns the unique function type for the given parameter
// and return types.
func (s *Store) GetFunction(params []Type, result Type) Type {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = typeKey(p)
	}
	key := "(" + strings.Join(parts, ",") + ")->" + typeKey(result)
	if t, ok := s.functions[key]; ok {
		return t
	}
	ps := make([]Type, len(params))
	copy(ps, params)
	t := &FunctionType{Params: ps, Result: result}
	s.functions[key] = t
	return t
}

// GetArray returns the unique array type of elem with the given constant
// extent.
func (s *Store) GetArray(elem Type, extent int64) Type {
	key := typeKey(elem) + "[" + strconv.FormatInt(extent, 10) + "]"
	if t, ok := s.arrays[key]; ok {
		return t
	}
	t := &ArrayType{Elem: elem, Extent: extent}
	s.arrays[key] = t
	return t
}

// GetBlock returns the unique decayed block type over elem.
func (s *Store) GetBlock(elem Type) Type {
	key := typeKey(elem)
	if t, ok := s.blocks[key]; ok {
		return t
	}
	t := &BlockType{Elem: elem}
	s.blocks[key] = t
	return t
}

// GetReference returns the unique reference type over t. If t is already
// a reference, it is returned unchanged: references never nest.
func (s *Store) GetReference(t Type) Type {
	if r, ok := t.(*ReferenceType); ok {
		return r
	}
	key := typeKey(t)
	if r, ok := s.references[key]; ok {
		return r
	}
	r := &ReferenceType{Referent: t}
	s.references[key] = r
	return r
}

// GetRecord returns the unique record type for decl. Record types are
// identified by their declaration, not by structure, so two distinct
// declarations are always distinct types even if their fields match.
func (s *Store) GetRecord(decl RecordDecl) Type {
	if t, ok := s.records[decl]; ok {
		return t
	}
	t := &RecordType{Decl: decl}
	s.records[decl] = t
	return t
}

// GetID returns the unique placeholder type for the given name,
// resolved later during elaboration.
func (s *Store) GetID(name string) Type {
	if t, ok := s.ids[name]; ok {
		return t
	}
	t := &IDType{Name: name}
	s.ids[name] = t
	return t
}
