// Package types implements the canonical type store: every type is
// uniqued so that equivalence reduces to pointer identity. Grounded on
// beaker/type.hpp's Type hierarchy and on a map-backed registry style
// (accessors keyed by a canonical signature).
package types

import (
	"fmt"
	"strings"
)

// Type is the common interface for every type in the language. A
// *Store's accessors return the canonical instances, which is what
// guarantees the "two types are equal iff they are the same instance"
// invariant. The scalar types are plain values and compare equal
// however they are built; a composite type built directly with a
// composite literal is not the canonical instance.
type Type interface {
	// Ref returns the reference type over this type. A reference type is
	// its own fixed point under Ref: reference(t).ref() == reference(t).
	Ref(*Store) Type
	// NonRef strips one level of reference; non-reference types return
	// themselves.
	NonRef() Type
	String() string
	isType()
}

// RecordDecl is the minimal view of a record declaration a RecordType
// needs for identity and inheritance queries. ast.RecordDecl implements
// it; types does not import ast so that ast can import types for the
// per-expression cached type without an import cycle.
type RecordDecl interface {
	RecordName() string
	Base() (RecordDecl, bool)
}

// boolean, character, and the unsized scalars are singletons; every
// other family is canonicalized through a map keyed by signature.
type (
	BooleanType   struct{}
	CharacterType struct{}
	FloatType     struct{}
	DoubleType    struct{}
)

func (BooleanType) isType()   {}
func (CharacterType) isType() {}
func (FloatType) isType()     {}
func (DoubleType) isType()    {}

func (BooleanType) String() string   { return "bool" }
func (CharacterType) String() string { return "char" }
func (FloatType) String() string     { return "float" }
func (DoubleType) String() string    { return "double" }

func (t BooleanType) Ref(s *Store) Type   { return s.GetReference(t) }
func (t CharacterType) Ref(s *Store) Type { return s.GetReference(t) }
func (t FloatType) Ref(s *Store) Type     { return s.GetReference(t) }
func (t DoubleType) Ref(s *Store) Type    { return s.GetReference(t) }

func (BooleanType) NonRef() Type   { return BooleanType{} }
func (CharacterType) NonRef() Type { return CharacterType{} }
func (FloatType) NonRef() Type     { return FloatType{} }
func (DoubleType) NonRef() Type    { return DoubleType{} }

// IntegerType covers the sized/signed integer family, including the
// default "int" (precision 32, signed).
type IntegerType struct {
	Precision int // bit width: 16, 32, 64, 128 (32 is the default "int")
	Signed    bool
}

func (IntegerType) isType() {}

func (t IntegerType) String() string {
	sign := "i"
	if !t.Signed {
		sign = "u"
	}
	return fmt.Sprintf("%s%d", sign, t.Precision)
}

func (t IntegerType) Ref(s *Store) Type { return s.GetReference(t) }
func (t IntegerType) NonRef() Type      { return t }

// FunctionType is (param_types) -> return_type.
type FunctionType struct {
	Params []Type
	Result Type
}

func (*FunctionType) isType() {}

func (t *FunctionType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.Result.String())
}

func (t *FunctionType) Ref(s *Store) Type { return s.GetReference(t) }
func (t *FunctionType) NonRef() Type      { return t }

// ArrayType is a fixed-extent array, t[n]. Extent is the resolved
// constant size; the elaborator is responsible for reducing the AST's
// extent expression to this integer before requesting the type.
type ArrayType struct {
	Elem   Type
	Extent int64
}

func (*ArrayType) isType() {}

func (t *ArrayType) String() string { return fmt.Sprintf("%s[%d]", t.Elem, t.Extent) }

func (t *ArrayType) Ref(s *Store) Type { return s.GetReference(t) }
func (t *ArrayType) NonRef() Type      { return t }

// BlockType is the unbounded decayed view of an array, t[].
type BlockType struct {
	Elem Type
}

func (*BlockType) isType() {}

func (t *BlockType) String() string { return fmt.Sprintf("%s[]", t.Elem) }

func (t *BlockType) Ref(s *Store) Type { return s.GetReference(t) }
func (t *BlockType) NonRef() Type      { return t }

// ReferenceType is a reference to an object of type Referent. References
// never nest: a reference to a reference collapses to the inner reference.
type ReferenceType struct {
	Referent Type
}

func (*ReferenceType) isType() {}

func (t *ReferenceType) String() string { return fmt.Sprintf("ref %s", t.Referent) }

// Ref is a fixed point: a reference to a reference is itself.
func (t *ReferenceType) Ref(*Store) Type { return t }
func (t *ReferenceType) NonRef() Type    { return t.Referent }

// RecordType is identified by its declaration, not its structure.
type RecordType struct {
	Decl RecordDecl
}

func (*RecordType) isType() {}

func (t *RecordType) String() string { return t.Decl.RecordName() }

func (t *RecordType) Ref(s *Store) Type { return s.GetReference(t) }
func (t *RecordType) NonRef() Type      { return t }

// IDType is a placeholder for a type named by an identifier, resolved
// during elaboration.
type IDType struct {
	Name string
}

func (*IDType) isType() {}

func (t *IDType) String() string { return t.Name }

func (t *IDType) Ref(s *Store) Type { return s.GetReference(t) }
func (t *IDType) NonRef() Type      { return t }

// -------------------------------------------------------------------- //
// Queries

// IsScalar reports whether t is bool, char, or any integer/float/double.
func IsScalar(t Type) bool {
	switch t.(type) {
	case BooleanType, CharacterType, IntegerType, FloatType, DoubleType:
		return true
	default:
		return false
	}
}

// IsAggregate reports whether t is a record or array type.
func IsAggregate(t Type) bool {
	switch t.(type) {
	case *RecordType, *ArrayType:
		return true
	default:
		return false
	}
}

// IsString reports whether t is an array of character (a string
// literal's type).
func IsString(t Type) bool {
	a, ok := t.(*ArrayType)
	return ok && a.Elem == CharacterType{}
}

// IsInteger reports whether t is any member of the integer family.
func IsInteger(t Type) bool {
	_, ok := t.(IntegerType)
	return ok
}

// IsDerived walks d's base chain looking for base. A type is its own
// base. Declarations are compared by identity (interface value over a
// pointer), not by spelling, so two unrelated records that happen to
// share a name are never mistaken for one another.
func IsDerived(d, base RecordDecl) bool {
	for cur := d; cur != nil; {
		if cur == base {
			return true
		}
		next, ok := cur.Base()
		if !ok {
			return false
		}
		cur = next
	}
	return false
}
