// Package eval implements the tree-walking evaluator: full execution
// over a tree already fully elaborated (every Expr carries a non-nil
// Type(), every implicit conversion is already a node in the tree). It
// has no constant-folding (reduce) entry point. Grounded on
// beaker/evaluator.hpp/.cpp.
package eval

import (
	"fmt"

	"github.com/beakerlang/beakerc/internal/ast"
)

// Value is a runtime value, one Go type per payload kind, mirroring
// beaker's Value union. Arithmetic and comparison dispatch on the
// Value's dynamic Go type.
type Value interface {
	fmt.Stringer
	isValue()
}

// Bool is a boolean value.
type Bool bool

func (Bool) isValue()        {}
func (v Bool) String() string { return fmt.Sprintf("%t", bool(v)) }

// Int is an integer value of any declared precision/signedness. Every
// integer operation works on the full signed int64; the static
// IntegerType's precision and signedness are not applied at run time.
type Int int64

func (Int) isValue()         {}
func (v Int) String() string { return fmt.Sprintf("%d", int64(v)) }

// Char is a character value.
type Char rune

func (Char) isValue()         {}
func (v Char) String() string { return string(rune(v)) }

// Float32 is a single-precision floating value.
type Float32 float32

func (Float32) isValue()         {}
func (v Float32) String() string { return fmt.Sprintf("%g", float32(v)) }

// Float64 is a double-precision floating value.
type Float64 float64

func (Float64) isValue()         {}
func (v Float64) String() string { return fmt.Sprintf("%g", float64(v)) }

// Cell is one unit of mutable storage: what a reference-typed
// expression denotes. Grounded on beaker/evaluator.hpp's Store value
// type (an aliasable slot referenced by &stack.lookup(...)->second).
type Cell struct {
	V Value
}

// Ref is a reference value: an alias to a Cell rather than a copy of
// its contents. AssignStmt writes through Cell; CopyInit reads Cell.V
// and copies it; ReferenceInit binds a new name directly to Cell.
type Ref struct {
	Cell *Cell
}

func (*Ref) isValue()        {}
func (r *Ref) String() string { return fmt.Sprintf("ref(%s)", r.Cell.V) }

// Record is a runtime record instance: one Cell per field, indexed
// exactly as the declaring RecordDecl's Fields, concatenated with every
// base record's fields ahead of the derived record's own.
type Record struct {
	Fields []*Cell
}

func (*Record) isValue()        {}
func (r *Record) String() string { return "record{...}" }

// Array is a runtime fixed-extent array instance: one Cell per element.
type Array struct {
	Elems []*Cell
}

func (*Array) isValue() {}
func (a *Array) String() string {
	return fmt.Sprintf("array[%d]", len(a.Elems))
}

// Function is a first-class function value: a reference to its
// declaration, closed over nothing but the module's top-level bindings
// — nested closures are out of scope, only module-level first-class
// functions. Receiver is non-nil for a bound method value.
type Function struct {
	Decl     *ast.FunctionDecl
	Receiver *Ref
}

func (*Function) isValue() {}
func (f *Function) String() string {
	return fmt.Sprintf("function %s", f.Decl.Name().Spelling())
}
