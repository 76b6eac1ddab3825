package ast

import (
	"fmt"

	"github.com/beakerlang/beakerc/internal/symbol"
)

// LiteralExpr is a boolean, integer, character, or string constant,
// carried as the symbol the lexer interned. Grounded on beaker/expr.hpp's
// Literal_expr, adjusted to carry the originating symbol rather than an
// already-constructed runtime Value, since that construction is the
// elaborator's job here, not the parser's.
type LiteralExpr struct {
	typed
	Sym *symbol.Symbol
}

func (*LiteralExpr) exprNode()        {}
func (e *LiteralExpr) String() string { return e.Sym.Spelling() }

// IdExpr is an unresolved identifier reference as written by the
// parser. Grounded on beaker/expr.hpp's Id_expr, which carries both the
// originating symbol and a settable resolved declaration; here the
// resolved form is a distinct node (DeclExpr) that the elaborator
// substitutes in place of the IdExpr, following the same "elaborate
// returns the possibly-rewritten expression" discipline used for
// inserted conversions.
type IdExpr struct {
	typed
	Sym *symbol.Symbol
}

func (*IdExpr) exprNode()        {}
func (e *IdExpr) String() string { return e.Sym.Spelling() }

// DeclExpr is a reference to a declaration already resolved by name
// lookup, produced when the elaborator replaces an IdExpr in place.
type DeclExpr struct {
	typed
	Decl Decl
}

func (*DeclExpr) exprNode()        {}
func (e *DeclExpr) String() string { return e.Decl.Name().Spelling() }

// BinaryExpr is the common shape of every binary operator; Op names
// which one. Grounded on beaker/expr.hpp's per-operator structs
// (Add_expr, Sub_expr, ...), collapsed into one struct tagged by
// operator instead of one Go type per operator, since Go type switches
// make a closed per-operator hierarchy unnecessary ceremony.
type BinaryExpr struct {
	typed
	Op          BinaryOp
	Left, Right Expr
}

// BinaryOp enumerates the binary operators: arithmetic, equality,
// ordering, and logical.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Rem
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
	LogAnd
	LogOr
)

var binaryOpSpelling = map[BinaryOp]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Rem: "%",
	Eq: "==", Ne: "!=", Lt: "<", Gt: ">", Le: "<=", Ge: ">=",
	LogAnd: "&&", LogOr: "||",
}

func (op BinaryOp) String() string { return binaryOpSpelling[op] }

func (*BinaryExpr) exprNode() {}
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

// UnaryExpr is the common shape of every unary operator.
type UnaryExpr struct {
	typed
	Op      UnaryOp
	Operand Expr
}

// UnaryOp enumerates the unary operators.
type UnaryOp int

const (
	Neg UnaryOp = iota
	Pos
	Not
)

var unaryOpSpelling = map[UnaryOp]string{Neg: "-", Pos: "+", Not: "!"}

func (op UnaryOp) String() string { return unaryOpSpelling[op] }

func (*UnaryExpr) exprNode() {}
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Op, e.Operand)
}

// CallExpr applies Target to Args. Grounded on beaker/expr.hpp's
// Call_expr.
type CallExpr struct {
	typed
	Target Expr
	Args   []Expr
}

func (*CallExpr) exprNode()        {}
func (e *CallExpr) String() string { return fmt.Sprintf("%s(...)", e.Target) }

// MemberExpr is the parser's unresolved rendering of Receiver.Name,
// before the elaborator has determined whether Name denotes a field or
// a method. Member lookup rewrites it in place into a FieldExpr or a
// MethodExpr, following the same substitution discipline as IdExpr ->
// DeclExpr.
type MemberExpr struct {
	typed
	Receiver Expr
	Name     *symbol.Symbol
}

func (*MemberExpr) exprNode()        {}
func (e *MemberExpr) String() string { return fmt.Sprintf("%s.%s", e.Receiver, e.Name.Spelling()) }

// FieldExpr accesses a record field through Receiver. Field and Path
// are filled in by the elaborator's member lookup: Path is the sequence
// of base-class hops (each a 0) followed by the field's own index
// within its declaring record, so evaluation never has to repeat the
// inheritance walk — a field access through one level of inheritance
// has path length 2. Grounded on beaker/expr.hpp's Member_expr,
// specialized into a field-access variant and a method-access variant.
type FieldExpr struct {
	typed
	Receiver Expr
	Name     *symbol.Symbol
	Field    *FieldDecl
	Path     []int
	// AbsIndex is Field's position in the flattened, base-first layout
	// of the receiver's static record type's AllFields, precomputed so
	// evaluation never has to re-walk the inheritance chain.
	AbsIndex int
}

func (*FieldExpr) exprNode()        {}
func (e *FieldExpr) String() string { return fmt.Sprintf("%s.%s", e.Receiver, e.Name.Spelling()) }

// MethodExpr names a method bound to Receiver; used as a CallExpr
// target or (eventually) passed as a first-class function value.
type MethodExpr struct {
	typed
	Receiver Expr
	Name     *symbol.Symbol
	Method   *MethodDecl
	Path     []int
}

func (*MethodExpr) exprNode()        {}
func (e *MethodExpr) String() string { return fmt.Sprintf("%s.%s", e.Receiver, e.Name.Spelling()) }

// IndexExpr is Array[Index]. Grounded on beaker/expr.hpp's Index_expr.
type IndexExpr struct {
	typed
	Array Expr
	Index Expr
}

func (*IndexExpr) exprNode()        {}
func (e *IndexExpr) String() string { return fmt.Sprintf("%s[%s]", e.Array, e.Index) }

// ValueConv loads through a reference, producing the referent's value.
// Grounded on beaker/convert.cpp's convert_to_value / Value_conv.
type ValueConv struct {
	typed
	Source Expr
}

func (*ValueConv) exprNode()        {}
func (e *ValueConv) String() string { return fmt.Sprintf("value(%s)", e.Source) }

// BlockConv decays a fixed-extent array reference to a block reference.
// Grounded on beaker/convert.cpp's convert_to_block / Block_conv.
type BlockConv struct {
	typed
	Source Expr
}

func (*BlockConv) exprNode()        {}
func (e *BlockConv) String() string { return fmt.Sprintf("block(%s)", e.Source) }

// BaseConv reinterprets a derived-record reference as a base-record
// reference along Path, the sequence of base hops from the source's
// static record down to the target base. Grounded on beaker/convert.cpp's
// convert_to_base / Base_conv.
type BaseConv struct {
	typed
	Source Expr
	Path   []int
}

func (*BaseConv) exprNode()        {}
func (e *BaseConv) String() string { return fmt.Sprintf("base(%s)", e.Source) }

// PromoteConv is an implicit numeric widening (e.g. i16 -> i32, float ->
// double). Grounded on beaker/convert.cpp's can_promote / Promote_conv.
type PromoteConv struct {
	typed
	Source Expr
}

func (*PromoteConv) exprNode()        {}
func (e *PromoteConv) String() string { return fmt.Sprintf("promote(%s)", e.Source) }

// DefaultInit produces the zero value of its cached type with no source
// expression: the implicit initializer for a variable declared without
// one. Grounded on beaker/evaluator.cpp's Default_init.
type DefaultInit struct {
	typed
}

func (*DefaultInit) exprNode()        {}
func (e *DefaultInit) String() string { return fmt.Sprintf("default-init(%s)", e.Type()) }

// CopyInit initializes by evaluating Value and copying the result.
// Grounded on beaker/evaluator.cpp's Copy_init.
type CopyInit struct {
	typed
	Value Expr
}

func (*CopyInit) exprNode()        {}
func (e *CopyInit) String() string { return fmt.Sprintf("copy-init(%s)", e.Value) }

// ReferenceInit initializes a reference binding by aliasing Value's
// storage rather than copying it; Value must denote an addressable
// object.
type ReferenceInit struct {
	typed
	Value Expr
}

func (*ReferenceInit) exprNode()        {}
func (e *ReferenceInit) String() string { return fmt.Sprintf("reference-init(%s)", e.Value) }
