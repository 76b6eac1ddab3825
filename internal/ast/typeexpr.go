package ast

import (
	"fmt"

	"github.com/beakerlang/beakerc/internal/symbol"
)

// TypeExpr is the parser's unresolved rendering of a type annotation.
// The elaborator resolves each variant to a canonical types.Type via
// ElaborateType; TypeExpr nodes themselves never hold a resolved type,
// only the syntax the parser saw.
type TypeExpr interface {
	Node
	typeExprNode()
}

// NamedTypeExpr names a scalar or record type by identifier: "int",
// "bool", "char", or a record name. Resolved by unqualified lookup,
// exactly like an identifier expression: an Id type is replaced by the
// type of the declaration found by lookup.
type NamedTypeExpr struct {
	Name *symbol.Symbol
}

func (*NamedTypeExpr) typeExprNode() {}
func (t *NamedTypeExpr) String() string {
	return t.Name.Spelling()
}

// ArrayTypeExpr is elem[extent], extent an unevaluated expression; the
// elaborator accepts it only when it is an integer literal.
type ArrayTypeExpr struct {
	Elem   TypeExpr
	Extent Expr
}

func (*ArrayTypeExpr) typeExprNode() {}
func (t *ArrayTypeExpr) String() string {
	return fmt.Sprintf("%s[%s]", t.Elem, t.Extent)
}

// BlockTypeExpr is elem[], the unbounded decayed view of an array.
type BlockTypeExpr struct {
	Elem TypeExpr
}

func (*BlockTypeExpr) typeExprNode() {}
func (t *BlockTypeExpr) String() string { return fmt.Sprintf("%s[]", t.Elem) }

// ReferenceTypeExpr is "ref" elem.
type ReferenceTypeExpr struct {
	Referent TypeExpr
}

func (*ReferenceTypeExpr) typeExprNode() {}
func (t *ReferenceTypeExpr) String() string { return "ref " + t.Referent.String() }
