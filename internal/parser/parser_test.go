package parser_test

import (
	"testing"

	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/lexer"
	"github.com/beakerlang/beakerc/internal/parser"
	"github.com/beakerlang/beakerc/internal/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*ast.ModuleDecl, *parser.Parser) {
	t.Helper()
	symbols := symbol.NewTable()
	locs := diag.NewLocations()
	lx := lexer.New("t.bkr", src, symbols)
	p := parser.New(lx, symbols, locs)
	mod := p.Parse()
	return mod, p
}

func TestParseFunctionWithReturnExpression(t *testing.T) {
	mod, p := parse(t, `def main() -> int { return 1 + 2 * 3; }`)
	require.Empty(t, p.Errors())
	require.Len(t, mod.Decls, 1)
	fn, ok := mod.Decls[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Name().Spelling())
	require.NotNil(t, fn.Body)
}

func TestParseIfElseWithoutThen(t *testing.T) {
	mod, p := parse(t, `def fact(n: int) -> int { if (n == 0) return 1; else return n; }`)
	require.Empty(t, p.Errors())
	fn := mod.Decls[0].(*ast.FunctionDecl)
	block := fn.Body.(*ast.BlockStmt)
	_, ok := block.Stmts[0].(*ast.IfElseStmt)
	assert.True(t, ok)
}

func TestParseIfWithOptionalThen(t *testing.T) {
	mod, p := parse(t, `def f() -> int { if (true) then return 1; return 0; }`)
	require.Empty(t, p.Errors())
	fn := mod.Decls[0].(*ast.FunctionDecl)
	block := fn.Body.(*ast.BlockStmt)
	_, ok := block.Stmts[0].(*ast.IfThenStmt)
	assert.True(t, ok)
}

func TestParseForLoopWithAllThreeClauses(t *testing.T) {
	mod, p := parse(t, `def f() -> int { var s: int = 0; for (var i: int = 0; i < 10; i = i + 1) s = s + i; return s; }`)
	require.Empty(t, p.Errors())
	fn := mod.Decls[0].(*ast.FunctionDecl)
	block := fn.Body.(*ast.BlockStmt)
	forStmt, ok := block.Stmts[1].(*ast.ForStmt)
	require.True(t, ok)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Step)
}

func TestParseRecordWithBaseFieldsAndMethod(t *testing.T) {
	mod, p := parse(t, `
record Base { x: int; }
record Derived : Base {
	y: int;
	def sum() -> int { return self.x + self.y; }
}`)
	require.Empty(t, p.Errors())
	require.Len(t, mod.Decls, 2)
	derived := mod.Decls[1].(*ast.RecordDecl)
	assert.Equal(t, "Base", derived.BaseName.Spelling())
	require.Len(t, derived.Fields, 1)
	require.Len(t, derived.Methods, 1)
}

func TestParseReferenceAndArrayTypes(t *testing.T) {
	mod, p := parse(t, `def f(r: ref int, a: int[4]) -> int { return a[0]; }`)
	require.Empty(t, p.Errors())
	fn := mod.Decls[0].(*ast.FunctionDecl)
	_, isRef := fn.Params[0].TypeExpr.(*ast.ReferenceTypeExpr)
	assert.True(t, isRef)
	arr, isArr := fn.Params[1].TypeExpr.(*ast.ArrayTypeExpr)
	require.True(t, isArr)
	assert.NotNil(t, arr.Extent)
}

func TestParseBlockTypeSuffix(t *testing.T) {
	mod, p := parse(t, `def f(b: int[]) -> int { return b[0]; }`)
	require.Empty(t, p.Errors())
	fn := mod.Decls[0].(*ast.FunctionDecl)
	_, isBlock := fn.Params[0].TypeExpr.(*ast.BlockTypeExpr)
	assert.True(t, isBlock)
}

func TestParseSpecifiersOnTopLevelFunction(t *testing.T) {
	mod, p := parse(t, `foreign def puts(s: int[]) -> int;`)
	require.Empty(t, p.Errors())
	fn := mod.Decls[0].(*ast.FunctionDecl)
	assert.True(t, fn.Specifiers().Has(ast.Foreign))
	assert.Nil(t, fn.Body)
}

func TestParseSyntaxErrorRecoversAtNextStatement(t *testing.T) {
	mod, p := parse(t, `def f() -> int { var x: int = ; return 0; }`)
	assert.NotEmpty(t, p.Errors())
	fn := mod.Decls[0].(*ast.FunctionDecl)
	block := fn.Body.(*ast.BlockStmt)
	require.Len(t, block.Stmts, 2)
	_, ok := block.Stmts[1].(*ast.ReturnStmt)
	assert.True(t, ok)
}

func TestParseCallMemberAndIndexPostfixChain(t *testing.T) {
	mod, p := parse(t, `def f() -> int { return a.b(1, 2)[0]; }`)
	require.Empty(t, p.Errors())
	fn := mod.Decls[0].(*ast.FunctionDecl)
	ret := fn.Body.(*ast.BlockStmt).Stmts[0].(*ast.ReturnStmt)
	idx, ok := ret.Value.(*ast.IndexExpr)
	require.True(t, ok)
	call, ok := idx.Array.(*ast.CallExpr)
	require.True(t, ok)
	member, ok := call.Target.(*ast.MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "b", member.Name.Spelling())
	assert.Len(t, call.Args, 2)
}
