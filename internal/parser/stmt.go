package parser

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/token"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch p.c.cur.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semi:
		loc := p.c.cur.Loc
		p.c.advance()
		s := &ast.EmptyStmt{}
		p.mark(s, loc)
		return s
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwBreak:
		loc := p.c.cur.Loc
		p.c.advance()
		p.expect(token.Semi)
		s := &ast.BreakStmt{}
		p.mark(s, loc)
		return s
	case token.KwContinue:
		loc := p.c.cur.Loc
		p.c.advance()
		p.expect(token.Semi)
		s := &ast.ContinueStmt{}
		p.mark(s, loc)
		return s
	case token.KwVar:
		loc := p.c.cur.Loc
		d := p.parseVariable(ast.NoSpec, loc)
		s := &ast.DeclarationStmt{Decl: d}
		p.mark(s, loc)
		return s
	default:
		return p.parseSimpleStmt()
	}
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	loc := p.c.cur.Loc
	p.expect(token.LBrace)
	var stmts []ast.Stmt
	for !p.c.is(token.RBrace) && !p.c.is(token.EOF) {
		stmts = append(stmts, p.parseStmt())
	}
	p.expect(token.RBrace)
	s := &ast.BlockStmt{Stmts: stmts}
	p.mark(s, loc)
	return s
}

func (p *Parser) parseReturn() ast.Stmt {
	loc := p.c.cur.Loc
	p.c.advance() // 'return'
	var val ast.Expr
	if !p.c.is(token.Semi) {
		val = p.parseExpr()
	}
	p.expect(token.Semi)
	s := &ast.ReturnStmt{Value: val}
	p.mark(s, loc)
	return s
}

// parseIf accepts an optional "then" between the condition and the
// body: the if-then/if-else variants are distinguished by the presence
// of an else clause, not by the word "then", so "then" is recognized
// and discarded when present rather than required.
func (p *Parser) parseIf() ast.Stmt {
	loc := p.c.cur.Loc
	p.c.advance() // 'if'
	p.expect(token.LParen)
	cond := p.parseExpr()
	p.expect(token.RParen)
	p.c.accept(token.KwThen)
	body := p.parseStmt()
	if _, ok := p.c.accept(token.KwElse); ok {
		elseBody := p.parseStmt()
		s := &ast.IfElseStmt{Cond: cond, True: body, False: elseBody}
		p.mark(s, loc)
		return s
	}
	s := &ast.IfThenStmt{Cond: cond, Body: body}
	p.mark(s, loc)
	return s
}

func (p *Parser) parseWhile() ast.Stmt {
	loc := p.c.cur.Loc
	p.c.advance() // 'while'
	p.expect(token.LParen)
	cond := p.parseExpr()
	p.expect(token.RParen)
	body := p.parseStmt()
	s := &ast.WhileStmt{Cond: cond, Body: body}
	p.mark(s, loc)
	return s
}

// parseFor recognizes the C-style counted loop: "for (init; cond;
// step) body", any of the three clauses optional. Declared but never
// implemented in the source this evaluator's control flow is grounded
// on; implemented here in full.
func (p *Parser) parseFor() ast.Stmt {
	loc := p.c.cur.Loc
	p.c.advance() // 'for'
	p.expect(token.LParen)

	var init ast.Stmt
	switch {
	case p.c.is(token.Semi):
		iloc := p.c.cur.Loc
		p.c.advance()
		init = &ast.EmptyStmt{}
		p.mark(init, iloc)
	case p.c.is(token.KwVar):
		vloc := p.c.cur.Loc
		d := p.parseVariable(ast.NoSpec, vloc)
		init = &ast.DeclarationStmt{Decl: d}
		p.mark(init, vloc)
	default:
		init = p.parseSimpleStmt()
	}

	var cond ast.Expr
	if !p.c.is(token.Semi) {
		cond = p.parseExpr()
	}
	p.expect(token.Semi)

	var step ast.Stmt
	if p.c.is(token.RParen) {
		sloc := p.c.cur.Loc
		step = &ast.EmptyStmt{}
		p.mark(step, sloc)
	} else {
		step = p.parseBareStmt()
	}
	p.expect(token.RParen)

	body := p.parseStmt()
	s := &ast.ForStmt{Init: init, Cond: cond, Step: step, Body: body}
	p.mark(s, loc)
	return s
}

// parseSimpleStmt parses an assignment or a bare expression statement,
// terminated by ';' — the two statement shapes that may appear wherever
// no leading keyword distinguishes the statement.
func (p *Parser) parseSimpleStmt() ast.Stmt {
	s := p.parseBareStmt()
	p.expect(token.Semi)
	return s
}

// parseBareStmt is parseSimpleStmt without consuming a trailing ';',
// for the for-statement's step clause, which is terminated by ')'
// instead.
func (p *Parser) parseBareStmt() ast.Stmt {
	loc := p.c.cur.Loc
	e := p.parseExpr()
	if _, ok := p.c.accept(token.Assign); ok {
		val := p.parseExpr()
		s := &ast.AssignStmt{Object: e, Value: val}
		p.mark(s, loc)
		return s
	}
	s := &ast.ExpressionStmt{Expr: e}
	p.mark(s, loc)
	return s
}
