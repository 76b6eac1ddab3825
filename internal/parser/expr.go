package parser

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/token"
)

// The expression grammar is the precedence ladder of
// beaker/parser.cpp's primary_expr -> postfix_expr -> unary_expr ->
// multiplicative_expr -> additive_expr -> ordering_expr ->
// equality_expr -> logical_and_expr -> logical_or_expr -> expr, each
// level one method lower than the next and calling straight through
// when its own operator is absent.

func (p *Parser) parseExpr() ast.Expr { return p.parseLogicalOr() }

func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.c.is(token.OrOr) {
		loc := p.c.cur.Loc
		p.c.advance()
		right := p.parseLogicalAnd()
		e := &ast.BinaryExpr{Op: ast.LogOr, Left: left, Right: right}
		p.mark(e, loc)
		left = e
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for p.c.is(token.AndAnd) {
		loc := p.c.cur.Loc
		p.c.advance()
		right := p.parseEquality()
		e := &ast.BinaryExpr{Op: ast.LogAnd, Left: left, Right: right}
		p.mark(e, loc)
		left = e
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for {
		var op ast.BinaryOp
		switch p.c.cur.Kind {
		case token.Eq:
			op = ast.Eq
		case token.Ne:
			op = ast.Ne
		default:
			return left
		}
		loc := p.c.cur.Loc
		p.c.advance()
		right := p.parseRelational()
		e := &ast.BinaryExpr{Op: op, Left: left, Right: right}
		p.mark(e, loc)
		left = e
	}
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for {
		var op ast.BinaryOp
		switch p.c.cur.Kind {
		case token.Lt:
			op = ast.Lt
		case token.Gt:
			op = ast.Gt
		case token.Le:
			op = ast.Le
		case token.Ge:
			op = ast.Ge
		default:
			return left
		}
		loc := p.c.cur.Loc
		p.c.advance()
		right := p.parseAdditive()
		e := &ast.BinaryExpr{Op: op, Left: left, Right: right}
		p.mark(e, loc)
		left = e
	}
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for {
		var op ast.BinaryOp
		switch p.c.cur.Kind {
		case token.Plus:
			op = ast.Add
		case token.Minus:
			op = ast.Sub
		default:
			return left
		}
		loc := p.c.cur.Loc
		p.c.advance()
		right := p.parseMultiplicative()
		e := &ast.BinaryExpr{Op: op, Left: left, Right: right}
		p.mark(e, loc)
		left = e
	}
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for {
		var op ast.BinaryOp
		switch p.c.cur.Kind {
		case token.Star:
			op = ast.Mul
		case token.Slash:
			op = ast.Div
		case token.Percent:
			op = ast.Rem
		default:
			return left
		}
		loc := p.c.cur.Loc
		p.c.advance()
		right := p.parseUnary()
		e := &ast.BinaryExpr{Op: op, Left: left, Right: right}
		p.mark(e, loc)
		left = e
	}
}

func (p *Parser) parseUnary() ast.Expr {
	loc := p.c.cur.Loc
	var op ast.UnaryOp
	switch p.c.cur.Kind {
	case token.Minus:
		op = ast.Neg
	case token.Plus:
		op = ast.Pos
	case token.Not:
		op = ast.Not
	default:
		return p.parsePostfix()
	}
	p.c.advance()
	operand := p.parseUnary()
	e := &ast.UnaryExpr{Op: op, Operand: operand}
	p.mark(e, loc)
	return e
}

func (p *Parser) parsePostfix() ast.Expr {
	e := p.parsePrimary()
	for {
		loc := p.c.cur.Loc
		switch {
		case p.c.is(token.LParen):
			p.c.advance()
			var args []ast.Expr
			if !p.c.is(token.RParen) {
				for {
					args = append(args, p.parseExpr())
					if _, ok := p.c.accept(token.Comma); ok {
						continue
					}
					break
				}
			}
			p.expect(token.RParen)
			call := &ast.CallExpr{Target: e, Args: args}
			p.mark(call, loc)
			e = call
		case p.c.is(token.Dot):
			p.c.advance()
			nameTok, ok := p.expect(token.Ident)
			if !ok {
				return e
			}
			m := &ast.MemberExpr{Receiver: e, Name: nameTok.Sym}
			p.mark(m, loc)
			e = m
		case p.c.is(token.LBracket):
			p.c.advance()
			idx := p.parseExpr()
			p.expect(token.RBracket)
			ie := &ast.IndexExpr{Array: e, Index: idx}
			p.mark(ie, loc)
			e = ie
		default:
			return e
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	loc := p.c.cur.Loc
	switch p.c.cur.Kind {
	case token.Integer, token.Float, token.Character, token.String, token.Boolean:
		tok := p.c.advance()
		e := &ast.LiteralExpr{Sym: tok.Sym}
		p.mark(e, loc)
		return e
	case token.Ident:
		tok := p.c.advance()
		e := &ast.IdExpr{Sym: tok.Sym}
		p.mark(e, loc)
		return e
	case token.LParen:
		p.c.advance()
		e := p.parseExpr()
		p.expect(token.RParen)
		return e
	default:
		return p.errorExpr(loc)
	}
}

// errorExpr reports a syntax error at loc and returns a placeholder
// identifier expression so the caller's tree stays well-formed. The
// pipeline stops after parsing when there are syntax errors, so the
// placeholder never reaches the elaborator there.
func (p *Parser) errorExpr(loc diag.Location) ast.Expr {
	p.errorf(loc, "expected an expression, found %s", p.c.cur.Kind)
	if !p.c.is(token.EOF) {
		p.c.advance()
	}
	sym := p.symbols.Intern("<error>", token.Ident)
	e := &ast.IdExpr{Sym: sym}
	p.mark(e, loc)
	return e
}
