package parser

import (
	"github.com/beakerlang/beakerc/internal/ast"
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/lexer"
	"github.com/beakerlang/beakerc/internal/symbol"
	"github.com/beakerlang/beakerc/internal/token"
)

// Parser builds an *ast.ModuleDecl from a lexer's token stream,
// recording every node's source position in a location map associating
// each node's address with a source location for diagnostics. Grounded
// on beaker/parser.cpp's recursive descent (one method per nonterminal,
// an on_* constructor called once the right-hand side has been
// recognized), extended well past its original bool/int/function-only
// coverage to this grammar's fuller type and declaration surface.
type Parser struct {
	c       *cursor
	symbols *symbol.Table
	locs    *diag.Locations
	errs    []error
}

// New creates a Parser reading from lex, interning any error-recovery
// placeholders into symbols, and recording positions into locs.
func New(lex *lexer.Lexer, symbols *symbol.Table, locs *diag.Locations) *Parser {
	return &Parser{c: newCursor(lex), symbols: symbols, locs: locs}
}

// Errors returns every lexical and syntax error accumulated while
// parsing, lexical errors first.
func (p *Parser) Errors() []error {
	all := append([]error(nil), p.c.lex.Errors()...)
	return append(all, p.errs...)
}

func (p *Parser) errorf(loc diag.Location, format string, args ...any) {
	p.errs = append(p.errs, diag.New(diag.Syntax, loc, format, args...))
}

func (p *Parser) mark(n ast.Node, loc diag.Location) {
	if p.locs != nil {
		p.locs.Set(n, loc)
	}
}

// expect consumes the current token if it has kind k; otherwise it
// records a syntax error and leaves the cursor where it is, so the
// caller's own recovery (or the next expect) makes progress.
func (p *Parser) expect(k token.Kind) (lexer.Token, bool) {
	if tok, ok := p.c.accept(k); ok {
		return tok, true
	}
	p.errorf(p.c.cur.Loc, "expected %s, found %s", k, p.c.cur.Kind)
	return lexer.Token{}, false
}

// recover skips tokens until the next statement terminator, so one
// syntax error doesn't cascade into a wall of follow-on diagnostics.
func (p *Parser) recover() {
	for !p.c.is(token.EOF) && !p.c.is(token.RBrace) {
		if _, ok := p.c.accept(token.Semi); ok {
			return
		}
		p.c.advance()
	}
}

// Parse consumes the whole token stream, producing the module's
// top-level declarations in source order.
func (p *Parser) Parse() *ast.ModuleDecl {
	var decls []ast.Decl
	for !p.c.is(token.EOF) {
		if d := p.parseTopDecl(); d != nil {
			decls = append(decls, d)
		}
	}
	mod := ast.NewModuleDecl(decls)
	p.mark(mod, diag.Location{})
	return mod
}

func (p *Parser) parseSpecifiers() ast.Specifier {
	var spec ast.Specifier
	for {
		switch p.c.cur.Kind {
		case token.KwForeign:
			spec |= ast.Foreign
		case token.KwVirtual:
			spec |= ast.Virtual
		case token.KwAbstract:
			spec |= ast.Abstract
		case token.KwRoot:
			spec |= ast.Root
		default:
			return spec
		}
		p.c.advance()
	}
}

func (p *Parser) parseTopDecl() ast.Decl {
	loc := p.c.cur.Loc
	spec := p.parseSpecifiers()
	switch p.c.cur.Kind {
	case token.KwDef:
		return p.parseFunction(spec, loc)
	case token.KwVar:
		return p.parseVariable(spec, loc)
	case token.KwRecord:
		return p.parseRecord(spec, loc)
	default:
		p.errorf(loc, "expected a declaration, found %s", p.c.cur.Kind)
		p.recover()
		return nil
	}
}

func (p *Parser) parseFunction(spec ast.Specifier, loc diag.Location) *ast.FunctionDecl {
	p.c.advance() // 'def'
	nameTok, _ := p.expect(token.Ident)
	p.expect(token.LParen)
	params := p.parseParams()
	p.expect(token.RParen)
	var ret ast.TypeExpr
	if _, ok := p.c.accept(token.Arrow); ok {
		ret = p.parseType()
	}
	var body ast.Stmt
	if _, ok := p.c.accept(token.Semi); !ok {
		body = p.parseBlock()
	}
	d := ast.NewFunctionDecl(nameTok.Sym, spec, params, ret, body)
	p.mark(d, loc)
	return d
}

func (p *Parser) parseParams() []*ast.ParameterDecl {
	var params []*ast.ParameterDecl
	if p.c.is(token.RParen) {
		return params
	}
	for {
		ploc := p.c.cur.Loc
		nameTok, _ := p.expect(token.Ident)
		p.expect(token.Colon)
		t := p.parseType()
		pd := ast.NewParameterDecl(nameTok.Sym, t)
		p.mark(pd, ploc)
		params = append(params, pd)
		if _, ok := p.c.accept(token.Comma); ok {
			continue
		}
		break
	}
	return params
}

func (p *Parser) parseVariable(spec ast.Specifier, loc diag.Location) *ast.VariableDecl {
	p.c.advance() // 'var'
	nameTok, _ := p.expect(token.Ident)
	var te ast.TypeExpr
	if _, ok := p.c.accept(token.Colon); ok {
		te = p.parseType()
	}
	var init ast.Expr
	if _, ok := p.c.accept(token.Assign); ok {
		init = p.parseExpr()
	}
	p.expect(token.Semi)
	d := ast.NewVariableDecl(nameTok.Sym, spec, te, init)
	p.mark(d, loc)
	return d
}

func (p *Parser) parseRecord(spec ast.Specifier, loc diag.Location) *ast.RecordDecl {
	p.c.advance() // 'record'
	nameTok, _ := p.expect(token.Ident)
	var baseName *symbol.Symbol
	if _, ok := p.c.accept(token.Colon); ok {
		baseTok, _ := p.expect(token.Ident)
		baseName = baseTok.Sym
	}
	p.expect(token.LBrace)
	var fields []*ast.FieldDecl
	var methods []*ast.MethodDecl
	for !p.c.is(token.RBrace) && !p.c.is(token.EOF) {
		mloc := p.c.cur.Loc
		mspec := p.parseSpecifiers()
		if p.c.is(token.KwDef) {
			methods = append(methods, p.parseMethod(mspec, mloc))
			continue
		}
		fields = append(fields, p.parseField(mloc))
	}
	p.expect(token.RBrace)
	d := ast.NewRecordDecl(nameTok.Sym, spec, baseName, fields, methods)
	p.mark(d, loc)
	return d
}

func (p *Parser) parseField(loc diag.Location) *ast.FieldDecl {
	nameTok, _ := p.expect(token.Ident)
	p.expect(token.Colon)
	t := p.parseType()
	p.expect(token.Semi)
	f := ast.NewFieldDecl(nameTok.Sym, t)
	p.mark(f, loc)
	return f
}

func (p *Parser) parseMethod(spec ast.Specifier, loc diag.Location) *ast.MethodDecl {
	p.c.advance() // 'def'
	nameTok, _ := p.expect(token.Ident)
	p.expect(token.LParen)
	params := p.parseParams()
	p.expect(token.RParen)
	var ret ast.TypeExpr
	if _, ok := p.c.accept(token.Arrow); ok {
		ret = p.parseType()
	}
	var body ast.Stmt
	if _, ok := p.c.accept(token.Semi); !ok {
		body = p.parseBlock()
	}
	m := ast.NewMethodDecl(nameTok.Sym, spec, params, ret, body)
	p.mark(m, loc)
	return m
}

// parseType recognizes a (possibly "ref"-prefixed) type expression
// followed by zero or more "[...]"/"[]" postfixes for the
// reference/array/block type variants.
func (p *Parser) parseType() ast.TypeExpr {
	if _, ok := p.c.accept(token.KwRef); ok {
		referent := p.parseType()
		t := &ast.ReferenceTypeExpr{Referent: referent}
		p.mark(t, p.c.cur.Loc)
		return t
	}
	loc := p.c.cur.Loc
	nameTok, _ := p.expect(token.Ident)
	var t ast.TypeExpr = &ast.NamedTypeExpr{Name: nameTok.Sym}
	p.mark(t, loc)
	for p.c.is(token.LBracket) {
		p.c.advance()
		if _, ok := p.c.accept(token.RBracket); ok {
			t = &ast.BlockTypeExpr{Elem: t}
		} else {
			extent := p.parseExpr()
			p.expect(token.RBracket)
			t = &ast.ArrayTypeExpr{Elem: t, Extent: extent}
		}
		p.mark(t, loc)
	}
	return t
}
