// Package parser turns a lexer.Lexer's token stream into an *ast.ModuleDecl,
// recording each node's source position in a diag.Locations side table.
// Structured around a Peek/Advance/Is/Expect vocabulary over a token
// stream with lookahead, simplified to a single mutable two-token window
// rather than an immutable, backtracking cursor (Mark/ResetTo over a
// persistent slice): that machinery earns its keep on a much larger, more
// ambiguous grammar with many multi-token lookaheads, but this language's
// grammar is small and LL(1) throughout, so a plain current/peek pair with
// no backtracking covers every production without the persistence layer.
package parser

import (
	"github.com/beakerlang/beakerc/internal/lexer"
	"github.com/beakerlang/beakerc/internal/token"
)

// cursor wraps a lexer, exposing the current and next token.
type cursor struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

func newCursor(lex *lexer.Lexer) *cursor {
	c := &cursor{lex: lex}
	c.cur = lex.Next()
	c.peek = lex.Next()
	return c
}

// advance consumes the current token and returns it, sliding the window
// forward by one.
func (c *cursor) advance() lexer.Token {
	t := c.cur
	c.cur = c.peek
	c.peek = c.lex.Next()
	return t
}

// is reports whether the current token has kind k.
func (c *cursor) is(k token.Kind) bool { return c.cur.Kind == k }

// peekIs reports whether the token after the current one has kind k.
func (c *cursor) peekIs(k token.Kind) bool { return c.peek.Kind == k }

// accept consumes and returns the current token if it has kind k.
func (c *cursor) accept(k token.Kind) (lexer.Token, bool) {
	if c.is(k) {
		return c.advance(), true
	}
	return lexer.Token{}, false
}
