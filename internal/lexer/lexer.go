// Package lexer turns source text into a stream of Tokens, interning
// every identifier and literal spelling through a shared symbol.Table.
// Structured around rune-aware readChar/peekChar with line/column
// tracked by hand and a small per-character dispatch table.
package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/symbol"
	"github.com/beakerlang/beakerc/internal/token"
)

// Lexer scans one source file into tokens on demand.
type Lexer struct {
	file    string
	input   string
	symbols *symbol.Table

	pos, readPos int
	line, col    int
	ch           rune

	errs []error
}

// New creates a Lexer over input, interning into symbols. file is used
// only to stamp Location.File on emitted tokens and diagnostics.
func New(file, input string, symbols *symbol.Table) *Lexer {
	l := &Lexer{file: file, input: input, symbols: symbols, line: 1}
	l.readChar()
	return l
}

// Errors returns every lexical error accumulated so far.
func (l *Lexer) Errors() []error { return l.errs }

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = l.readPos
		l.col++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size
	l.col++
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) loc() diag.Location {
	return diag.Location{File: l.file, Line: l.line, Column: l.col}
}

func (l *Lexer) errorf(loc diag.Location, format string, args ...any) {
	l.errs = append(l.errs, diag.New(diag.Lexical, loc, format, args...))
}

func isLetter(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }

func (l *Lexer) skipSpaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '\n':
			l.line++
			l.col = 0
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// Next returns the next token in the stream, ending in an endless
// sequence of token.EOF once input is exhausted.
func (l *Lexer) Next() Token {
	l.skipSpaceAndComments()
	loc := l.loc()

	if l.ch == 0 {
		return Token{Kind: token.EOF, Loc: loc}
	}

	switch {
	case isLetter(l.ch):
		return l.scanWord(loc)
	case isDigit(l.ch):
		return l.scanNumber(loc)
	case l.ch == '\'':
		return l.scanCharacter(loc)
	case l.ch == '"':
		return l.scanString(loc)
	default:
		return l.scanPunctuator(loc)
	}
}

func (l *Lexer) scanWord(loc diag.Location) Token {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	spelling := l.input[start:l.pos]
	if spelling == "true" || spelling == "false" {
		return Token{Kind: token.Boolean, Sym: l.symbols.InternLiteral(spelling, token.Boolean, spelling == "true"), Loc: loc}
	}
	if kind, ok := token.Keywords[spelling]; ok {
		return Token{Kind: kind, Sym: l.symbols.Intern(spelling, kind), Loc: loc}
	}
	return Token{Kind: token.Ident, Sym: l.symbols.Intern(spelling, token.Ident), Loc: loc}
}

// scanNumber reads digit+ optionally followed by one decimal point and
// more digits, grounded on beaker/lexer.cpp's Lexer::number, with its
// integer/float classification corrected: a literal containing a
// decimal point is a float, one without is an integer (the original
// has this test inverted).
func (l *Lexer) scanNumber(loc diag.Location) Token {
	start := l.pos
	isFloat := false
	for isDigit(l.ch) || (l.ch == '.' && !isFloat && isDigit(l.peekChar())) {
		if l.ch == '.' {
			isFloat = true
		}
		l.readChar()
	}
	spelling := l.input[start:l.pos]
	if isFloat {
		v, err := strconv.ParseFloat(spelling, 64)
		if err != nil {
			l.errorf(loc, "invalid floating-point literal %q", spelling)
		}
		return Token{Kind: token.Float, Sym: l.symbols.InternLiteral(spelling, token.Float, v), Loc: loc}
	}
	v, err := strconv.ParseInt(spelling, 10, 64)
	if err != nil {
		l.errorf(loc, "invalid integer literal %q", spelling)
	}
	return Token{Kind: token.Integer, Sym: l.symbols.InternLiteral(spelling, token.Integer, v), Loc: loc}
}

var escapes = map[rune]rune{
	'\'': '\'', '"': '"', '\\': '\\',
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n', 't': '\t', 'r': '\r', 'v': '\v',
}

func (l *Lexer) readEscaped() (rune, bool) {
	c := l.ch
	if c != '\\' {
		l.readChar()
		return c, true
	}
	l.readChar()
	e, ok := escapes[l.ch]
	l.readChar()
	return e, ok
}

func (l *Lexer) scanCharacter(loc diag.Location) Token {
	start := l.pos
	l.readChar() // opening '
	r, ok := l.readEscaped()
	if !ok {
		l.errorf(loc, "invalid escape sequence in character literal")
	}
	if l.ch != '\'' {
		l.errorf(loc, "unterminated character literal")
		return Token{Kind: token.Illegal, Loc: loc}
	}
	l.readChar() // closing '
	spelling := l.input[start:l.pos]
	return Token{Kind: token.Character, Sym: l.symbols.InternLiteral(spelling, token.Character, r), Loc: loc}
}

func (l *Lexer) scanString(loc diag.Location) Token {
	start := l.pos
	l.readChar() // opening "
	var runes []rune
	for l.ch != '"' && l.ch != 0 {
		r, ok := l.readEscaped()
		if !ok {
			l.errorf(loc, "invalid escape sequence in string literal")
		}
		runes = append(runes, r)
	}
	if l.ch != '"' {
		l.errorf(loc, "unterminated string literal")
	} else {
		l.readChar() // closing "
	}
	spelling := l.input[start:l.pos]
	return Token{Kind: token.String, Sym: l.symbols.InternLiteral(spelling, token.String, string(runes)), Loc: loc}
}

func (l *Lexer) scanPunctuator(loc diag.Location) Token {
	two := func(second rune, k2 token.Kind, t2 string, k1 token.Kind, t1 string) Token {
		if l.peekChar() == second {
			l.readChar()
			l.readChar()
			return Token{Kind: k2, Sym: l.symbols.Intern(t2, k2), Loc: loc}
		}
		l.readChar()
		if k1 == token.Illegal {
			l.errorf(loc, "illegal character %q", t1)
			return Token{Kind: token.Illegal, Sym: l.symbols.Intern(t1, token.Illegal), Loc: loc}
		}
		return Token{Kind: k1, Sym: l.symbols.Intern(t1, k1), Loc: loc}
	}

	switch l.ch {
	case '(':
		return l.single(loc, token.LParen, "(")
	case ')':
		return l.single(loc, token.RParen, ")")
	case '{':
		return l.single(loc, token.LBrace, "{")
	case '}':
		return l.single(loc, token.RBrace, "}")
	case '[':
		return l.single(loc, token.LBracket, "[")
	case ']':
		return l.single(loc, token.RBracket, "]")
	case ',':
		return l.single(loc, token.Comma, ",")
	case ':':
		return l.single(loc, token.Colon, ":")
	case ';':
		return l.single(loc, token.Semi, ";")
	case '.':
		return l.single(loc, token.Dot, ".")
	case '+':
		return l.single(loc, token.Plus, "+")
	case '*':
		return l.single(loc, token.Star, "*")
	case '/':
		return l.single(loc, token.Slash, "/")
	case '%':
		return l.single(loc, token.Percent, "%")
	case '-':
		return two('>', token.Arrow, "->", token.Minus, "-")
	case '=':
		return two('=', token.Eq, "==", token.Assign, "=")
	case '!':
		return two('=', token.Ne, "!=", token.Not, "!")
	case '<':
		return two('=', token.Le, "<=", token.Lt, "<")
	case '>':
		return two('=', token.Ge, ">=", token.Gt, ">")
	case '&':
		return two('&', token.AndAnd, "&&", token.Illegal, "&")
	case '|':
		return two('|', token.OrOr, "||", token.Illegal, "|")
	default:
		bad := l.ch
		l.readChar()
		l.errorf(loc, "illegal character %q", bad)
		return Token{Kind: token.Illegal, Sym: l.symbols.Intern(string(bad), token.Illegal), Loc: loc}
	}
}

func (l *Lexer) single(loc diag.Location, kind token.Kind, text string) Token {
	l.readChar()
	return Token{Kind: kind, Sym: l.symbols.Intern(text, kind), Loc: loc}
}
