// Package symbol implements the lexer's interner: every unique spelling
// maps to one Symbol, tagged with its token class, so that symbol
// identity implies string equality and vice versa.
package symbol

import (
	"fmt"

	"github.com/beakerlang/beakerc/internal/token"
)

// Symbol is an interned spelling with its token class and, for literal
// classes, the parsed value. Grounded on beaker/symbol.hpp's Symbol base
// class plus its Boolean_sym/Integer_sym/Identifier_sym subclasses,
// collapsed into one struct since Go has no need for the subclass
// hierarchy just to carry an optional payload.
type Symbol struct {
	spelling string
	kind     token.Kind
	value    any // bool | int64 | float64 | rune | string | nil
}

// Spelling returns the symbol's textual representation.
func (s *Symbol) Spelling() string { return s.spelling }

// Kind returns the symbol's token classification.
func (s *Symbol) Kind() token.Kind { return s.kind }

// BoolValue returns the attached boolean literal value.
func (s *Symbol) BoolValue() bool { return s.value.(bool) }

// IntValue returns the attached integer literal value.
func (s *Symbol) IntValue() int64 { return s.value.(int64) }

// FloatValue returns the attached floating-point literal value.
func (s *Symbol) FloatValue() float64 { return s.value.(float64) }

// CharValue returns the attached character literal value.
func (s *Symbol) CharValue() rune { return s.value.(rune) }

// StringValue returns the attached string literal value.
func (s *Symbol) StringValue() string { return s.value.(string) }

// Table is the symbol table: a mapping of unique spellings to their
// symbols, initialized once with the language's punctuators and
// keywords.
type Table struct {
	symbols map[string]*Symbol
}

// NewTable creates a table pre-populated with keywords and punctuators.
func NewTable() *Table {
	t := &Table{symbols: make(map[string]*Symbol)}
	for spelling, kind := range token.Keywords {
		t.symbols[spelling] = &Symbol{spelling: spelling, kind: kind}
	}
	for kind, spelling := range punctuatorSpellings {
		t.symbols[spelling] = &Symbol{spelling: spelling, kind: kind}
	}
	return t
}

var punctuatorSpellings = map[token.Kind]string{
	token.LParen: "(", token.RParen: ")", token.LBrace: "{", token.RBrace: "}",
	token.LBracket: "[", token.RBracket: "]", token.Comma: ",", token.Colon: ":",
	token.Semi: ";", token.Dot: ".", token.Arrow: "->", token.Assign: "=",
	token.Plus: "+", token.Minus: "-", token.Star: "*", token.Slash: "/",
	token.Percent: "%", token.Eq: "==", token.Ne: "!=", token.Lt: "<",
	token.Gt: ">", token.Le: "<=", token.Ge: ">=", token.AndAnd: "&&",
	token.OrOr: "||", token.Not: "!",
}

// Intern returns the existing symbol for spelling, creating one tagged
// with kind if absent. Re-insertion with a mismatched kind is an internal
// error: the interner itself never silently renames a spelling's class.
func (t *Table) Intern(spelling string, kind token.Kind) *Symbol {
	if s, ok := t.symbols[spelling]; ok {
		if s.kind != kind {
			panic(fmt.Sprintf("symbol: %q already interned with kind %s, cannot reintern as %s", spelling, s.kind, kind))
		}
		return s
	}
	s := &Symbol{spelling: spelling, kind: kind}
	t.symbols[spelling] = s
	return s
}

// InternLiteral interns a literal token, attaching its parsed value. A
// distinct spelling always yields a distinct symbol, matching beaker's
// "Represents all integer symbols" commentary: each spelling is its own
// literal symbol, not shared across values.
func (t *Table) InternLiteral(spelling string, kind token.Kind, value any) *Symbol {
	if s, ok := t.symbols[spelling]; ok {
		if s.kind != kind {
			panic(fmt.Sprintf("symbol: %q already interned with kind %s, cannot reintern as %s", spelling, s.kind, kind))
		}
		return s
	}
	s := &Symbol{spelling: spelling, kind: kind, value: value}
	t.symbols[spelling] = s
	return s
}

// Lookup returns the existing symbol for spelling, if any.
func (t *Table) Lookup(spelling string) (*Symbol, bool) {
	s, ok := t.symbols[spelling]
	return s, ok
}
