package lexer

import (
	"github.com/beakerlang/beakerc/internal/diag"
	"github.com/beakerlang/beakerc/internal/symbol"
	"github.com/beakerlang/beakerc/internal/token"
)

// Token is one lexeme: its class, its interned symbol (nil for EOF),
// and the source location it started at. Trimmed to what a
// symbol-interning lexer needs: the spelling and value already live on
// Sym, so Token does not duplicate them.
type Token struct {
	Kind token.Kind
	Sym  *symbol.Symbol
	Loc  diag.Location
}

func (t Token) String() string {
	if t.Sym != nil {
		return t.Sym.Spelling()
	}
	return t.Kind.String()
}
