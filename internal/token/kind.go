// Package token defines the lexical token classes shared by the symbol
// interner, the lexer, and the parser.
package token

// Kind classifies a token, the same tag the interner records against a
// symbol's spelling: identifier, boolean, integer, character, string,
// keyword, punctuator. Named in the style of a conventional
// token_type.go enumeration.
type Kind int

const (
	Illegal Kind = iota
	EOF

	Ident
	Integer
	Float
	Character
	String
	Boolean

	literalEnd

	keywordStart
	KwDef
	KwVar
	KwRecord
	KwReturn
	KwIf
	KwThen
	KwElse
	KwWhile
	KwFor
	KwBreak
	KwContinue
	KwTrue
	KwFalse
	KwForeign
	KwVirtual
	KwAbstract
	KwRoot
	KwRef
	keywordEnd

	punctStart
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Colon
	Semi
	Dot
	Arrow // ->
	Assign
	Plus
	Minus
	Star
	Slash
	Percent
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
	AndAnd
	OrOr
	Not
	punctEnd
)

// IsLiteral reports whether k classifies a literal token.
func (k Kind) IsLiteral() bool { return k > Illegal && k < literalEnd }

// IsKeyword reports whether k classifies a reserved word.
func (k Kind) IsKeyword() bool { return k > keywordStart && k < keywordEnd }

// IsPunctuator reports whether k classifies a punctuator or operator.
func (k Kind) IsPunctuator() bool { return k > punctStart && k < punctEnd }

var names = map[Kind]string{
	Illegal: "illegal", EOF: "eof",
	Ident: "identifier", Integer: "integer", Float: "float", Character: "character",
	String: "string", Boolean: "boolean",
	KwDef: "def", KwVar: "var", KwRecord: "record", KwReturn: "return",
	KwIf: "if", KwThen: "then", KwElse: "else", KwWhile: "while",
	KwFor: "for", KwBreak: "break", KwContinue: "continue",
	KwTrue: "true", KwFalse: "false", KwForeign: "foreign",
	KwVirtual: "virtual", KwAbstract: "abstract", KwRoot: "root", KwRef: "ref",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]", Comma: ",", Colon: ":", Semi: ";",
	Dot: ".", Arrow: "->", Assign: "=", Plus: "+", Minus: "-", Star: "*",
	Slash: "/", Percent: "%", Eq: "==", Ne: "!=", Lt: "<", Gt: ">",
	Le: "<=", Ge: ">=", AndAnd: "&&", OrOr: "||", Not: "!",
}

// Keywords maps a reserved spelling to its Kind; used to classify an
// identifier-shaped lexeme during both lexing and interning.
var Keywords = map[string]Kind{
	"def": KwDef, "var": KwVar, "record": KwRecord, "return": KwReturn,
	"if": KwIf, "then": KwThen, "else": KwElse, "while": KwWhile,
	"for": KwFor, "break": KwBreak, "continue": KwContinue,
	"foreign": KwForeign,
	"virtual": KwVirtual, "abstract": KwAbstract, "root": KwRoot, "ref": KwRef,
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown"
}
