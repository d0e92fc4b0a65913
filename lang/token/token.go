// Package token defines the lexical tokens of the Grim language and their
// source positions.
package token

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

// Kind identifies the lexical class of a token.
type Kind int

const (
	// EOF marks the end of the token stream.
	EOF Kind = iota // EOF

	// Identifier is a variable or function name.
	Identifier // identifier

	// Int is an integer literal.
	Int // int
	// Float is a floating-point literal.
	Float // float
	// String is a double-quoted string literal.
	String // string
	// Bool is a boolean literal (true or false).
	Bool // bool

	// Keywords.
	Let    // let
	Fn     // fn
	If     // if
	Else   // else
	While  // while
	Return // return
	Print  // print
	Input  // input

	// Operators.
	Plus         // +
	Minus        // -
	Star         // *
	Slash        // /
	Percent      // %
	Bang         // !
	And          // &&
	Or           // ||
	Less         // <
	Greater      // >
	LessEqual    // <=
	GreaterEqual // >=
	EqualEqual   // ==
	BangEqual    // !=
	Equal        // =

	// Punctuation.
	Semicolon  // ;
	Comma      // ,
	LeftParen  // (
	RightParen // )
	LeftBrace  // {
	RightBrace // }
)

// Pos is a location in the source text, 1-based.
type Pos struct {
	Line   int
	Column int
}

// Token is a single lexical token with its source text and position.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Pos
}

// Keywords maps reserved identifiers to their token kinds.
//
//nolint:gochecknoglobals
var Keywords = map[string]Kind{
	"let":    Let,
	"fn":     Fn,
	"if":     If,
	"else":   Else,
	"while":  While,
	"return": Return,
	"print":  Print,
	"input":  Input,
	"true":   Bool,
	"false":  Bool,
}
