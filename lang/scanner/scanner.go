// Package scanner converts Grim source text into a token stream.
package scanner

import (
	"fmt"

	"github.com/ardnew/grim/lang/token"
)

// Error describes a lexical error with its source position.
type Error struct {
	Msg string
	Pos token.Pos
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Scanner tokenizes a single source string.
type Scanner struct {
	source string
	tokens []token.Token

	start   int
	current int
	line    int
	column  int
	startAt token.Pos
}

// New creates a Scanner over the given source text.
func New(source string) *Scanner {
	return &Scanner{
		source: source,
		tokens: make([]token.Token, 0, len(source)/4),
		line:   1,
		column: 1,
	}
}

// Scan tokenizes the entire source and returns the token stream terminated
// by an EOF token. The first lexical error aborts the scan.
func (s *Scanner) Scan() ([]token.Token, error) {
	for !s.atEnd() {
		s.start = s.current
		s.startAt = token.Pos{Line: s.line, Column: s.column}

		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}

	s.tokens = append(s.tokens, token.Token{
		Kind: token.EOF,
		Pos:  token.Pos{Line: s.line, Column: s.column},
	})

	return s.tokens, nil
}

//nolint:cyclop,funlen
func (s *Scanner) scanToken() error {
	c := s.advance()

	switch c {
	case '(':
		s.add(token.LeftParen)
	case ')':
		s.add(token.RightParen)
	case '{':
		s.add(token.LeftBrace)
	case '}':
		s.add(token.RightBrace)
	case ';':
		s.add(token.Semicolon)
	case ',':
		s.add(token.Comma)
	case '+':
		s.add(token.Plus)
	case '-':
		s.add(token.Minus)
	case '*':
		s.add(token.Star)
	case '/':
		s.add(token.Slash)
	case '%':
		s.add(token.Percent)

	case '!':
		if s.match('=') {
			s.add(token.BangEqual)
		} else {
			s.add(token.Bang)
		}

	case '=':
		if s.match('=') {
			s.add(token.EqualEqual)
		} else {
			s.add(token.Equal)
		}

	case '<':
		if s.match('=') {
			s.add(token.LessEqual)
		} else {
			s.add(token.Less)
		}

	case '>':
		if s.match('=') {
			s.add(token.GreaterEqual)
		} else {
			s.add(token.Greater)
		}

	case '&':
		if !s.match('&') {
			return s.errorf("expected '&&'")
		}

		s.add(token.And)

	case '|':
		if !s.match('|') {
			return s.errorf("expected '||'")
		}

		s.add(token.Or)

	case '#':
		for s.peek() != '\n' && !s.atEnd() {
			s.advance()
		}

	case ' ', '\t', '\r', '\n':
		// advance already tracked the position

	case '"':
		return s.scanString()

	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			return s.errorf("unexpected character %q", c)
		}
	}

	return nil
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]

	kind, ok := token.Keywords[text]
	if !ok {
		kind = token.Identifier
	}

	s.add(kind)
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	kind := token.Int

	if s.peek() == '.' && isDigit(s.peekNext()) {
		kind = token.Float

		s.advance()

		for isDigit(s.peek()) {
			s.advance()
		}
	}

	s.add(kind)
}

func (s *Scanner) scanString() error {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			return s.errorf("unterminated string")
		}

		s.advance()
	}

	if s.atEnd() {
		return s.errorf("unterminated string")
	}

	// Consume the closing quote.
	s.advance()
	s.add(token.String)

	return nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

func (s *Scanner) add(kind token.Kind) {
	s.tokens = append(s.tokens, token.Token{
		Kind:   kind,
		Lexeme: s.source[s.start:s.current],
		Pos:    s.startAt,
	})
}

func (s *Scanner) errorf(format string, args ...any) error {
	return &Error{
		Msg: fmt.Sprintf(format, args...),
		Pos: s.startAt,
	}
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.current] != expected {
		return false
	}

	s.advance()

	return true
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++

	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}

	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}

	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}

	return s.source[s.current+1]
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.source) }
