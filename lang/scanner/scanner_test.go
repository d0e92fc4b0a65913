package scanner

import (
	"testing"

	"github.com/ardnew/grim/lang/token"
)

// kinds scans source and returns the token kinds, failing the test on any
// lexical error.
func kinds(t *testing.T, source string) []token.Kind {
	t.Helper()

	tokens, err := New(source).Scan()
	if err != nil {
		t.Fatalf("Scan(%q) failed: %v", source, err)
	}

	result := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		result[i] = tok.Kind
	}

	return result
}

func equalKinds(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestScan_Statements(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []token.Kind
	}{
		{
			"variable declaration",
			`let x = 42;`,
			[]token.Kind{
				token.Let, token.Identifier, token.Equal, token.Int,
				token.Semicolon, token.EOF,
			},
		},
		{
			"float literal",
			`3.5`,
			[]token.Kind{token.Float, token.EOF},
		},
		{
			"fractional digits required",
			`1.25`,
			[]token.Kind{token.Float, token.EOF},
		},
		{
			"string literal",
			`"hello"`,
			[]token.Kind{token.String, token.EOF},
		},
		{
			"bool keywords",
			`true false`,
			[]token.Kind{token.Bool, token.Bool, token.EOF},
		},
		{
			"all keywords",
			`let fn if else while return print input`,
			[]token.Kind{
				token.Let, token.Fn, token.If, token.Else, token.While,
				token.Return, token.Print, token.Input, token.EOF,
			},
		},
		{
			"operators",
			`+ - * / % ! && || < > <= >= == != =`,
			[]token.Kind{
				token.Plus, token.Minus, token.Star, token.Slash,
				token.Percent, token.Bang, token.And, token.Or,
				token.Less, token.Greater, token.LessEqual,
				token.GreaterEqual, token.EqualEqual, token.BangEqual,
				token.Equal, token.EOF,
			},
		},
		{
			"punctuation",
			`; , ( ) { }`,
			[]token.Kind{
				token.Semicolon, token.Comma, token.LeftParen,
				token.RightParen, token.LeftBrace, token.RightBrace,
				token.EOF,
			},
		},
		{
			"comment to end of line",
			"# ignored entirely\nlet",
			[]token.Kind{token.Let, token.EOF},
		},
		{
			"identifier with underscore and digits",
			`loop_2`,
			[]token.Kind{token.Identifier, token.EOF},
		},
		{
			"empty source",
			``,
			[]token.Kind{token.EOF},
		},
		{
			"whitespace only",
			" \t\r\n",
			[]token.Kind{token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(t, tt.source)
			if !equalKinds(got, tt.expected) {
				t.Errorf("kinds = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestScan_Lexemes(t *testing.T) {
	tokens, err := New(`let answer = 42;`).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	expected := []string{"let", "answer", "=", "42", ";", ""}

	for i, tok := range tokens {
		if tok.Lexeme != expected[i] {
			t.Errorf("token %d lexeme = %q, want %q", i, tok.Lexeme, expected[i])
		}
	}
}

func TestScan_Positions(t *testing.T) {
	tokens, err := New("let x = 1;\nprint x;").Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	tests := []struct {
		idx    int
		line   int
		column int
	}{
		{0, 1, 1},  // let
		{1, 1, 5},  // x
		{2, 1, 7},  // =
		{3, 1, 9},  // 1
		{4, 1, 10}, // ;
		{5, 2, 1},  // print
		{6, 2, 7},  // x
	}

	for _, tt := range tests {
		pos := tokens[tt.idx].Pos
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("token %d at %d:%d, want %d:%d",
				tt.idx, pos.Line, pos.Column, tt.line, tt.column)
		}
	}
}

func TestScan_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"single ampersand", `a & b`},
		{"single pipe", `a | b`},
		{"unterminated string", `"abc`},
		{"newline in string", "\"abc\ndef\""},
		{"unexpected character", `let x = @;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.source).Scan()
			if err == nil {
				t.Fatalf("expected lexical error for %q", tt.source)
			}

			if _, ok := err.(*Error); !ok {
				t.Errorf("expected *Error, got %T", err)
			}
		})
	}
}

func TestScan_ErrorPosition(t *testing.T) {
	_, err := New("let x = 1;\nlet y = @;").Scan()
	if err == nil {
		t.Fatal("expected lexical error")
	}

	se, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}

	if se.Pos.Line != 2 || se.Pos.Column != 9 {
		t.Errorf("error at %d:%d, want 2:9", se.Pos.Line, se.Pos.Column)
	}
}
