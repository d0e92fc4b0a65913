package ast_test

import (
	"strings"
	"testing"

	"github.com/ardnew/grim/lang/ast"
	"github.com/ardnew/grim/lang/parser"
)

func TestFprint(t *testing.T) {
	t.Parallel()

	prog, err := parser.ParseString(
		`fn double(n) { return n * 2; } if (true) { print double(2.5); } else { input x; }`)
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := ast.Fprint(&sb, prog); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"fn double(n)",
		"body",
		"  return",
		"    binary *",
		"      ident n",
		"      int 2",
		"if",
		"  bool true",
		"then",
		"  print",
		"    call double",
		"      float 2.5",
		"else",
		"  input x",
		"",
	}, "\n")

	if got := sb.String(); got != want {
		t.Errorf("Fprint:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprint_WriteError(t *testing.T) {
	t.Parallel()

	prog, err := parser.ParseString(`print 1;`)
	if err != nil {
		t.Fatal(err)
	}

	if err := ast.Fprint(failWriter{}, prog); err == nil {
		t.Error("no error from failing writer")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, &writeError{}
}

type writeError struct{}

func (*writeError) Error() string { return "write refused" }
