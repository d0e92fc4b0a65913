package lang

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

// run parses and executes source with the given stdin content, returning
// everything printed and the first execution error.
func run(t *testing.T, source, stdin string) (string, error) {
	t.Helper()

	prog, err := ParseString(context.Background(), source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	var out bytes.Buffer

	in := New(
		WithStdin(strings.NewReader(stdin)),
		WithStdout(&out),
	)

	err = in.Run(context.Background(), prog)

	return out.String(), err
}

// runErr is run for sources whose execution is expected to fail.
func runErr(t *testing.T, source string) error {
	t.Helper()

	_, err := run(t, source, "")
	if err == nil {
		t.Fatalf("expected execution error for:\n%s", source)
	}

	return err
}

func TestRun_PrintPrograms(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			"arithmetic promotion",
			`print 1 + 2.5;`,
			"3.5\n",
		},
		{
			"exact division stays int",
			`print 6 / 2;`,
			"3\n",
		},
		{
			"inexact division yields float",
			`print 7 / 2;`,
			"3.5\n",
		},
		{
			"modulo",
			`print 7 % 2;`,
			"1\n",
		},
		{
			"precedence",
			`print 2 + 3 * 4;`,
			"14\n",
		},
		{
			"grouping",
			`print (2 + 3) * 4;`,
			"20\n",
		},
		{
			"unary minus",
			`print -(3 - 5);`,
			"2\n",
		},
		{
			"bool display",
			`print 1 < 2 && 2 < 3;`,
			"true\n",
		},
		{
			"string display unquoted",
			`print "hello";`,
			"hello\n",
		},
		{
			"variable",
			"let x = 6;\nlet y = 7;\nprint x * y;",
			"42\n",
		},
		{
			"reassignment",
			"let x = 1;\nx = x + 1;\nprint x;",
			"2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.source, "")
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}

			if out != tt.expected {
				t.Errorf("output = %q, want %q", out, tt.expected)
			}
		})
	}
}

func TestRun_IfElse(t *testing.T) {
	source := `
let a = 10;
let b = 0;
if (a > 5) {
	b = 1;
} else {
	b = 2;
}
print b;
`

	out, err := run(t, source, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if out != "1\n" {
		t.Errorf("output = %q, want %q", out, "1\n")
	}
}

func TestRun_BranchLocalsAreDiscarded(t *testing.T) {
	// The branch declares its own t; the outer scope never sees it.
	source := `
if (true) {
	let t = 1;
}
print t;
`

	err := runErr(t, source)
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Errorf("expected ErrUndefinedVariable, got %v", err)
	}
}

func TestRun_WhileLoop(t *testing.T) {
	source := `
let i = 0;
let sum = 0;
while (i < 5) {
	sum = sum + i;
	i = i + 1;
}
print sum;
`

	out, err := run(t, source, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if out != "10\n" {
		t.Errorf("output = %q, want %q", out, "10\n")
	}
}

func TestRun_WhileBodyEnvIsReused(t *testing.T) {
	// The body environment is created once for the whole loop, so a let
	// executed on the second iteration collides with the first.
	source := `
let i = 0;
while (i < 2) {
	let tmp = i;
	i = i + 1;
}
`

	err := runErr(t, source)
	if !errors.Is(err, ErrNameAlreadyBound) {
		t.Errorf("expected ErrNameAlreadyBound, got %v", err)
	}
}

func TestRun_Factorial(t *testing.T) {
	source := `
fn fact(n) {
	if (n < 2) {
		return 1;
	}
	return n * fact(n - 1);
}
print fact(5);
`

	out, err := run(t, source, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if out != "120\n" {
		t.Errorf("output = %q, want %q", out, "120\n")
	}
}

func TestRun_MissingReturnYieldsZero(t *testing.T) {
	source := `
fn noop(a) {
	a = a + 1;
}
print noop(5);
`

	out, err := run(t, source, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if out != "0\n" {
		t.Errorf("output = %q, want %q", out, "0\n")
	}
}

func TestRun_ReturnStopsEnclosingBlocks(t *testing.T) {
	// The return fires inside nested blocks; statements after it in every
	// enclosing list are skipped, but execution resumes in the caller.
	source := `
fn pick(n) {
	if (n > 0) {
		return 1;
		print "unreachable";
	}
	return 2;
}
print pick(3);
print "after";
`

	out, err := run(t, source, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if out != "1\nafter\n" {
		t.Errorf("output = %q, want %q", out, "1\nafter\n")
	}
}

func TestRun_FunctionCannotSeeCallerLocals(t *testing.T) {
	source := `
let hidden = 42;
fn peek() {
	return hidden;
}
print peek();
`

	err := runErr(t, source)
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Errorf("expected ErrUndefinedVariable, got %v", err)
	}
}

func TestRun_ArgumentsEvaluateInCallerEnv(t *testing.T) {
	source := `
let x = 20;
fn double(n) {
	return n * 2;
}
print double(x + 1);
`

	out, err := run(t, source, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if out != "42\n" {
		t.Errorf("output = %q, want %q", out, "42\n")
	}
}

func TestRun_ArityMismatch(t *testing.T) {
	source := `
fn add(a, b) {
	return a + b;
}
print add(1);
`

	err := runErr(t, source)
	if !errors.Is(err, ErrArityMismatch) {
		t.Errorf("expected ErrArityMismatch, got %v", err)
	}
}

func TestRun_NoShortCircuit(t *testing.T) {
	// Both sides of && are always evaluated, so the undefined name on the
	// right fails even though the left side is false.
	source := `print false && nope;`

	err := runErr(t, source)
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Errorf("expected ErrUndefinedVariable, got %v", err)
	}
}

func TestRun_NonBooleanCondition(t *testing.T) {
	for _, source := range []string{
		`if (1) { print 1; }`,
		`while ("yes") { print 1; }`,
	} {
		err := runErr(t, source)
		if !errors.Is(err, ErrNonBooleanCondition) {
			t.Errorf("%s: expected ErrNonBooleanCondition, got %v", source, err)
		}
	}
}

func TestRun_EqualityAcrossVariantsRejected(t *testing.T) {
	err := runErr(t, `print true == 1;`)
	if !errors.Is(err, ErrIncompatibleOperand) {
		t.Errorf("expected ErrIncompatibleOperand, got %v", err)
	}
}

func TestRun_ShadowingRejected(t *testing.T) {
	source := `
let x = 1;
if (true) {
	let x = 2;
}
`

	err := runErr(t, source)
	if !errors.Is(err, ErrShadowingViolation) {
		t.Errorf("expected ErrShadowingViolation, got %v", err)
	}
}

func TestRun_DivisionByZero(t *testing.T) {
	err := runErr(t, `print 1 / 0;`)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestRun_FirstErrorAborts(t *testing.T) {
	source := `
print "before";
print nope;
print "after";
`

	out, err := run(t, source, "")
	if err == nil {
		t.Fatal("expected error")
	}

	if out != "before\n" {
		t.Errorf("output = %q, want only the statements before the error", out)
	}
}

func TestRun_EnvPersistsAcrossRuns(t *testing.T) {
	var out bytes.Buffer

	in := New(WithStdout(&out))
	ctx := context.Background()

	first, err := ParseString(ctx, `let counter = 1;`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if err := in.Run(ctx, first); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	second, err := ParseString(ctx, `print counter;`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if err := in.Run(ctx, second); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if out.String() != "1\n" {
		t.Errorf("output = %q, want %q", out.String(), "1\n")
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	prog, err := ParseString(context.Background(), `print 1;`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := New(WithStdout(new(bytes.Buffer)))

	if err := in.Run(ctx, prog); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func BenchmarkRun_Factorial(b *testing.B) {
	source := `
fn fact(n) {
	if (n < 2) {
		return 1;
	}
	return n * fact(n - 1);
}
let r = fact(12);
`

	prog, err := ParseString(context.Background(), source)
	if err != nil {
		b.Fatalf("parse failed: %v", err)
	}

	ctx := context.Background()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		in := New(WithStdout(new(bytes.Buffer)))
		if err := in.Run(ctx, prog); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_WhileLoop(b *testing.B) {
	source := `
let i = 0;
let sum = 0;
while (i < 1000) {
	sum = sum + i;
	i = i + 1;
}
`

	prog, err := ParseString(context.Background(), source)
	if err != nil {
		b.Fatalf("parse failed: %v", err)
	}

	ctx := context.Background()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		in := New(WithStdout(new(bytes.Buffer)))
		if err := in.Run(ctx, prog); err != nil {
			b.Fatal(err)
		}
	}
}
