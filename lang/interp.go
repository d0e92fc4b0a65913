package lang

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/ardnew/grim/lang/ast"
)

// Interp executes parsed Grim programs against a persistent top-level
// environment. Execution is strictly synchronous and single-threaded; the
// only blocking operation is the input statement's line read.
type Interp struct {
	stdin  *bufio.Reader
	stdout io.Writer
	global *Env
}

// Option applies a configuration option to an Interp.
type Option func(*Interp)

// WithStdin sets the reader that input statements consume lines from.
func WithStdin(r io.Reader) Option {
	return func(in *Interp) {
		if r == nil {
			r = os.Stdin
		}

		in.stdin = bufio.NewReader(r)
	}
}

// WithStdout sets the writer that print statements write lines to.
func WithStdout(w io.Writer) Option {
	return func(in *Interp) {
		if w == nil {
			w = os.Stdout
		}

		in.stdout = w
	}
}

// New creates an Interp with a fresh top-level environment.
// Without options it reads from os.Stdin and writes to os.Stdout.
func New(opts ...Option) *Interp {
	in := &Interp{
		stdin:  bufio.NewReader(os.Stdin),
		stdout: os.Stdout,
		global: NewEnv(),
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Run executes prog against the interpreter's top-level environment.
// The environment persists across calls, which is what lets the REPL feed
// one statement at a time.
//
// The first error anywhere in evaluation or execution aborts the run and
// is returned unchanged; no partial recovery is attempted.
func (in *Interp) Run(ctx context.Context, prog *ast.Program) error {
	_, err := in.execBlock(ctx, in.global, prog.Statements)

	return err
}

// Global returns the interpreter's top-level environment.
func (in *Interp) Global() *Env { return in.global }
