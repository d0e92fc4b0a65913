package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/grim/lang"
	"github.com/ardnew/grim/lang/ast"
)

// Ast parses a program and dumps its syntax tree.
type Ast struct {
	Source string `arg:"" default:"-" help:"Program file or '-' for stdin" name:"source"`
}

// Run executes the ast command.
func (a *Ast) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	file, name, err := openSource(a.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	prog, err := lang.ParseReader(ctx, file)
	if err != nil {
		return ErrParseSource.
			With(slog.String("source", name)).
			Wrap(err)
	}

	return ast.Fprint(os.Stdout, prog)
}
