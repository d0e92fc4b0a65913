package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/grim/lang"
	"github.com/ardnew/grim/log"
)

// Run parses and executes a program.
type Run struct {
	Source string `arg:"" default:"-" help:"Program file or '-' for stdin" name:"source"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	file, name, err := openSource(r.Source)
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

	log.DebugContext(ctx, "program parsed",
		slog.String("source", name),
		slog.Int("statements", len(prog.Statements)),
	)

	interp := lang.New()

	if err := interp.Run(ctx, prog); err != nil {
		return ErrRunProgram.
			With(slog.String("source", name)).
			Wrap(err)
	}

	return nil
}
