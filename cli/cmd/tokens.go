package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/grim/lang/scanner"
)

// Tokens scans a program and dumps its token stream.
type Tokens struct {
	Source string `arg:"" default:"-" help:"Program file or '-' for stdin" name:"source"`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	file, name, err := openSource(t.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	source, err := io.ReadAll(file)
	if err != nil {
		return ErrOpenSource.
			With(slog.String("source", name)).
			Wrap(err)
	}

	tokens, err := scanner.New(string(source)).Scan()
	if err != nil {
		return ErrParseSource.
			With(slog.String("source", name)).
			Wrap(err)
	}

	for _, tok := range tokens {
		_, err := fmt.Fprintf(os.Stdout, "%d:%d\t%s\t%q\n",
			tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Lexeme)
		if err != nil {
			return err
		}
	}

	return nil
}
