package lang

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/grim/lang/ast"
)

// execInput reads one line from standard input into the named variable.
// The line is trimmed of surrounding whitespace and parsed in order as
// int, float, bool, and finally string; the first successful parse wins.
// The parsed variant must match the variable's current variant, and the
// variable must already be declared.
//
// This read blocks the whole interpreter until a line is available. There
// is no timeout or cancellation; a read failure is fatal to the run.
func (in *Interp) execInput(env *Env, s ast.Input) error {
	current, err := env.Lookup(s.Name)
	if err != nil {
		return err
	}

	line, err := in.stdin.ReadString('\n')
	if err != nil && line == "" {
		return ErrIoFailure.Wrap(err).
			With(slog.String("name", s.Name))
	}

	value := parseInput(strings.TrimSpace(line))

	if value.Tag != current.Tag {
		return ErrTypeMismatch.
			With(
				slog.String("name", s.Name),
				slog.String("declared", current.Tag.String()),
				makeOperandAttr("parsed", value),
			)
	}

	return env.Assign(s.Name, value)
}

// parseInput converts a trimmed input line to a Value by attempting each
// variant in order: int, float, bool, string. String always succeeds, so
// every line parses to exactly one Value.
func parseInput(line string) Value {
	if v, err := strconv.ParseInt(line, 10, 64); err == nil {
		return IntValue(v)
	}

	if v, err := strconv.ParseFloat(line, 64); err == nil {
		return FloatValue(v)
	}

	// Only the literal keywords count as booleans; strconv.ParseBool also
	// accepts forms like "t" and "1" that must stay strings or ints here.
	if line == "true" || line == "false" {
		return BoolValue(line == "true")
	}

	return StrValue(line)
}
