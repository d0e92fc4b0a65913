package lang

import (
	"context"
	"log/slog"

	"github.com/ardnew/grim/lang/ast"
)

// Evaluate reduces an expression to a single Value using env for name
// resolution. It never mutates the AST; the only environment mutation it
// performs is creating and discarding the call frame of a function-call
// expression.
func (in *Interp) Evaluate(
	ctx context.Context,
	env *Env,
	expr ast.Expression,
) (Value, error) {
	switch e := expr.(type) {
	case ast.IntLit:
		return IntValue(e.Value), nil

	case ast.FloatLit:
		return FloatValue(e.Value), nil

	case ast.BoolLit:
		return BoolValue(e.Value), nil

	case ast.StringLit:
		return StrValue(e.Value), nil

	case ast.Ident:
		return env.Lookup(e.Name)

	case ast.Unary:
		right, err := in.Evaluate(ctx, env, e.Right)
		if err != nil {
			return Value{}, err
		}

		return applyUnary(e.Op, right)

	case ast.Binary:
		// Both sides are always evaluated before combining, including for
		// && and ||: the connectives do not short-circuit.
		left, err := in.Evaluate(ctx, env, e.Left)
		if err != nil {
			return Value{}, err
		}

		right, err := in.Evaluate(ctx, env, e.Right)
		if err != nil {
			return Value{}, err
		}

		return applyBinary(e.Op, left, right)

	case ast.Call:
		return in.call(ctx, env, e)

	default:
		// The parser produces no other node types.
		return Value{}, NewError("unknown expression")
	}
}

// call invokes a declared function: arguments are evaluated left-to-right
// in the caller's environment and bound by position inside a fresh
// isolated frame. The call yields the frame's return slot; a body that
// never executes a return yields Int(0).
func (in *Interp) call(
	ctx context.Context,
	env *Env,
	e ast.Call,
) (Value, error) {
	fn, err := env.LookupFunction(e.Name)
	if err != nil {
		return Value{}, err
	}

	if len(e.Args) != len(fn.Params) {
		return Value{}, ErrArityMismatch.
			With(
				slog.String("function", fn.Name),
				slog.Int("expected", len(fn.Params)),
				slog.Int("got", len(e.Args)),
			)
	}

	frame := env.EnterFunctionFrame(fn)

	for i, arg := range e.Args {
		value, err := in.Evaluate(ctx, env, arg)
		if err != nil {
			return Value{}, err
		}

		if err := frame.Declare(fn.Params[i], value); err != nil {
			return Value{}, err
		}
	}

	if _, err := in.execBlock(ctx, frame, fn.Body); err != nil {
		return Value{}, err
	}

	return frame.ret, nil
}
