package lang

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/grim/lang/ast"
)

// execBlock executes a statement list top to bottom. It reports returned
// when a return statement fired, so enclosing statement lists stop without
// executing their remaining siblings. The signal propagates up to, but
// never across, the function-call boundary.
func (in *Interp) execBlock(
	ctx context.Context,
	env *Env,
	stmts []ast.Statement,
) (returned bool, err error) {
	for _, stmt := range stmts {
		if err := ctx.Err(); err != nil {
			return false, WrapError(err)
		}

		returned, err = in.execStmt(ctx, env, stmt)
		if err != nil || returned {
			return returned, err
		}
	}

	return false, nil
}

//nolint:cyclop
func (in *Interp) execStmt(
	ctx context.Context,
	env *Env,
	stmt ast.Statement,
) (returned bool, err error) {
	switch s := stmt.(type) {
	case ast.VarDecl:
		value, err := in.Evaluate(ctx, env, s.Value)
		if err != nil {
			return false, annotate(err, s)
		}

		return false, annotate(env.Declare(s.Name, value), s)

	case ast.Assign:
		value, err := in.Evaluate(ctx, env, s.Value)
		if err != nil {
			return false, annotate(err, s)
		}

		return false, annotate(env.Assign(s.Name, value), s)

	case ast.If:
		return in.execIf(ctx, env, s)

	case ast.While:
		return in.execWhile(ctx, env, s)

	case ast.FnDecl:
		fn := Function{Name: s.Name, Params: s.Params, Body: s.Body}

		return false, annotate(env.DeclareFunction(fn), s)

	case ast.Return:
		value, err := in.Evaluate(ctx, env, s.Value)
		if err != nil {
			return false, annotate(err, s)
		}

		env.setReturn(value)

		return true, nil

	case ast.Print:
		value, err := in.Evaluate(ctx, env, s.Value)
		if err != nil {
			return false, annotate(err, s)
		}

		if _, err := fmt.Fprintln(in.stdout, value.String()); err != nil {
			return false, annotate(ErrIoFailure.Wrap(err), s)
		}

		return false, nil

	case ast.Input:
		return false, annotate(in.execInput(env, s), s)

	default:
		return false, NewError("unknown statement")
	}
}

// execIf evaluates the condition in the current environment and runs the
// chosen branch in a fresh child environment, discarded afterwards.
func (in *Interp) execIf(
	ctx context.Context,
	env *Env,
	s ast.If,
) (bool, error) {
	cond, err := in.condition(ctx, env, s.Cond)
	if err != nil {
		return false, annotate(err, s)
	}

	branch := s.Then
	if !cond {
		branch = s.Else
	}

	if branch == nil {
		return false, nil
	}

	return in.execBlock(ctx, env.EnterChild(), branch)
}

// execWhile re-evaluates the condition in the outer environment before
// every iteration. The body runs in a single child environment created
// once before the loop and reused for every iteration, so a let of the
// same name on a later iteration is rejected as a duplicate.
func (in *Interp) execWhile(
	ctx context.Context,
	env *Env,
	s ast.While,
) (bool, error) {
	body := env.EnterChild()

	for {
		cond, err := in.condition(ctx, env, s.Cond)
		if err != nil {
			return false, annotate(err, s)
		}

		if !cond {
			return false, nil
		}

		returned, err := in.execBlock(ctx, body, s.Body)
		if err != nil || returned {
			return returned, err
		}
	}
}

// condition evaluates a control-flow condition, which must produce a bool.
func (in *Interp) condition(
	ctx context.Context,
	env *Env,
	expr ast.Expression,
) (bool, error) {
	value, err := in.Evaluate(ctx, env, expr)
	if err != nil {
		return false, err
	}

	if value.Tag != TagBool {
		return false, ErrNonBooleanCondition.
			With(makeOperandAttr("condition", value))
	}

	return value.Bool, nil
}

// annotate attaches the statement kind in which an error occurred. Errors
// bubbling out of nested blocks arrive already annotated with the inner
// statement and pass through execBlock unchanged.
func annotate(err error, stmt ast.Statement) error {
	if err == nil {
		return nil
	}

	return WrapError(err).
		With(slog.String("statement", stmt.Kind()))
}
