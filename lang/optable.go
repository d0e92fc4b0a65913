package lang

import (
	"sync"

	"github.com/ardnew/grim/lang/token"
)

// binOp computes the result of applying an operator to two fully evaluated
// operands.
type binOp func(left, right Value) Value

// binKey indexes the operator table by operator and operand variants.
type binKey struct {
	op    token.Kind
	left  Tag
	right Tag
}

// binOps is the closed operator compatibility matrix: operator × left
// variant × right variant. An absent entry means the combination is
// rejected with [ErrIncompatibleOperand]. Keeping the matrix in one table
// makes it exhaustive and testable as a unit instead of re-deriving the
// rules inside every operator.
//
// Rules encoded here:
//   - arithmetic (+ - * / %) accepts numeric operands only; mixed int and
//     float promotes the int side to float
//   - int / int yields int when the division is exact, otherwise the float
//     true quotient
//   - % is defined only for int % int
//   - && and || accept booleans only (both sides already evaluated; there
//     is no short circuit)
//   - < > <= >= accept any numeric mix with the same promotion
//   - == and != require both operands of the same variant; int vs float is
//     rejected, stricter than the relational operators
//
//nolint:gochecknoglobals
var binOps = sync.OnceValue(makeBinOps)

//nolint:funlen
func makeBinOps() map[binKey]binOp {
	table := make(map[binKey]binOp, 128)

	numeric := func(op token.Kind, ii func(a, b int64) Value, ff func(a, b float64) Value) {
		table[binKey{op, TagInt, TagInt}] = func(l, r Value) Value { return ii(l.Int, r.Int) }
		table[binKey{op, TagInt, TagFloat}] = func(l, r Value) Value { return ff(l.float(), r.Float) }
		table[binKey{op, TagFloat, TagInt}] = func(l, r Value) Value { return ff(l.Float, r.float()) }
		table[binKey{op, TagFloat, TagFloat}] = func(l, r Value) Value { return ff(l.Float, r.Float) }
	}

	// Arithmetic.
	numeric(token.Plus,
		func(a, b int64) Value { return IntValue(a + b) },
		func(a, b float64) Value { return FloatValue(a + b) },
	)
	numeric(token.Minus,
		func(a, b int64) Value { return IntValue(a - b) },
		func(a, b float64) Value { return FloatValue(a - b) },
	)
	numeric(token.Star,
		func(a, b int64) Value { return IntValue(a * b) },
		func(a, b float64) Value { return FloatValue(a * b) },
	)
	numeric(token.Slash,
		// Exact division yields int; any remainder yields the float true
		// quotient. This lets / double as integer division when clean.
		func(a, b int64) Value {
			if a%b == 0 {
				return IntValue(a / b)
			}

			return FloatValue(float64(a) / float64(b))
		},
		func(a, b float64) Value { return FloatValue(a / b) },
	)

	// Modulo is int-only; no float or mixed combinations exist.
	table[binKey{token.Percent, TagInt, TagInt}] = func(l, r Value) Value {
		return IntValue(l.Int % r.Int)
	}

	// Logical connectives.
	table[binKey{token.And, TagBool, TagBool}] = func(l, r Value) Value {
		return BoolValue(l.Bool && r.Bool)
	}
	table[binKey{token.Or, TagBool, TagBool}] = func(l, r Value) Value {
		return BoolValue(l.Bool || r.Bool)
	}

	// Relational comparisons.
	numeric(token.Less,
		func(a, b int64) Value { return BoolValue(a < b) },
		func(a, b float64) Value { return BoolValue(a < b) },
	)
	numeric(token.Greater,
		func(a, b int64) Value { return BoolValue(a > b) },
		func(a, b float64) Value { return BoolValue(a > b) },
	)
	numeric(token.LessEqual,
		func(a, b int64) Value { return BoolValue(a <= b) },
		func(a, b float64) Value { return BoolValue(a <= b) },
	)
	numeric(token.GreaterEqual,
		func(a, b int64) Value { return BoolValue(a >= b) },
		func(a, b float64) Value { return BoolValue(a >= b) },
	)

	// Equality over identical variants only.
	for _, tag := range []Tag{TagInt, TagFloat, TagBool, TagStr} {
		table[binKey{token.EqualEqual, tag, tag}] = func(l, r Value) Value {
			return BoolValue(l.Equal(r))
		}
		table[binKey{token.BangEqual, tag, tag}] = func(l, r Value) Value {
			return BoolValue(!l.Equal(r))
		}
	}

	return table
}

// applyBinary resolves op over the operand variants through the table.
func applyBinary(op token.Kind, left, right Value) (Value, error) {
	fn, ok := binOps()[binKey{op: op, left: left.Tag, right: right.Tag}]
	if !ok {
		return Value{}, ErrIncompatibleOperand.
			With(
				makeOperatorAttr(op),
				makeOperandAttr("left", left),
				makeOperandAttr("right", right),
			)
	}

	// Integer division and modulo have no defined result for a zero
	// divisor. Float division follows IEEE 754 and yields an infinity.
	if (op == token.Slash || op == token.Percent) &&
		right.Tag == TagInt && right.Int == 0 {
		return Value{}, ErrDivisionByZero.
			With(
				makeOperatorAttr(op),
				makeOperandAttr("left", left),
			)
	}

	return fn(left, right), nil
}

// applyUnary negates numeric operands for - and inverts booleans for !.
func applyUnary(op token.Kind, right Value) (Value, error) {
	switch {
	case op == token.Minus && right.Tag == TagInt:
		return IntValue(-right.Int), nil

	case op == token.Minus && right.Tag == TagFloat:
		return FloatValue(-right.Float), nil

	case op == token.Bang && right.Tag == TagBool:
		return BoolValue(!right.Bool), nil

	default:
		return Value{}, ErrUnsupportedUnary.
			With(
				makeOperatorAttr(op),
				makeOperandAttr("operand", right),
			)
	}
}
