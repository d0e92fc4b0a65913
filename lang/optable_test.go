package lang

import (
	"errors"
	"math"
	"testing"

	"github.com/ardnew/grim/lang/token"
)

func TestApplyBinary_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       token.Kind
		left     Value
		right    Value
		expected Value
	}{
		{"int plus int", token.Plus, IntValue(2), IntValue(3), IntValue(5)},
		{"int plus float promotes", token.Plus, IntValue(2), FloatValue(0.5), FloatValue(2.5)},
		{"float plus int promotes", token.Plus, FloatValue(0.5), IntValue(2), FloatValue(2.5)},
		{"int minus int", token.Minus, IntValue(2), IntValue(5), IntValue(-3)},
		{"int times int", token.Star, IntValue(4), IntValue(6), IntValue(24)},
		{"float times float", token.Star, FloatValue(1.5), FloatValue(2), FloatValue(3)},
		{"exact division stays int", token.Slash, IntValue(6), IntValue(2), IntValue(3)},
		{"inexact division yields float", token.Slash, IntValue(7), IntValue(2), FloatValue(3.5)},
		{"float division", token.Slash, FloatValue(1), FloatValue(4), FloatValue(0.25)},
		{"modulo", token.Percent, IntValue(7), IntValue(2), IntValue(1)},
		{"negative exact division", token.Slash, IntValue(-6), IntValue(3), IntValue(-2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyBinary(tt.op, tt.left, tt.right)
			if err != nil {
				t.Fatalf("applyBinary failed: %v", err)
			}

			if !got.Equal(tt.expected) {
				t.Errorf("%v %v %v = %v (%v), want %v (%v)",
					tt.left, tt.op, tt.right,
					got, got.Tag, tt.expected, tt.expected.Tag)
			}
		})
	}
}

func TestApplyBinary_IncompatibleOperands(t *testing.T) {
	tests := []struct {
		name  string
		op    token.Kind
		left  Value
		right Value
	}{
		{"string plus string", token.Plus, StrValue("a"), StrValue("b")},
		{"bool plus int", token.Plus, BoolValue(true), IntValue(1)},
		{"float modulo int", token.Percent, FloatValue(7), IntValue(2)},
		{"int modulo float", token.Percent, IntValue(7), FloatValue(2)},
		{"and over ints", token.And, IntValue(1), IntValue(1)},
		{"or over strings", token.Or, StrValue("a"), StrValue("b")},
		{"less over bools", token.Less, BoolValue(true), BoolValue(false)},
		{"less over strings", token.Less, StrValue("a"), StrValue("b")},
		{"equality across int and float", token.EqualEqual, IntValue(1), FloatValue(1)},
		{"equality across bool and int", token.EqualEqual, BoolValue(true), IntValue(1)},
		{"inequality across variants", token.BangEqual, StrValue("1"), IntValue(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := applyBinary(tt.op, tt.left, tt.right)
			if !errors.Is(err, ErrIncompatibleOperand) {
				t.Errorf("expected ErrIncompatibleOperand, got %v", err)
			}
		})
	}
}

func TestApplyBinary_Logical(t *testing.T) {
	tests := []struct {
		name     string
		op       token.Kind
		left     bool
		right    bool
		expected bool
	}{
		{"true and true", token.And, true, true, true},
		{"true and false", token.And, true, false, false},
		{"false or true", token.Or, false, true, true},
		{"false or false", token.Or, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyBinary(tt.op, BoolValue(tt.left), BoolValue(tt.right))
			if err != nil {
				t.Fatalf("applyBinary failed: %v", err)
			}

			if !got.Equal(BoolValue(tt.expected)) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestApplyBinary_Relational(t *testing.T) {
	tests := []struct {
		name     string
		op       token.Kind
		left     Value
		right    Value
		expected bool
	}{
		{"int less int", token.Less, IntValue(1), IntValue(2), true},
		{"int less float promotes", token.Less, IntValue(1), FloatValue(1.5), true},
		{"float greater int", token.Greater, FloatValue(2.5), IntValue(2), true},
		{"less equal boundary", token.LessEqual, IntValue(2), IntValue(2), true},
		{"greater equal false", token.GreaterEqual, IntValue(1), IntValue(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyBinary(tt.op, tt.left, tt.right)
			if err != nil {
				t.Fatalf("applyBinary failed: %v", err)
			}

			if !got.Equal(BoolValue(tt.expected)) {
				t.Errorf("%v %v %v = %v, want %v",
					tt.left, tt.op, tt.right, got, tt.expected)
			}
		})
	}
}

func TestApplyBinary_Equality(t *testing.T) {
	tests := []struct {
		name     string
		op       token.Kind
		left     Value
		right    Value
		expected bool
	}{
		{"equal ints", token.EqualEqual, IntValue(1), IntValue(1), true},
		{"unequal ints", token.EqualEqual, IntValue(1), IntValue(2), false},
		{"equal strings", token.EqualEqual, StrValue("a"), StrValue("a"), true},
		{"equal bools", token.EqualEqual, BoolValue(false), BoolValue(false), true},
		{"not equal floats", token.BangEqual, FloatValue(1), FloatValue(2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyBinary(tt.op, tt.left, tt.right)
			if err != nil {
				t.Fatalf("applyBinary failed: %v", err)
			}

			if !got.Equal(BoolValue(tt.expected)) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestApplyBinary_DivisionByZero(t *testing.T) {
	for _, op := range []token.Kind{token.Slash, token.Percent} {
		_, err := applyBinary(op, IntValue(1), IntValue(0))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%v: expected ErrDivisionByZero, got %v", op, err)
		}
	}

	// Float division by zero follows IEEE 754 instead.
	got, err := applyBinary(token.Slash, FloatValue(1), FloatValue(0))
	if err != nil {
		t.Fatalf("float division by zero failed: %v", err)
	}

	if !math.IsInf(got.Float, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}
}

func TestApplyUnary(t *testing.T) {
	tests := []struct {
		name     string
		op       token.Kind
		operand  Value
		expected Value
	}{
		{"negate int", token.Minus, IntValue(5), IntValue(-5)},
		{"negate float", token.Minus, FloatValue(2.5), FloatValue(-2.5)},
		{"not true", token.Bang, BoolValue(true), BoolValue(false)},
		{"not false", token.Bang, BoolValue(false), BoolValue(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyUnary(tt.op, tt.operand)
			if err != nil {
				t.Fatalf("applyUnary failed: %v", err)
			}

			if !got.Equal(tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestApplyUnary_Unsupported(t *testing.T) {
	tests := []struct {
		name    string
		op      token.Kind
		operand Value
	}{
		{"negate bool", token.Minus, BoolValue(true)},
		{"negate string", token.Minus, StrValue("a")},
		{"not int", token.Bang, IntValue(0)},
		{"not string", token.Bang, StrValue("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := applyUnary(tt.op, tt.operand)
			if !errors.Is(err, ErrUnsupportedUnary) {
				t.Errorf("expected ErrUnsupportedUnary, got %v", err)
			}
		})
	}
}
