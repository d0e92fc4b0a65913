package lang

import (
	"log/slog"
	"strconv"
)

// Tag identifies the variant held by a Value.
type Tag int

const (
	// TagInt is a 64-bit signed integer.
	TagInt Tag = iota

	// TagFloat is a 64-bit IEEE 754 floating-point number.
	TagFloat

	// TagBool is a boolean.
	TagBool

	// TagStr is a UTF-8 string.
	TagStr
)

// String returns the variant name used in diagnostics.
func (t Tag) String() string {
	switch t {
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagBool:
		return "bool"
	case TagStr:
		return "string"
	default:
		return "invalid"
	}
}

// Value is the dynamic runtime value: exactly one of the four variants
// int, float, bool, or string. Values are immutable once produced; the
// zero value is Int(0).
type Value struct {
	Str   string
	Int   int64
	Float float64
	Tag   Tag
	Bool  bool
}

// IntValue returns an int Value.
func IntValue(v int64) Value { return Value{Tag: TagInt, Int: v} }

// FloatValue returns a float Value.
func FloatValue(v float64) Value { return Value{Tag: TagFloat, Float: v} }

// BoolValue returns a bool Value.
func BoolValue(v bool) Value { return Value{Tag: TagBool, Bool: v} }

// StrValue returns a string Value.
func StrValue(v string) Value { return Value{Tag: TagStr, Str: v} }

// String returns the display form used by the print statement: decimal for
// int, standard formatting for float, true/false for bool, and the raw
// contents for string (no quoting).
func (v Value) String() string {
	switch v.Tag {
	case TagInt:
		return strconv.FormatInt(v.Int, 10)
	case TagFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case TagBool:
		return strconv.FormatBool(v.Bool)
	case TagStr:
		return v.Str
	default:
		return "invalid"
	}
}

// Equal reports structural equality: true only when both variant and
// payload match. It never coerces across variants, not even int to float.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}

	switch v.Tag {
	case TagInt:
		return v.Int == o.Int
	case TagFloat:
		return v.Float == o.Float
	case TagBool:
		return v.Bool == o.Bool
	case TagStr:
		return v.Str == o.Str
	default:
		return false
	}
}

// LogValue implements slog.LogValuer so operand values appear structurally
// in error diagnostics.
func (v Value) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", v.Tag.String()),
		slog.String("value", v.String()),
	)
}

// float returns the numeric payload promoted to float64.
// Valid only for int and float variants.
func (v Value) float() float64 {
	if v.Tag == TagInt {
		return float64(v.Int)
	}

	return v.Float
}
