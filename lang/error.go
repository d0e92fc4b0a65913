package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values). Every failure produced by the
// engine wraps one of these kinds.
var (
	ErrUndefinedVariable   = NewError("undefined variable")
	ErrUndefinedFunction   = NewError("undefined function")
	ErrNameAlreadyBound    = NewError("name already bound in this scope")
	ErrShadowingViolation  = NewError("shadowing a name visible from an enclosing scope")
	ErrIncompatibleOperand = NewError("operator applied to incompatible operands")
	ErrUnsupportedUnary    = NewError("unary operator applied to unsupported operand")
	ErrNonBooleanCondition = NewError("condition did not evaluate to a boolean")
	ErrArityMismatch       = NewError("argument count does not match parameter count")
	ErrTypeMismatch        = NewError("input value does not match the variable's type")
	ErrIoFailure           = NewError("failed to read input")
	ErrDivisionByZero      = NewError("division by zero")
)

// makeOperatorAttr renders an operator for error diagnostics.
func makeOperatorAttr(op fmt.Stringer) slog.Attr {
	return slog.String("operator", op.String())
}

// makeOperandAttr attaches an operand value to an error. Value implements
// slog.LogValuer, so both its variant and payload are recorded.
func makeOperandAttr(key string, v Value) slog.Attr {
	return slog.Any(key, v)
}

// Error represents an engine error with optional structured logging
// attributes. It implements both error and slog.LogValuer.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same error kind. Derived errors
// produced by With and Wrap retain their kind, so sentinel comparisons
// with errors.Is keep working after attributes are attached.
func (e *Error) Is(target error) bool {
	t := &Error{}
	if !errors.As(target, &t) {
		return false
	}

	return e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}
