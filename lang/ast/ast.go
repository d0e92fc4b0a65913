// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the interpreter.
//
// A program is an ordered list of statements. Statements contain expressions
// but never the reverse, and neither is mutated after parsing.
package ast

import "github.com/ardnew/grim/lang/token"

// Program is the root of a parsed source file.
type Program struct {
	Statements []Statement
}

// Statement is implemented by every statement node.
type Statement interface {
	// Kind returns a human-readable statement kind for diagnostics.
	Kind() string
	stmt()
}

// Expression is implemented by every expression node.
type Expression interface {
	// Pos returns the position of the token that anchors this expression.
	Pos() token.Pos
	expr()
}

// VarDecl declares a new variable: let name = value;
type VarDecl struct {
	Name  string
	Value Expression
	At    token.Pos
}

// Assign overwrites an existing binding: name = value;
type Assign struct {
	Name  string
	Value Expression
	At    token.Pos
}

// If executes Then when Cond holds. Else is nil unless an else branch was
// written.
type If struct {
	Cond Expression
	Then []Statement
	Else []Statement
	At   token.Pos
}

// While re-evaluates Cond before every iteration of Body.
type While struct {
	Cond Expression
	Body []Statement
	At   token.Pos
}

// FnDecl declares a function with ordered parameter names.
type FnDecl struct {
	Name   string
	Params []string
	Body   []Statement
	At     token.Pos
}

// Return produces the enclosing call's result and stops the caller's
// statement list.
type Return struct {
	Value Expression
	At    token.Pos
}

// Print writes the display form of Value followed by a newline.
type Print struct {
	Value Expression
	At    token.Pos
}

// Input reads one line from standard input into the named variable.
type Input struct {
	Name string
	At   token.Pos
}

func (VarDecl) Kind() string { return "variable declaration" }
func (Assign) Kind() string  { return "assignment" }
func (If) Kind() string      { return "if statement" }
func (While) Kind() string   { return "while statement" }
func (FnDecl) Kind() string  { return "function declaration" }
func (Return) Kind() string  { return "return statement" }
func (Print) Kind() string   { return "print statement" }
func (Input) Kind() string   { return "input statement" }

func (VarDecl) stmt() {}
func (Assign) stmt()  {}
func (If) stmt()      {}
func (While) stmt()   {}
func (FnDecl) stmt()  {}
func (Return) stmt()  {}
func (Print) stmt()   {}
func (Input) stmt()   {}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
	At    token.Pos
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value float64
	At    token.Pos
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
	At    token.Pos
}

// StringLit is a string literal with escapes already resolved.
type StringLit struct {
	Value string
	At    token.Pos
}

// Ident is a variable reference.
type Ident struct {
	Name string
	At   token.Pos
}

// Call invokes a declared function with positional arguments.
type Call struct {
	Name string
	Args []Expression
	At   token.Pos
}

// Unary applies a prefix operator (- or !) to its operand.
type Unary struct {
	Op    token.Kind
	Right Expression
	At    token.Pos
}

// Binary applies an infix operator to two operands.
type Binary struct {
	Op    token.Kind
	Left  Expression
	Right Expression
	At    token.Pos
}

func (e IntLit) Pos() token.Pos    { return e.At }
func (e FloatLit) Pos() token.Pos  { return e.At }
func (e BoolLit) Pos() token.Pos   { return e.At }
func (e StringLit) Pos() token.Pos { return e.At }
func (e Ident) Pos() token.Pos     { return e.At }
func (e Call) Pos() token.Pos      { return e.At }
func (e Unary) Pos() token.Pos     { return e.At }
func (e Binary) Pos() token.Pos    { return e.At }

func (IntLit) expr()    {}
func (FloatLit) expr()  {}
func (BoolLit) expr()   {}
func (StringLit) expr() {}
func (Ident) expr()     {}
func (Call) expr()      {}
func (Unary) expr()     {}
func (Binary) expr()    {}
