package lang

import (
	"log/slog"
	"maps"

	"github.com/ardnew/grim/lang/ast"
)

// Function is a declared function: its ordered parameter names and body.
type Function struct {
	Name   string
	Params []string
	Body   []ast.Statement
}

// Env holds the bindings of one lexical block: the program top level, an
// if/else branch, a while body, or a function call frame.
//
// The local maps contain only names declared directly in this block. The
// visible sets contain every name declared here or in any ancestor; they
// are inherited by copy when a child block is entered and exist solely to
// reject shadowing without re-walking the chain.
//
// Children reference parents, never the reverse, and are discarded when
// their block finishes. A call frame has no parent at all: function bodies
// see their own parameters and locals only, never the caller's variables.
type Env struct {
	parent *Env

	vars  map[string]Value
	funcs map[string]Function

	visibleVars  map[string]struct{}
	visibleFuncs map[string]struct{}

	// ret holds the value produced by the most recent return statement
	// evaluated within this chain's root (the call frame).
	ret Value
}

// NewEnv creates the top-level program environment.
func NewEnv() *Env {
	return &Env{
		vars:         make(map[string]Value),
		funcs:        make(map[string]Function),
		visibleVars:  make(map[string]struct{}),
		visibleFuncs: make(map[string]struct{}),
	}
}

// EnterChild creates a nested block environment whose parent is e.
// The visible-name sets are copied so shadow checks stay O(1).
func (e *Env) EnterChild() *Env {
	return &Env{
		parent:       e,
		vars:         make(map[string]Value),
		funcs:        make(map[string]Function),
		visibleVars:  maps.Clone(e.visibleVars),
		visibleFuncs: maps.Clone(e.visibleFuncs),
	}
}

// EnterFunctionFrame creates an isolated call frame for fn. The frame has
// no parent link, so the callee cannot see the caller's locals, but it is
// pre-seeded with fn's own declaration so recursive self-calls resolve.
func (e *Env) EnterFunctionFrame(fn Function) *Env {
	frame := NewEnv()

	frame.funcs[fn.Name] = fn
	frame.visibleFuncs[fn.Name] = struct{}{}

	return frame
}

// Declare binds name to value in this block. It fails with
// [ErrNameAlreadyBound] if name is already declared directly in this block,
// or with [ErrShadowingViolation] if name is visible from an ancestor.
func (e *Env) Declare(name string, value Value) error {
	if _, ok := e.vars[name]; ok {
		return ErrNameAlreadyBound.
			With(slog.String("name", name))
	}

	if _, ok := e.visibleVars[name]; ok {
		return ErrShadowingViolation.
			With(slog.String("name", name))
	}

	e.vars[name] = value
	e.visibleVars[name] = struct{}{}

	return nil
}

// DeclareFunction declares fn in this block. The same duplicate and shadow
// rules as [Env.Declare] apply, over the function namespace.
func (e *Env) DeclareFunction(fn Function) error {
	if _, ok := e.funcs[fn.Name]; ok {
		return ErrNameAlreadyBound.
			With(slog.String("function", fn.Name))
	}

	if _, ok := e.visibleFuncs[fn.Name]; ok {
		return ErrShadowingViolation.
			With(slog.String("function", fn.Name))
	}

	e.funcs[fn.Name] = fn
	e.visibleFuncs[fn.Name] = struct{}{}

	return nil
}

// Lookup returns the Value bound to name, walking from this block to the
// chain root.
func (e *Env) Lookup(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, nil
		}
	}

	return Value{}, ErrUndefinedVariable.
		With(slog.String("name", name))
}

// LookupFunction returns the function declared as name, walking from this
// block to the chain root.
func (e *Env) LookupFunction(name string) (Function, error) {
	for env := e; env != nil; env = env.parent {
		if fn, ok := env.funcs[name]; ok {
			return fn, nil
		}
	}

	return Function{}, ErrUndefinedFunction.
		With(slog.String("name", name))
}

// Assign overwrites the innermost existing binding of name. It never
// creates a binding: assigning to an undeclared name fails with
// [ErrUndefinedVariable].
func (e *Env) Assign(name string, value Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = value

			return nil
		}
	}

	return ErrUndefinedVariable.
		With(slog.String("name", name))
}

// setReturn stores value in the chain root's return slot. Call frames are
// chain roots, so a return inside nested blocks lands on the frame and
// never escapes across the call boundary.
func (e *Env) setReturn(value Value) {
	root := e
	for root.parent != nil {
		root = root.parent
	}

	root.ret = value
}

// Names returns every variable and function name visible from this block.
// The REPL uses it for completion.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.visibleVars)+len(e.visibleFuncs))

	for name := range e.visibleVars {
		names = append(names, name)
	}

	for name := range e.visibleFuncs {
		names = append(names, name)
	}

	return names
}
