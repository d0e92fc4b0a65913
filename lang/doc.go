// Package lang implements the Grim execution engine: the runtime value
// model, the lexically nested environment chain, the recursive expression
// evaluator with its operator compatibility table, and the statement
// executor.
//
// # Pipeline
//
// Source text is tokenized by [github.com/ardnew/grim/lang/scanner], parsed
// into an [github.com/ardnew/grim/lang/ast.Program] by
// [github.com/ardnew/grim/lang/parser], and executed by an [Interp]:
//
//	prog, err := lang.ParseString(ctx, source)
//	if err != nil { ... }
//	err = lang.New().Run(ctx, prog)
//
// Parsed programs are cached by source hash, so identical content is parsed
// only once even when accessed from multiple goroutines.
//
// # Scoping
//
// Every block (the program top level, each if/else branch, a while body,
// and each function call) owns an [Env]. Child environments reference their
// parents; assignment to an inherited name writes through to the ancestor
// that declared it. Shadowing any visible name is a hard error. Function
// call frames have no parent link, so function bodies see only their own
// parameters and locals, never the caller's variables.
//
// # Errors
//
// All input-dependent failures are reported as [*Error] values carrying
// structured logging attributes. The first error encountered aborts the run
// and propagates unchanged to the caller; nothing is retried or recovered.
package lang
