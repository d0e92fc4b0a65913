package lang

import (
	"context"
	"io"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/grim/lang/ast"
	"github.com/ardnew/grim/lang/parser"
)

// programCache stores parsed programs keyed by source hash. Programs are
// immutable after parsing, so a cached tree can be executed by any number
// of interpreters concurrently.
//
//nolint:gochecknoglobals
var programCache sync.Map

// ParseString parses Grim source text into a program tree. Identical
// source content is parsed only once; later calls return the cached tree.
func ParseString(ctx context.Context, source string) (*ast.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, WrapError(err)
	}

	key := xxh3.Hash([]byte(source))

	if cached, ok := programCache.Load(key); ok {
		return cached.(*ast.Program), nil
	}

	prog, err := parser.ParseString(source)
	if err != nil {
		return nil, WrapError(err)
	}

	programCache.Store(key, prog)

	return prog, nil
}

// ParseReader reads all input from r and parses it with [ParseString].
//
// The reader is wrapped with asynchronous read-ahead so data is
// pre-fetched while earlier chunks are consumed.
func ParseReader(ctx context.Context, r io.Reader) (*ast.Program, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	source, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrIoFailure.Wrap(err)
	}

	return ParseString(ctx, string(source))
}

// ClearCache drops all cached programs. Useful for testing.
func ClearCache() {
	programCache.Clear()
}
