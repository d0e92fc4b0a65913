package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens the program source at path, or stdin when path is "-".
// The returned name is suitable for log attributes and error messages.
func openSource(path string) (r io.ReadCloser, name string, err error) {
	if path == stdinSource {
		return io.NopCloser(os.Stdin), "<stdin>", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, path, ErrOpenSource.
			Wrap(err)
	}

	return file, path, nil
}
