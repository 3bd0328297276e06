// File: shell/output.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package shell

import (
	"context"
	"io"
)

type outputKey struct{}

// WithOutput attaches the session output to ctx.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// Output returns the session output commands should print to, or
// io.Discard outside a shell session.
func Output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok {
		return w
	}
	return io.Discard
}
