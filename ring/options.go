// File: ring/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

// Option customizes buffer initialization.
type Option[T any] func(*Buffer[T])

// WithRelease installs fn as the release hook. fn runs exactly once for every
// element that leaves the buffer without being returned to the caller:
// evicted by a push, removed by Clear/FillWith/Close or skipped by an
// abandoned Drain.
func WithRelease[T any](fn func(T)) Option[T] {
	return func(b *Buffer[T]) {
		b.release = fn
	}
}
