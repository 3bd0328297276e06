// File: ring/consume.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "iter"

// Consumer owns the storage taken from a Buffer by Consume and yields its
// elements by popping them.
type Consumer[T any] struct {
	buf Buffer[T]
}

// Consume moves the elements and storage into a Consumer. The source buffer
// is left without storage: it reads as empty and its mutators panic.
func (b *Buffer[T]) Consume() *Consumer[T] {
	return &Consumer[T]{buf: Buffer[T]{store: b.store.Move(), release: b.release}}
}

// Next pops the oldest element.
func (c *Consumer[T]) Next() (T, bool) {
	return c.buf.PopFront()
}

// Len returns the number of elements not yet consumed.
func (c *Consumer[T]) Len() int {
	return c.buf.Len()
}

// All pops and yields the remaining elements; see Buffer.Drain.
func (c *Consumer[T]) All() iter.Seq[T] {
	return c.buf.Drain()
}

// Close releases the remaining elements.
func (c *Consumer[T]) Close() {
	c.buf.Clear()
}
