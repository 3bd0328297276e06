// File: ring/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is a bounded circular FIFO with overwrite-oldest semantics.
// Storage is allocated once by New; cursors are unbounded and reduced
// modulo capacity only when addressing a cell.

package ring

import (
	"fmt"

	"github.com/momentics/nshring/api"
	"github.com/momentics/nshring/internal/slots"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// Buffer is a fixed-capacity ring buffer. A Buffer is not safe for
// concurrent use.
//
// The zero value has no storage and is unusable: mutators panic with
// api.ErrZeroCapacity. Build buffers with New or TryNew.
type Buffer[T any] struct {
	store   slots.Store[T]
	release func(T)
}

// New allocates an empty buffer of the given capacity.
// It panics if capacity is not positive.
func New[T any](capacity int, opts ...Option[T]) *Buffer[T] {
	b, err := TryNew(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// TryNew is New for capacities that come from configuration.
func TryNew[T any](capacity int, opts ...Option[T]) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, api.WrapError(api.ErrCodeZeroCapacity, api.ErrZeroCapacity).
			WithContext("capacity", capacity)
	}
	b := &Buffer[T]{store: slots.New[T](capacity)}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int { return b.store.Len() }

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return b.store.Cap() }

// IsEmpty reports whether the buffer holds no element.
func (b *Buffer[T]) IsEmpty() bool { return b.store.Len() == 0 }

// IsFull reports whether the next push evicts the oldest element.
func (b *Buffer[T]) IsFull() bool { return b.store.Valid() && b.store.Full() }

// PushBack appends v. When the buffer is full the oldest element is
// released first. Reports whether an eviction took place.
func (b *Buffer[T]) PushBack(v T) bool {
	evicted := b.evictIfFull()
	*b.store.Append() = v
	return evicted
}

// PushBackFunc appends an element built in place: fill receives the next
// cell, holding the zero value of T. Eviction is the same as PushBack.
func (b *Buffer[T]) PushBackFunc(fill func(slot *T)) bool {
	evicted := b.evictIfFull()
	fill(b.store.Append())
	return evicted
}

func (b *Buffer[T]) evictIfFull() bool {
	b.mustHaveStorage()
	if !b.store.Full() {
		return false
	}
	b.drop(b.store.Take())
	return true
}

// PopFront removes and returns the oldest element.
func (b *Buffer[T]) PopFront() (T, bool) {
	if b.store.Len() == 0 {
		var zero T
		return zero, false
	}
	return b.store.Take(), true
}

// Get returns a copy of the element at logical offset i, 0 being the oldest.
func (b *Buffer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= b.store.Len() {
		var zero T
		return zero, false
	}
	return *b.store.Ptr(i), true
}

// GetPtr returns a pointer to the element at logical offset i. The pointer
// is valid until the next mutating call.
func (b *Buffer[T]) GetPtr(i int) (*T, bool) {
	if i < 0 || i >= b.store.Len() {
		return nil, false
	}
	return b.store.Ptr(i), true
}

// At returns the element at logical offset i and panics when i is out of
// range.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.store.Len() {
		panic(api.WrapError(api.ErrCodeOutOfRange, api.ErrOutOfRange).
			WithContext("index", i).
			WithContext("len", b.store.Len()))
	}
	return *b.store.Ptr(i)
}

// Front returns the oldest element.
func (b *Buffer[T]) Front() (T, bool) { return b.Get(0) }

// Back returns the newest element.
func (b *Buffer[T]) Back() (T, bool) { return b.Get(b.store.Len() - 1) }

// FrontPtr returns a pointer to the oldest element.
func (b *Buffer[T]) FrontPtr() (*T, bool) { return b.GetPtr(0) }

// BackPtr returns a pointer to the newest element.
func (b *Buffer[T]) BackPtr() (*T, bool) { return b.GetPtr(b.store.Len() - 1) }

// Clear releases every element and rewinds both cursors to zero.
func (b *Buffer[T]) Clear() {
	for b.store.Len() > 0 {
		b.drop(b.store.Take())
	}
	b.store.Rewind()
}

// FillWith clears the buffer, then fills every cell with successive calls
// to gen. The buffer is full afterwards.
func (b *Buffer[T]) FillWith(gen func() T) {
	b.mustHaveStorage()
	b.Clear()
	for i := 0; i < b.store.Cap(); i++ {
		*b.store.Append() = gen()
	}
}

// Views returns the elements as one or two contiguous runs, oldest first.
// second is nil unless the live window wraps. Both slices alias the
// storage and are valid until the next mutating call.
func (b *Buffer[T]) Views() (first, second []T) {
	return b.store.Runs()
}

// Close releases every remaining element exactly once. It is Clear under
// the name callers use for end-of-life cleanup.
func (b *Buffer[T]) Close() {
	b.Clear()
}

// Clone returns a buffer with the same capacity, release hook and logical
// contents, starting at read cursor zero. Elements are copied by
// assignment; use CloneFunc when a release hook is set and elements hold
// resources.
func (b *Buffer[T]) Clone() *Buffer[T] {
	return b.CloneFunc(func(v T) T { return v })
}

// CloneFunc is Clone with dup producing each copied element.
func (b *Buffer[T]) CloneFunc(dup func(T) T) *Buffer[T] {
	out := &Buffer[T]{release: b.release}
	if !b.store.Valid() {
		return out
	}
	out.store = slots.New[T](b.store.Cap())
	first, second := b.store.Runs()
	for _, v := range first {
		*out.store.Append() = dup(v)
	}
	for _, v := range second {
		*out.store.Append() = dup(v)
	}
	return out
}

// ToSlice copies the elements into a new slice, oldest first.
func (b *Buffer[T]) ToSlice() []T {
	first, second := b.store.Runs()
	out := make([]T, 0, len(first)+len(second))
	out = append(out, first...)
	return append(out, second...)
}

// String implements fmt.Stringer.
func (b *Buffer[T]) String() string {
	return fmt.Sprint(b.ToSlice())
}

func (b *Buffer[T]) drop(v T) {
	if b.release != nil {
		b.release(v)
	}
}

func (b *Buffer[T]) mustHaveStorage() {
	if !b.store.Valid() {
		panic(api.ErrZeroCapacity)
	}
}
