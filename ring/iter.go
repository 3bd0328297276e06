// File: ring/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Iteration family over Buffer.

package ring

import (
	"iter"

	"github.com/momentics/nshring/api"
)

// All yields (logical offset, element) pairs, oldest first.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		mods := b.store.Mods()
		first, second := b.store.Runs()
		i := 0
		for _, run := range [2][]T{first, second} {
			for _, v := range run {
				if !yield(i, v) {
					return
				}
				b.checkUnchanged(mods)
				i++
			}
		}
	}
}

// Values yields elements, oldest first.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields (logical offset, element) pairs, newest first.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		mods := b.store.Mods()
		for i := b.store.Len() - 1; i >= 0; i-- {
			if !yield(i, *b.store.Ptr(i)) {
				return
			}
			b.checkUnchanged(mods)
		}
	}
}

// AllPtr yields pointers to every cell, oldest first. Each cell is yielded
// once; writes through the pointers update the buffer in place.
func (b *Buffer[T]) AllPtr() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		mods := b.store.Mods()
		first, second := b.store.Runs()
		i := 0
		for _, run := range [2][]T{first, second} {
			for k := range run {
				if !yield(i, &run[k]) {
					return
				}
				b.checkUnchanged(mods)
				i++
			}
		}
	}
}

// BackwardPtr is AllPtr walking from the newest element.
func (b *Buffer[T]) BackwardPtr() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		mods := b.store.Mods()
		for i := b.store.Len() - 1; i >= 0; i-- {
			if !yield(i, b.store.Ptr(i)) {
				return
			}
			b.checkUnchanged(mods)
		}
	}
}

// Drain pops and yields every element, oldest first. Yielded elements
// belong to the caller. Whether the loop runs to completion, breaks early
// or panics, the buffer is empty afterwards and skipped elements are
// released.
func (b *Buffer[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer b.Clear()
		for b.store.Len() > 0 {
			v := b.store.Take()
			mods := b.store.Mods()
			if !yield(v) {
				return
			}
			b.checkUnchanged(mods)
		}
	}
}

// Extend pushes every element of seq.
func (b *Buffer[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		b.PushBack(v)
	}
}

func (b *Buffer[T]) checkUnchanged(mods uint64) {
	if b.store.Mods() != mods {
		panic(api.ErrConcurrentModification)
	}
}
