// File: ring/convert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Construction from and conversion to plain sequences.

package ring

// FromSlice builds a full buffer whose capacity is len(s), copying s.
// It panics on an empty slice.
func FromSlice[T any](s []T, opts ...Option[T]) *Buffer[T] {
	return FromSliceCap(len(s), s, opts...)
}

// FromSliceCap copies s into a buffer of the given capacity. When s is
// longer than capacity only its last capacity elements survive.
func FromSliceCap[T any](capacity int, s []T, opts ...Option[T]) *Buffer[T] {
	b := New(capacity, opts...)
	for _, v := range s {
		b.PushBack(v)
	}
	return b
}

// FromString builds a buffer of runes from text. When text holds more than
// capacity runes only the last capacity survive.
func FromString(capacity int, text string) *Buffer[rune] {
	b := New[rune](capacity)
	for _, r := range text {
		b.PushBack(r)
	}
	return b
}
