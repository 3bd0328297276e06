// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity ring buffer contract with overwrite-oldest semantics.

package api

// Ring is the operation set of a fixed-capacity FIFO ring.
//
// Pushing into a full ring evicts the oldest element; it is never an error.
// Absent values are reported through the boolean result, never as a
// partially initialized element.
type Ring[T any] interface {
	// PushBack appends an item, evicting the oldest one when full.
	// Reports whether an eviction took place.
	PushBack(item T) bool
	// PopFront removes the oldest item, returns false if empty.
	PopFront() (T, bool)
	// Get returns the item at logical offset i (0 is the oldest).
	Get(i int) (T, bool)
	// Front returns the oldest item.
	Front() (T, bool)
	// Back returns the newest item.
	Back() (T, bool)
	// Clear removes every item and rewinds the ring.
	Clear()
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
	// IsFull reports whether Len() == Cap().
	IsFull() bool
}
