// File: ring/equal.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

// Equal reports whether x and y hold equal elements in the same logical
// order. Capacity and physical layout are ignored.
func Equal[T comparable](x, y *Buffer[T]) bool {
	return EqualFunc(x, y, func(a, b T) bool { return a == b })
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, U any](x *Buffer[T], y *Buffer[U], eq func(T, U) bool) bool {
	n := x.store.Len()
	if n != y.store.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if !eq(*x.store.Ptr(i), *y.store.Ptr(i)) {
			return false
		}
	}
	return true
}
