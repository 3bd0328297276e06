// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffer with overwrite-oldest eviction.
//
// A Buffer owns every element pushed into it. PopFront and Drain hand
// ownership back to the caller; elements that leave any other way (eviction,
// Clear, FillWith, Close, an abandoned Drain) go through the release hook
// installed with WithRelease, exactly once.
//
// Iteration uses range-over-func sequences:
//   - All, Values, Backward borrow elements
//   - AllPtr, BackwardPtr yield pointers to the cells
//   - Drain pops as it yields
//   - Consume moves the storage into a Consumer
//
// Mutating a buffer while one of its borrowing iterators is running panics
// with api.ErrConcurrentModification.
package ring
