// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ring_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/nshring/api"
	"github.com/momentics/nshring/ring"
)

// wrapped returns a capacity 4 buffer holding 3..6 with a wrapped window.
func wrapped() *ring.Buffer[int] {
	rb := ring.New[int](4)
	for i := 1; i <= 6; i++ {
		rb.PushBack(i)
	}
	return rb
}

func TestAllYieldsLenElements(t *testing.T) {
	rb := wrapped()
	var idx, vals []int
	for i, v := range rb.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
	assert.Equal(t, []int{3, 4, 5, 6}, vals)

	// restartable
	assert.Equal(t, vals, slices.Collect(rb.Values()))
	assert.Empty(t, slices.Collect(ring.New[int](2).Values()))
}

func TestAllEarlyBreak(t *testing.T) {
	rb := wrapped()
	var got []int
	for v := range rb.Values() {
		got = append(got, v)
		if v == 4 {
			break
		}
	}
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, 4, rb.Len())
}

func TestBackward(t *testing.T) {
	rb := wrapped()
	var idx, vals []int
	for i, v := range rb.Backward() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{3, 2, 1, 0}, idx)
	assert.Equal(t, []int{6, 5, 4, 3}, vals)
}

func TestAllPtrMutates(t *testing.T) {
	rb := wrapped()
	seen := map[*int]bool{}
	for _, p := range rb.AllPtr() {
		require.False(t, seen[p], "pointer yielded twice")
		seen[p] = true
		*p *= 10
	}
	assert.Equal(t, []int{30, 40, 50, 60}, rb.ToSlice())

	var order []int
	for i, p := range rb.BackwardPtr() {
		order = append(order, i)
		*p++
	}
	assert.Equal(t, []int{3, 2, 1, 0}, order)
	assert.Equal(t, []int{31, 41, 51, 61}, rb.ToSlice())
}

func TestDrainToCompletion(t *testing.T) {
	rb := wrapped()
	got := slices.Collect(rb.Drain())
	assert.Equal(t, []int{3, 4, 5, 6}, got)
	assert.Equal(t, 0, rb.Len())

	first, second := rb.Views()
	assert.Nil(t, first)
	assert.Nil(t, second)
}

func TestDrainAbandoned(t *testing.T) {
	var released []int
	rb := ring.New[int](4, ring.WithRelease(func(v int) { released = append(released, v) }))
	for i := 1; i <= 4; i++ {
		rb.PushBack(i)
	}
	for v := range rb.Drain() {
		if v == 2 {
			break
		}
	}
	assert.True(t, rb.IsEmpty())
	assert.Equal(t, []int{3, 4}, released)
}

func TestDrainPanicEmptiesBuffer(t *testing.T) {
	var released []int
	rb := ring.New[int](3, ring.WithRelease(func(v int) { released = append(released, v) }))
	rb.PushBack(1)
	rb.PushBack(2)
	rb.PushBack(3)
	assert.Panics(t, func() {
		for range rb.Drain() {
			panic("boom")
		}
	})
	assert.True(t, rb.IsEmpty())
	assert.Equal(t, []int{2, 3}, released)
}

func TestConsume(t *testing.T) {
	rb := wrapped()
	c := rb.Consume()
	assert.Equal(t, 4, c.Len())

	assert.Equal(t, 0, rb.Len())
	assert.Equal(t, 0, rb.Cap())
	assert.PanicsWithValue(t, api.ErrZeroCapacity, func() { rb.PushBack(1) })
	assert.PanicsWithValue(t, api.ErrZeroCapacity, func() { rb.FillWith(func() int { return 0 }) })

	v, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{4, 5, 6}, slices.Collect(c.All()))
	_, ok = c.Next()
	assert.False(t, ok)
}

func TestConsumerClose(t *testing.T) {
	released := 0
	rb := ring.New[int](2, ring.WithRelease(func(int) { released++ }))
	rb.PushBack(1)
	rb.PushBack(2)
	c := rb.Consume()
	c.Close()
	assert.Equal(t, 2, released)
	assert.Equal(t, 0, c.Len())
}

func TestMutationDuringIterationPanics(t *testing.T) {
	rb := wrapped()
	assert.PanicsWithValue(t, api.ErrConcurrentModification, func() {
		for range rb.All() {
			rb.PopFront()
		}
	})

	rb = wrapped()
	assert.PanicsWithValue(t, api.ErrConcurrentModification, func() {
		for range rb.Backward() {
			rb.PushBack(7)
		}
	})

	rb = wrapped()
	assert.PanicsWithValue(t, api.ErrConcurrentModification, func() {
		for range rb.AllPtr() {
			rb.Clear()
		}
	})

	// refilled buffers end on the cursors the iterator started from
	rb = ring.FromSlice([]int{1, 2, 3})
	assert.PanicsWithValue(t, api.ErrConcurrentModification, func() {
		for range rb.All() {
			rb.FillWith(func() int { return 0 })
		}
	})

	rb = ring.FromSlice([]int{1, 2})
	var seen []int
	assert.PanicsWithValue(t, api.ErrConcurrentModification, func() {
		for _, v := range rb.Backward() {
			seen = append(seen, v)
			rb.Clear()
			rb.PushBack(9)
			rb.PushBack(8)
		}
	})
	assert.Equal(t, []int{2}, seen)

	rb = ring.FromSlice([]int{1, 2})
	assert.PanicsWithValue(t, api.ErrConcurrentModification, func() {
		for range rb.BackwardPtr() {
			rb.PopFront()
			rb.PushBack(3)
			rb.Clear()
			rb.PushBack(1)
			rb.PushBack(2)
		}
	})

	rb = wrapped()
	assert.PanicsWithValue(t, api.ErrConcurrentModification, func() {
		for range rb.Drain() {
			rb.PushBack(1)
		}
	})
	assert.True(t, rb.IsEmpty())
}
