// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAppendTake(t *testing.T) {
	s := New[int](3)
	for i := 1; i <= 3; i++ {
		*s.Append() = i
	}
	require.True(t, s.Full())
	assert.Equal(t, 1, s.Take())
	assert.Equal(t, 2, s.Len())
	*s.Append() = 4
	assert.Equal(t, Cursors{Read: 1, Write: 4}, s.Cursors())

	a, b := s.Runs()
	assert.Equal(t, []int{2, 3}, a)
	assert.Equal(t, []int{4}, b)
}

func TestStoreTakeZeroesCell(t *testing.T) {
	s := New[*int](2)
	v := 7
	*s.Append() = &v
	require.Equal(t, &v, s.Take())
	assert.Nil(t, s.cells[0])
}

func TestStoreGuards(t *testing.T) {
	s := New[int](1)
	assert.Panics(t, func() { s.Take() })
	assert.Panics(t, func() { s.Ptr(0) })
	*s.Append() = 1
	assert.Panics(t, func() { s.Append() })
	assert.Panics(t, func() { s.Rewind() })
	assert.Panics(t, func() { New[int](0) })
}

func TestStoreRunsSingle(t *testing.T) {
	s := New[int](4)
	a, b := s.Runs()
	assert.Nil(t, a)
	assert.Nil(t, b)
	*s.Append() = 1
	*s.Append() = 2
	a, b = s.Runs()
	assert.Equal(t, []int{1, 2}, a)
	assert.Nil(t, b)
}

func TestStoreMove(t *testing.T) {
	s := New[int](2)
	*s.Append() = 5
	m := s.Move()
	assert.False(t, s.Valid())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 5, *m.Ptr(0))
}

func TestStoreModsSurviveRewind(t *testing.T) {
	s := New[int](2)
	*s.Append() = 1
	*s.Append() = 2
	cur, mods := s.Cursors(), s.Mods()

	s.Take()
	s.Take()
	s.Rewind()
	*s.Append() = 3
	*s.Append() = 4
	assert.Equal(t, cur, s.Cursors())
	assert.NotEqual(t, mods, s.Mods())

	mods = s.Mods()
	s.Ptr(0)
	s.Runs()
	assert.Equal(t, mods, s.Mods())
}
