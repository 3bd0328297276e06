// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/nshring/history"
)

func TestNavigatorEmpty(t *testing.T) {
	n := history.NewNavigator(history.New(2, 8))
	_, ok := n.Previous()
	assert.False(t, ok)
	_, ok = n.Next()
	assert.False(t, ok)
	assert.Equal(t, -1, n.Age())
}

func TestNavigatorClamps(t *testing.T) {
	h := history.New(4, 8)
	h.PushEntry("first")
	h.PushEntry("second")
	n := history.NewNavigator(h)

	s, ok := n.Previous()
	assert.True(t, ok)
	assert.Equal(t, "second", s)
	s, _ = n.Previous()
	assert.Equal(t, "first", s)
	s, _ = n.Previous()
	assert.Equal(t, "first", s)
	assert.Equal(t, 1, n.Age())

	s, ok = n.Next()
	assert.True(t, ok)
	assert.Equal(t, "second", s)
	s, ok = n.Next()
	assert.True(t, ok)
	assert.Equal(t, "", s)
	_, ok = n.Next()
	assert.False(t, ok)

	n.Previous()
	n.Reset()
	assert.Equal(t, -1, n.Age())
}

func TestNavigatorAfterHistoryReset(t *testing.T) {
	h := history.New(4, 8)
	h.PushEntry("a")
	h.PushEntry("b")
	h.PushEntry("c")
	n := history.NewNavigator(h)
	n.Previous()
	n.Previous()
	n.Previous()
	h.Reset()
	s, ok := n.Next()
	assert.True(t, ok)
	assert.Equal(t, "", s)
	assert.Equal(t, -1, n.Age())
}
