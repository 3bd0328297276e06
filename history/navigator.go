// Package history
// Author: momentics <momentics@gmail.com>
//
// Arrow-key browsing over a History.

package history

import "github.com/momentics/nshring/api"

// Navigator walks a History from the most recent entry backwards and
// forwards again, the way up/down arrows do on a prompt.
type Navigator struct {
	h   api.History
	age int
}

// NewNavigator returns a navigator positioned on the blank input line.
func NewNavigator(h api.History) *Navigator {
	return &Navigator{h: h, age: -1}
}

// Age returns the age of the displayed entry, -1 for the blank line.
func (n *Navigator) Age() int { return n.age }

// Reset moves back to the blank input line.
func (n *Navigator) Reset() { n.age = -1 }

// Previous moves to the next older entry, stopping at the oldest one.
// It returns false when the history is empty.
func (n *Navigator) Previous() (string, bool) {
	count := n.h.EntryCount()
	if count == 0 {
		return "", false
	}
	n.age++
	if n.age >= count {
		n.age = count - 1
	}
	return n.h.GetEntry(n.age)
}

// Next moves to the next newer entry. Moving past the most recent entry
// returns the blank line. It returns false when already on the blank line.
func (n *Navigator) Next() (string, bool) {
	if n.age < 0 {
		return "", false
	}
	n.age--
	if n.age < 0 {
		return "", true
	}
	if s, ok := n.h.GetEntry(n.age); ok {
		return s, true
	}
	// history was reset underneath us
	n.age = -1
	return "", true
}
