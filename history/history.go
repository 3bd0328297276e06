// Package history
// Author: momentics <momentics@gmail.com>
//
// Command history ring: a fixed number of fixed-size entries with
// oldest-eviction, layered on ring.Buffer.

package history

import (
	"iter"

	"github.com/momentics/nshring/api"
	"github.com/momentics/nshring/fixedstr"
	"github.com/momentics/nshring/ring"
)

// Ensure compile-time interface compliance.
var _ api.History = (*Ring)(nil)

// Ring stores up to Cap() entries of at most EntrySize() bytes each. All
// entry bytes live in one arena allocated by New.
type Ring struct {
	entries   *ring.Buffer[fixedstr.String]
	arena     []byte
	entrySize int
}

// New allocates a history of n entries of entrySize bytes.
// It panics if either size is not positive.
func New(n, entrySize int) *Ring {
	h, err := TryNew(n, entrySize)
	if err != nil {
		panic(err)
	}
	return h
}

// TryNew is New for sizes that come from configuration.
func TryNew(n, entrySize int) (*Ring, error) {
	if entrySize <= 0 {
		return nil, api.WrapError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument).
			WithContext("entry_size", entrySize)
	}
	entries, err := ring.TryNew[fixedstr.String](n)
	if err != nil {
		return nil, err
	}
	return &Ring{
		entries:   entries,
		arena:     make([]byte, n*entrySize),
		entrySize: entrySize,
	}, nil
}

// Reset forgets every entry. Arena bytes are not touched.
func (h *Ring) Reset() { h.entries.Clear() }

// EntryCount returns the number of stored entries.
func (h *Ring) EntryCount() int { return h.entries.Len() }

// IsFull reports whether the next push evicts the oldest entry.
func (h *Ring) IsFull() bool { return h.entries.IsFull() }

// IsEmpty reports whether no entry is stored.
func (h *Ring) IsEmpty() bool { return h.entries.IsEmpty() }

// Cap returns the maximum number of entries.
func (h *Ring) Cap() int { return h.entries.Cap() }

// EntrySize returns the maximum entry length in bytes.
func (h *Ring) EntrySize() int { return h.entrySize }

// Footprint returns the arena size in bytes.
func (h *Ring) Footprint() int { return len(h.arena) }

// PushEntry copies entry into the history, truncated to EntrySize bytes.
func (h *Ring) PushEntry(entry string) {
	var slot fixedstr.String
	if h.entries.IsFull() {
		// the evicted entry's arena slab is reused for the new one
		slot, _ = h.entries.PopFront()
	} else {
		// until the first eviction after a reset, live entries occupy
		// slabs [0, Len) in push order
		i := h.entries.Len()
		slot = fixedstr.Wrap(h.arena[i*h.entrySize : (i+1)*h.entrySize])
	}
	slot.Set(entry)
	h.entries.PushBack(slot)
}

// GetEntry returns the entry pushed age pushes before the most recent one.
func (h *Ring) GetEntry(age int) (string, bool) {
	if age < 0 {
		return "", false
	}
	s, ok := h.entries.Get(h.entries.Len() - 1 - age)
	if !ok {
		return "", false
	}
	return s.String(), true
}

// Entries yields (age, entry) pairs, most recent first.
func (h *Ring) Entries() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		last := h.entries.Len() - 1
		for i, s := range h.entries.Backward() {
			if !yield(last-i, s.String()) {
				return
			}
		}
	}
}
