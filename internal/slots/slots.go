// File: internal/slots/slots.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed cell storage addressed through unbounded cursors.

package slots

// Cursors holds the unbounded read/write positions of a ring.
// Positions are reduced modulo capacity only when a cell is addressed.
type Cursors struct {
	Read  uint64
	Write uint64
}

// Len returns the number of live cells between the cursors.
func (c Cursors) Len() int {
	return int(c.Write - c.Read)
}

// Store is a fixed array of cells. A cell is live iff its position lies in
// [Read, Write); every other cell holds the zero value of T.
//
// Store never hands out a cell outside the live window: every accessor takes
// a logical offset or advances a cursor, and panics on violation.
type Store[T any] struct {
	cells []T
	cur   Cursors
	mods  uint64
}

// New allocates n cells. n must be positive.
func New[T any](n int) Store[T] {
	if n <= 0 {
		panic("slots: capacity must be positive")
	}
	return Store[T]{cells: make([]T, n)}
}

// Valid reports whether storage has been allocated.
func (s *Store[T]) Valid() bool { return len(s.cells) != 0 }

// Cap returns the number of cells.
func (s *Store[T]) Cap() int { return len(s.cells) }

// Len returns the number of live cells.
func (s *Store[T]) Len() int { return s.cur.Len() }

// Full reports whether every cell is live.
func (s *Store[T]) Full() bool { return s.cur.Len() == len(s.cells) }

// Cursors returns a snapshot of the cursors.
func (s *Store[T]) Cursors() Cursors { return s.cur }

// Mods counts the structural changes made so far. Append, Take and Rewind
// each bump it, so two equal readings bracket an unchanged live window even
// when the cursors were rewound and moved back to the same positions.
func (s *Store[T]) Mods() uint64 { return s.mods }

func (s *Store[T]) index(pos uint64) int {
	return int(pos % uint64(len(s.cells)))
}

// Ptr returns the live cell at logical offset i.
func (s *Store[T]) Ptr(i int) *T {
	if i < 0 || i >= s.cur.Len() {
		panic("slots: offset outside live window")
	}
	return &s.cells[s.index(s.cur.Read+uint64(i))]
}

// Append makes the next cell live and returns it. The cell holds the zero
// value of T. Store must not be full.
func (s *Store[T]) Append() *T {
	if s.Full() {
		panic("slots: append to full store")
	}
	p := &s.cells[s.index(s.cur.Write)]
	s.cur.Write++
	s.mods++
	return p
}

// Take removes the oldest live cell and returns its value. The cell is
// zeroed. Store must not be empty.
func (s *Store[T]) Take() T {
	if s.cur.Len() == 0 {
		panic("slots: take from empty store")
	}
	i := s.index(s.cur.Read)
	v := s.cells[i]
	var zero T
	s.cells[i] = zero
	s.cur.Read++
	s.mods++
	return v
}

// Rewind resets both cursors to zero. Store must be empty.
func (s *Store[T]) Rewind() {
	if s.cur.Len() != 0 {
		panic("slots: rewind with live cells")
	}
	s.cur = Cursors{}
	s.mods++
}

// Runs returns the live cells as one or two contiguous runs, oldest first.
// b is nil unless the window wraps past the last cell.
func (s *Store[T]) Runs() (a, b []T) {
	n := s.cur.Len()
	if n == 0 {
		return nil, nil
	}
	start := s.index(s.cur.Read)
	end := start + n
	if end <= len(s.cells) {
		return s.cells[start:end:end], nil
	}
	return s.cells[start:], s.cells[: end-len(s.cells) : end-len(s.cells)]
}

// Move transfers the storage to the returned Store and leaves s without
// storage.
func (s *Store[T]) Move() Store[T] {
	out := *s
	*s = Store[T]{}
	return out
}
