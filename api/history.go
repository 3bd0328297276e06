// Package api
// Author: momentics@gmail.com
//
// Command history contract consumed by the shell.

package api

// History is an append-only record of entered command lines with
// oldest-eviction once full.
type History interface {
	// Reset forgets every entry.
	Reset()
	// EntryCount returns the number of stored entries.
	EntryCount() int
	// IsFull reports whether the next push evicts the oldest entry.
	IsFull() bool
	// IsEmpty reports whether no entry is stored.
	IsEmpty() bool
	// PushEntry records a command line.
	PushEntry(entry string)
	// GetEntry returns the entry pushed age pushes before the most recent
	// one; age 0 is the most recent.
	GetEntry(age int) (string, bool)
}
