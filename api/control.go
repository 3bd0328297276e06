// File: api/control.go
// Package api defines the Control interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control exposes runtime counters and debug probes of a shell session.
type Control interface {
	// Inc adds delta to the named counter.
	Inc(name string, delta int64)
	// Stats returns a snapshot of every counter.
	Stats() map[string]int64
	// RegisterDebugProbe adds a named state probe.
	RegisterDebugProbe(name string, fn func() any)
	// DumpState evaluates every probe.
	DumpState() map[string]any
}
