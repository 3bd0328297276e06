// File: api/debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Debug is a registry of named state probes. Probes are evaluated on
// demand, e.g. by the shell's stats builtin.
type Debug interface {
	// RegisterProbe adds or replaces the probe called name.
	RegisterProbe(name string, fn func() any)
	// DumpState evaluates every probe.
	DumpState() map[string]any
}
