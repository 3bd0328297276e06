// Package control
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control over control primitives.

package control

import "github.com/momentics/nshring/api"

var _ api.Control = (*Adapter)(nil)

// Adapter combines a metrics registry and a probe set.
type Adapter struct {
	metrics *MetricsRegistry
	debug   api.Debug
}

// NewAdapter returns an adapter over a fresh DebugProbes with runtime
// probes registered.
func NewAdapter() *Adapter {
	dp := NewDebugProbes()
	RegisterRuntimeProbes(dp)
	return NewAdapterWithDebug(dp)
}

// NewAdapterWithDebug returns an adapter whose probes live in debug.
func NewAdapterWithDebug(debug api.Debug) *Adapter {
	return &Adapter{
		metrics: NewMetricsRegistry(),
		debug:   debug,
	}
}

// Inc implements api.Control.
func (a *Adapter) Inc(name string, delta int64) { a.metrics.Inc(name, delta) }

// Stats implements api.Control.
func (a *Adapter) Stats() map[string]int64 { return a.metrics.GetSnapshot() }

// RegisterDebugProbe implements api.Control.
func (a *Adapter) RegisterDebugProbe(name string, fn func() any) { a.debug.RegisterProbe(name, fn) }

// DumpState implements api.Control.
func (a *Adapter) DumpState() map[string]any { return a.debug.DumpState() }
