// Package control
// Author: momentics <momentics@gmail.com>
//
// Shell configuration, runtime counters and debug introspection.
//
// Provides:
//   - Config: viper-backed settings with defaults, yaml file and NSH_ env
//   - MetricsRegistry: concurrent-safe named counters
//   - DebugProbes: named state probes evaluated on demand
//   - Adapter: api.Control over a registry and a probe set
//   - Reloader: hooks run when the config file changes
package control
