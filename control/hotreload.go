// control/hotreload.go
// Runs reload hooks when the config file changes on disk.
// Trigger invokes the hooks synchronously for deterministic tests.

package control

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Reloader holds hooks notified with every valid configuration change.
type Reloader struct {
	mu    sync.Mutex
	hooks []func(Config)
}

// NewReloader creates a reloader without hooks.
func NewReloader() *Reloader {
	return &Reloader{}
}

// RegisterReloadHook adds a new component reload listener.
func (r *Reloader) RegisterReloadHook(fn func(Config)) {
	r.mu.Lock()
	r.hooks = append(r.hooks, fn)
	r.mu.Unlock()
}

// Trigger invokes all hooks with c, in registration order.
func (r *Reloader) Trigger(c Config) {
	r.mu.Lock()
	hooks := append([]func(Config){}, r.hooks...)
	r.mu.Unlock()
	for _, fn := range hooks {
		fn(c)
	}
}

// Watch re-reads the config file v was loaded from whenever it changes and
// triggers the hooks. Changes that fail to decode or validate go to onError
// and are otherwise ignored. Watch does nothing when v was not loaded from
// a file.
func (r *Reloader) Watch(v *viper.Viper, onError func(error)) bool {
	if v.ConfigFileUsed() == "" {
		return false
	}
	v.OnConfigChange(func(fsnotify.Event) {
		c, err := decode(v)
		if err != nil {
			onError(err)
			return
		}
		r.Trigger(c)
	})
	v.WatchConfig()
	return true
}
