// File: shell/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package shell

import (
	"go.uber.org/zap"

	"github.com/momentics/nshring/api"
)

// Option customizes shell initialization.
type Option func(*Shell)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) {
		s.log = l
	}
}

// WithPrompt sets the interactive prompt.
func WithPrompt(p string) Option {
	return func(s *Shell) {
		s.SetPrompt(p)
	}
}

// WithLineSize caps the length of an input line in bytes.
func WithLineSize(n int) Option {
	return func(s *Shell) {
		if n > 0 {
			s.lineSize = n
		}
	}
}

// WithControl sets the counter and probe sink.
func WithControl(c api.Control) Option {
	return func(s *Shell) {
		s.control = c
	}
}

// WithVersion sets the string printed by the version builtin.
func WithVersion(v string) Option {
	return func(s *Shell) {
		s.version = v
	}
}
