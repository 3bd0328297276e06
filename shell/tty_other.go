//go:build !linux
// +build !linux

// shell/tty_other.go
// Author: momentics <momentics@gmail.com>
//
// Raw mode is only implemented on Linux; other platforms read plain lines.

package shell

import "github.com/momentics/nshring/api"

const defaultWidth = 80

func enterRaw(int) (func() error, error) {
	return nil, api.NewError(api.ErrCodeInternal, "raw terminal mode not supported on this platform")
}

func termWidth(int) int {
	return defaultWidth
}
