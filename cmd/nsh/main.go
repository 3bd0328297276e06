// Command nsh runs the interactive command shell.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"os"
)

var (
	// Version is set at build time with -ldflags "-X main.Version=...".
	Version = "0.1.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
