// Package api
// Author: momentics@gmail.com
//
// Command dispatch contract.

package api

import "context"

// CmdFunc executes a command with its raw argument string.
type CmdFunc func(ctx context.Context, args string) error

// Dispatcher maps a command name and its argument string to an action.
type Dispatcher interface {
	// Dispatch runs cmd. Unknown commands return an error wrapping
	// ErrCommandNotFound.
	Dispatch(ctx context.Context, cmd, args string) error
}

// CommandLister is implemented by dispatchers that can enumerate their
// commands, enabling help output and completion.
type CommandLister interface {
	Commands() []string
}
