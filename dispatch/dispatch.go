// Package dispatch
// Author: momentics <momentics@gmail.com>
//
// Interchangeable api.Dispatcher strategies: a closure, a command table
// looked up by reference, and a command table owned by the dispatcher.

package dispatch

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/momentics/nshring/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Dispatcher    = Func(nil)
	_ api.Dispatcher    = (*TableRef)(nil)
	_ api.Dispatcher    = (*Table)(nil)
	_ api.CommandLister = (*TableRef)(nil)
	_ api.CommandLister = (*Table)(nil)
)

// Command binds a name to its handler.
type Command struct {
	Name string
	Fn   api.CmdFunc
}

// NotFound returns the error reported for an unknown command.
func NotFound(cmd string) error {
	return errors.WithMessage(api.ErrCommandNotFound, cmd)
}

// Func dispatches through a closure.
type Func func(ctx context.Context, cmd, args string) error

// Dispatch implements api.Dispatcher.
func (f Func) Dispatch(ctx context.Context, cmd, args string) error {
	if cmd == "" {
		return api.ErrEmptyCommand
	}
	return f(ctx, cmd, args)
}

// FuncOf builds a closure dispatcher matching cmd against the given
// commands. The commands are captured when FuncOf is called.
func FuncOf(commands ...Command) Func {
	byName := make(map[string]api.CmdFunc, len(commands))
	for _, c := range commands {
		if _, dup := byName[c.Name]; !dup {
			byName[c.Name] = c.Fn
		}
	}
	return func(ctx context.Context, cmd, args string) error {
		fn, ok := byName[cmd]
		if !ok {
			return NotFound(cmd)
		}
		return fn(ctx, args)
	}
}

// TableRef looks commands up in a slice owned by the caller. Changes the
// caller makes to the slice elements are visible to later dispatches.
type TableRef struct {
	commands []Command
}

// NewTableRef references commands without copying them.
func NewTableRef(commands []Command) *TableRef {
	return &TableRef{commands: commands}
}

// Dispatch implements api.Dispatcher.
func (t *TableRef) Dispatch(ctx context.Context, cmd, args string) error {
	return lookup(ctx, t.commands, cmd, args)
}

// Commands implements api.CommandLister.
func (t *TableRef) Commands() []string {
	return names(t.commands)
}

// Table owns a private copy of its commands.
type Table struct {
	commands []Command
}

// NewTable copies commands into a new table.
func NewTable(commands ...Command) *Table {
	owned := make([]Command, len(commands))
	copy(owned, commands)
	return &Table{commands: owned}
}

// Dispatch implements api.Dispatcher.
func (t *Table) Dispatch(ctx context.Context, cmd, args string) error {
	return lookup(ctx, t.commands, cmd, args)
}

// Commands implements api.CommandLister.
func (t *Table) Commands() []string {
	return names(t.commands)
}

func lookup(ctx context.Context, commands []Command, cmd, args string) error {
	if cmd == "" {
		return api.ErrEmptyCommand
	}
	for _, c := range commands {
		if c.Name != cmd {
			continue
		}
		if c.Fn == nil {
			return errors.WithMessage(api.ErrEmptyCommand, cmd)
		}
		return c.Fn(ctx, args)
	}
	return NotFound(cmd)
}

func names(commands []Command) []string {
	out := make([]string, 0, len(commands))
	for _, c := range commands {
		out = append(out, c.Name)
	}
	return out
}

// Complete returns the command names starting with prefix, sorted
// lexicographically.
func Complete(l api.CommandLister, prefix string) []string {
	var out []string
	for _, name := range l.Commands() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Split separates a command line into the command name and the raw
// argument string.
func Split(line string) (cmd, args string) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}
