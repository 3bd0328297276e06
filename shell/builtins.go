// File: shell/builtins.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Commands every shell provides regardless of its dispatcher.

package shell

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type builtin func(ctx context.Context, s *Shell, out io.Writer, args string) error

func builtins() map[string]builtin {
	return map[string]builtin{
		"help":    cmdHelp,
		"exit":    cmdExit,
		"version": cmdVersion,
		"history": cmdHistory,
		"stats":   cmdStats,
	}
}

// cmdHelp lists the commands, optionally only those starting with args,
// in columns fitted to the terminal width.
func cmdHelp(_ context.Context, s *Shell, out io.Writer, args string) error {
	list := s.Complete(strings.TrimSpace(args))
	if len(list) == 0 {
		return nil
	}
	widest := 0
	for _, name := range list {
		widest = max(widest, len(name))
	}
	colWidth := widest + 2
	perRow := max(1, s.width/colWidth)
	for i, name := range list {
		if (i+1)%perRow == 0 || i == len(list)-1 {
			fmt.Fprintln(out, name)
			continue
		}
		fmt.Fprintf(out, "%-*s", colWidth, name)
	}
	return nil
}

func cmdExit(_ context.Context, _ *Shell, out io.Writer, _ string) error {
	fmt.Fprintln(out, "exit")
	return ErrQuit
}

func cmdVersion(_ context.Context, s *Shell, out io.Writer, _ string) error {
	fmt.Fprintf(out, "nsh version %s\n", s.version)
	return nil
}

// cmdHistory prints entries most recent first with their age; "-c" clears
// the history.
func cmdHistory(_ context.Context, s *Shell, out io.Writer, args string) error {
	if strings.TrimSpace(args) == "-c" {
		s.history.Reset()
		return nil
	}
	for age := 0; age < s.history.EntryCount(); age++ {
		entry, ok := s.history.GetEntry(age)
		if !ok {
			break
		}
		fmt.Fprintf(out, "%4d  %s\n", age, entry)
	}
	return nil
}

func cmdStats(_ context.Context, s *Shell, out io.Writer, _ string) error {
	stats := s.control.Stats()
	for _, k := range sortedKeys(stats) {
		fmt.Fprintf(out, "%-24s %d\n", k, stats[k])
	}
	state := s.control.DumpState()
	for _, k := range sortedKeys(state) {
		fmt.Fprintf(out, "%-24s %v\n", k, state[k])
	}
	return nil
}
