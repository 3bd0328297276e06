// File: cmd/nsh/commands.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Demo commands served by the dispatcher. The ring command drives a
// string ring buffer so its overwrite behavior can be tried interactively.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/momentics/nshring/dispatch"
	"github.com/momentics/nshring/ring"
	"github.com/momentics/nshring/shell"
)

type demo struct {
	buf *ring.Buffer[string]
	log *zap.Logger
}

func newDemo(capacity int, logger *zap.Logger) (*demo, error) {
	d := &demo{log: logger.Named("ring")}
	buf, err := ring.TryNew(capacity, ring.WithRelease(func(v string) {
		d.log.Debug("ring element released", zap.String("value", v))
	}))
	if err != nil {
		return nil, err
	}
	d.buf = buf
	return d, nil
}

func (d *demo) commands() []dispatch.Command {
	return []dispatch.Command{
		{Name: "echo", Fn: echo},
		{Name: "cd", Fn: cd},
		{Name: "ls", Fn: ls},
		{Name: "ring", Fn: d.ring},
	}
}

func echo(ctx context.Context, args string) error {
	_, err := fmt.Fprintln(shell.Output(ctx), args)
	return err
}

func cd(_ context.Context, args string) error {
	dir := strings.TrimSpace(args)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = home
	}
	return errors.Wrap(os.Chdir(dir), "cd")
}

func ls(ctx context.Context, args string) error {
	dir := strings.TrimSpace(args)
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	out := shell.Output(ctx)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		fmt.Fprintln(out, name)
	}
	return nil
}

// ring push|pop|show|rev|fill|drain|clear
func (d *demo) ring(ctx context.Context, args string) error {
	out := shell.Output(ctx)
	sub, rest := dispatch.Split(args)
	switch sub {
	case "push":
		for _, f := range strings.Fields(rest) {
			if d.buf.PushBack(f) {
				fmt.Fprintln(out, "overwrote oldest")
			}
		}
	case "pop":
		v, ok := d.buf.PopFront()
		if !ok {
			fmt.Fprintln(out, "empty")
			return nil
		}
		fmt.Fprintln(out, v)
	case "", "show":
		fmt.Fprintf(out, "%v (%d/%d)\n", d.buf, d.buf.Len(), d.buf.Cap())
	case "rev":
		for i, v := range d.buf.Backward() {
			fmt.Fprintf(out, "%d %s\n", i, v)
		}
	case "fill":
		d.buf.FillWith(func() string { return rest })
	case "drain":
		for v := range d.buf.Drain() {
			fmt.Fprintln(out, v)
		}
	case "clear":
		d.buf.Clear()
	default:
		return errors.Errorf("unknown subcommand %q", sub)
	}
	return nil
}
