// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package dispatch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/nshring/api"
	"github.com/momentics/nshring/dispatch"
)

type recorder struct {
	calls []string
}

func (r *recorder) cmd(name string) dispatch.Command {
	return dispatch.Command{Name: name, Fn: func(_ context.Context, args string) error {
		r.calls = append(r.calls, name+"("+args+")")
		return nil
	}}
}

func strategies(r *recorder) map[string]api.Dispatcher {
	commands := []dispatch.Command{r.cmd("help"), r.cmd("cd"), r.cmd("ls")}
	return map[string]api.Dispatcher{
		"func":     dispatch.FuncOf(commands...),
		"tableref": dispatch.NewTableRef(commands),
		"table":    dispatch.NewTable(commands...),
	}
}

func TestStrategiesInterchangeable(t *testing.T) {
	ctx := context.Background()
	for name := range strategies(&recorder{}) {
		t.Run(name, func(t *testing.T) {
			r := &recorder{}
			d := strategies(r)[name]
			require.NoError(t, d.Dispatch(ctx, "cd", "/tmp"))
			require.NoError(t, d.Dispatch(ctx, "ls", ""))
			assert.Equal(t, []string{"cd(/tmp)", "ls()"}, r.calls)

			err := d.Dispatch(ctx, "rm", "-rf")
			assert.True(t, errors.Is(err, api.ErrCommandNotFound))
			assert.Equal(t, "rm: command not found", err.Error())

			assert.True(t, errors.Is(d.Dispatch(ctx, "", ""), api.ErrEmptyCommand))
		})
	}
}

func TestFuncClosure(t *testing.T) {
	var got [2]string
	d := dispatch.Func(func(_ context.Context, cmd, args string) error {
		got = [2]string{cmd, args}
		return nil
	})
	require.NoError(t, d.Dispatch(context.Background(), "echo", "hi"))
	assert.Equal(t, [2]string{"echo", "hi"}, got)
}

func TestTableRefSeesCallerChanges(t *testing.T) {
	r := &recorder{}
	commands := []dispatch.Command{r.cmd("a")}
	ref := dispatch.NewTableRef(commands)
	owned := dispatch.NewTable(commands...)

	commands[0] = r.cmd("b")
	ctx := context.Background()
	assert.NoError(t, ref.Dispatch(ctx, "b", ""))
	assert.True(t, errors.Is(ref.Dispatch(ctx, "a", ""), api.ErrCommandNotFound))
	assert.NoError(t, owned.Dispatch(ctx, "a", ""))
	assert.True(t, errors.Is(owned.Dispatch(ctx, "b", ""), api.ErrCommandNotFound))
}

func TestNilHandler(t *testing.T) {
	d := dispatch.NewTable(dispatch.Command{Name: "noop"})
	err := d.Dispatch(context.Background(), "noop", "")
	assert.True(t, errors.Is(err, api.ErrEmptyCommand))
}

func TestComplete(t *testing.T) {
	r := &recorder{}
	d := dispatch.NewTable(r.cmd("help"), r.cmd("history"), r.cmd("exit"), r.cmd("hello"))
	assert.Equal(t, []string{"hello", "help"}, dispatch.Complete(d, "hel"))
	assert.Equal(t, []string{"exit", "hello", "help", "history"}, dispatch.Complete(d, ""))
	assert.Empty(t, dispatch.Complete(d, "zz"))
}

func TestSplit(t *testing.T) {
	cmd, args := dispatch.Split("  cd   /tmp  x ")
	assert.Equal(t, "cd", cmd)
	assert.Equal(t, "/tmp  x", args)
	cmd, args = dispatch.Split("ls")
	assert.Equal(t, "ls", cmd)
	assert.Equal(t, "", args)
	cmd, _ = dispatch.Split("   ")
	assert.Equal(t, "", cmd)
}
