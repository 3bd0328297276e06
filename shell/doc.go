// Package shell
// Author: momentics <momentics@gmail.com>
//
// Line-oriented command shell over an api.Dispatcher and an api.History.
//
// Each input line is recorded in the history, split on ';' into commands
// queued in FIFO order, and each command is resolved against the builtins
// (help, exit, version, history, stats) before the dispatcher. "!!", "!N"
// and "!prefix" expand to earlier history entries.
//
// On an interactive Linux terminal the shell switches the terminal to raw
// mode and reads lines through golang.org/x/term: arrow keys browse the
// history ring, Tab completes command names.
package shell
