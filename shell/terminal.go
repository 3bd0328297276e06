// File: shell/terminal.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Interactive line reading on golang.org/x/term: the history ring backs the
// arrow keys and Tab completes command names.

package shell

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/momentics/nshring/api"
)

var _ term.History = historyView{}

// historyView exposes an api.History to term.Terminal. Lines are recorded
// by Execute after history expansion, so the terminal's own Add is ignored.
type historyView struct {
	h api.History
}

func (v historyView) Add(string) {}

func (v historyView) Len() int { return v.h.EntryCount() }

func (v historyView) At(idx int) string {
	entry, ok := v.h.GetEntry(idx)
	if !ok {
		panic(api.WrapError(api.ErrCodeOutOfRange, api.ErrOutOfRange).WithContext("age", idx))
	}
	return entry
}

type terminal struct {
	t      *term.Terminal
	prompt func() string
}

func (s *Shell) newTerminal(in io.Reader, out io.Writer) *terminal {
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, s.Prompt())
	t.History = historyView{h: s.history}
	t.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
		return s.completeKey(t, line, pos, key)
	}
	return &terminal{t: t, prompt: s.Prompt}
}

// ReadLine shows the current prompt and reads one edited line. Ctrl-D on
// an empty line and Ctrl-C return io.EOF.
func (r *terminal) ReadLine() (string, error) {
	r.t.SetPrompt(r.prompt())
	return r.t.ReadLine()
}

// completeKey completes the command name being typed on Tab. A single
// match replaces the line; several matches are listed above the prompt.
func (s *Shell) completeKey(w io.Writer, line string, pos int, key rune) (string, int, bool) {
	if key != '\t' || pos != len(line) || strings.ContainsAny(line, " \t") {
		return "", 0, false
	}
	matches := s.Complete(line)
	switch len(matches) {
	case 0:
		return "", 0, false
	case 1:
		completed := matches[0] + " "
		return completed, len(completed), true
	}
	fmt.Fprintln(w, strings.Join(matches, " "))
	return "", 0, false
}
