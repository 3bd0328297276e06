// File: shell/shell.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/eapache/queue"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/momentics/nshring/api"
	"github.com/momentics/nshring/control"
	"github.com/momentics/nshring/dispatch"
	"github.com/momentics/nshring/fixedstr"
)

// ErrQuit is returned by Execute when a command asked the shell to stop.
var ErrQuit = errors.New("quit")

// DefaultLineSize is the input line cap used when none is configured.
const DefaultLineSize = 128

// Shell runs command lines against a dispatcher and records them in a
// history. A Shell serves one session at a time.
type Shell struct {
	dispatcher api.Dispatcher
	history    api.History
	control    api.Control
	log        *zap.Logger
	prompt     atomic.Pointer[string]
	lineSize   int
	version    string
	width      int
	builtins   map[string]builtin
	pending    *queue.Queue
}

// New builds a shell. d handles every command that is not a builtin.
func New(d api.Dispatcher, h api.History, opts ...Option) *Shell {
	s := &Shell{
		dispatcher: d,
		history:    h,
		log:        zap.NewNop(),
		lineSize:   DefaultLineSize,
		version:    "dev",
		width:      defaultWidth,
		builtins:   builtins(),
		pending:    queue.New(),
	}
	s.SetPrompt("nsh> ")
	for _, opt := range opts {
		opt(s)
	}
	if s.control == nil {
		s.control = control.NewAdapter()
	}
	s.registerProbes()
	return s
}

// Prompt returns the interactive prompt.
func (s *Shell) Prompt() string { return *s.prompt.Load() }

// SetPrompt replaces the prompt; an interactive session shows it from the next
// line on. It is safe to call while Run is active.
func (s *Shell) SetPrompt(p string) { s.prompt.Store(&p) }

func (s *Shell) registerProbes() {
	h := s.history
	s.control.RegisterDebugProbe("history.entries", func() any { return h.EntryCount() })
	if sized, ok := h.(interface{ Cap() int }); ok {
		s.control.RegisterDebugProbe("history.capacity", func() any { return sized.Cap() })
	}
	if arena, ok := h.(interface{ Footprint() int }); ok {
		s.control.RegisterDebugProbe("history.footprint", func() any {
			return humanize.Bytes(uint64(arena.Footprint()))
		})
	}
}

// Run reads command lines from in until EOF, the exit builtin, or ctx is
// done; ctx is checked between lines. When in is a terminal that supports
// raw mode, lines are read through an x/term Terminal and the prompt is shown.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		restore, err := enterRaw(fd)
		if err == nil {
			defer func() {
				if rerr := restore(); rerr != nil {
					s.log.Warn("failed to restore terminal", zap.Error(rerr))
				}
			}()
			s.width = termWidth(fd)
			return s.loop(ctx, s.newTerminal(in, out), out)
		}
		s.log.Debug("raw mode unavailable, reading plain lines", zap.Error(err))
	}
	return s.loop(ctx, &plainReader{in: bufio.NewReader(in)}, out)
}

type lineReader interface {
	ReadLine() (string, error)
}

type plainReader struct {
	in *bufio.Reader
}

func (r *plainReader) ReadLine() (string, error) {
	line, err := r.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

func (s *Shell) loop(ctx context.Context, r lineReader, out io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := r.ReadLine()
		if line != "" {
			if xerr := s.Execute(ctx, line, out); errors.Is(xerr, ErrQuit) {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.Wrap(err, "failed to read input")
		}
	}
}

// Execute runs one command line. Command failures are reported on out and
// counted; the returned error is ErrQuit after the exit builtin, or the
// history expansion error for an unknown "!" event.
func (s *Shell) Execute(ctx context.Context, line string, out io.Writer) error {
	text := strings.TrimSpace(line)
	if text == "" {
		return nil
	}
	s.control.Inc(control.MetricLines, 1)

	if strings.HasPrefix(text, "!") && len(text) > 1 {
		expanded, err := s.expand(text)
		if err != nil {
			fmt.Fprintf(out, "%s: event not found\n", text)
			return err
		}
		fmt.Fprintln(out, expanded)
		text = expanded
	}
	if len(text) > s.lineSize {
		s.log.Warn("input line truncated", zap.Int("limit", s.lineSize), zap.Int("length", len(text)))
		text = fixedstr.From(s.lineSize, text).String()
	}
	s.record(text)

	for _, seg := range strings.Split(text, ";") {
		if seg = strings.TrimSpace(seg); seg != "" {
			s.pending.Add(seg)
		}
	}
	quit := false
	for s.pending.Length() > 0 {
		seg := s.pending.Remove().(string)
		if quit {
			continue
		}
		if err := s.run(ctx, seg, out); errors.Is(err, ErrQuit) {
			quit = true
		}
	}
	if quit {
		return ErrQuit
	}
	return nil
}

func (s *Shell) record(text string) {
	if s.history.IsFull() {
		s.control.Inc(control.MetricHistoryEvicted, 1)
	}
	s.history.PushEntry(text)
	s.control.Inc(control.MetricHistoryPushes, 1)
}

// expand resolves "!!", "!N" and "!prefix" against the history.
func (s *Shell) expand(text string) (string, error) {
	event := text[1:]
	if event == "!" {
		event = "0"
	}
	if age, err := strconv.Atoi(event); err == nil {
		if entry, ok := s.history.GetEntry(age); ok {
			return entry, nil
		}
		return "", errors.WithMessage(api.ErrHistoryEntryUnavailable, text)
	}
	for age := 0; age < s.history.EntryCount(); age++ {
		entry, _ := s.history.GetEntry(age)
		if strings.HasPrefix(entry, event) {
			return entry, nil
		}
	}
	return "", errors.WithMessage(api.ErrHistoryEntryUnavailable, text)
}

func (s *Shell) run(ctx context.Context, seg string, out io.Writer) error {
	cmd, args := dispatch.Split(seg)
	s.control.Inc(control.MetricCommands, 1)
	s.log.Debug("dispatching command", zap.String("cmd", cmd), zap.String("args", args))

	var err error
	if b, ok := s.builtins[cmd]; ok {
		err = b(ctx, s, out, args)
	} else {
		err = s.dispatcher.Dispatch(WithOutput(ctx, out), cmd, args)
	}
	switch {
	case err == nil, errors.Is(err, ErrQuit):
	case errors.Is(err, api.ErrCommandNotFound):
		s.control.Inc(control.MetricUnknownCommands, 1)
		fmt.Fprintf(out, "command not found: %s\n", cmd)
	default:
		s.control.Inc(control.MetricCommandErrors, 1)
		s.log.Warn("command failed", zap.String("cmd", cmd), zap.Error(err))
		fmt.Fprintf(out, "%s: %v\n", cmd, err)
	}
	return err
}

// Complete returns builtin and dispatcher command names starting with
// prefix, sorted.
func (s *Shell) Complete(prefix string) []string {
	seen := make(map[string]struct{}, len(s.builtins))
	var all names
	for name := range s.builtins {
		seen[name] = struct{}{}
		all = append(all, name)
	}
	if l, ok := s.dispatcher.(api.CommandLister); ok {
		for _, name := range l.Commands() {
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				all = append(all, name)
			}
		}
	}
	return dispatch.Complete(all, prefix)
}

type names []string

func (n names) Commands() []string { return n }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
