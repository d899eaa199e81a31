package testutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/specialistvlad/pyship/internal/shell"
)

// Responder produces the outcome of a faked command.
type Responder func(cmd shell.Command) (shell.Result, error)

type rule struct {
	contains string
	respond  Responder
}

// FakeShell is a recording shell.Commander. Commands are matched against
// rules by substring of their rendered command line; the first match wins
// and unmatched commands succeed.
type FakeShell struct {
	mu    sync.Mutex
	calls []shell.Command
	rules []rule
	paths map[string]string
}

// NewFakeShell creates an empty fake with nothing on the search path.
func NewFakeShell() *FakeShell {
	return &FakeShell{paths: make(map[string]string)}
}

// OnPath makes name resolvable to path.
func (f *FakeShell) OnPath(name, path string) *FakeShell {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths[name] = path
	return f
}

// On registers a responder for commands whose line contains substr.
func (f *FakeShell) On(substr string, respond Responder) *FakeShell {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = append(f.rules, rule{contains: substr, respond: respond})
	return f
}

// Run implements shell.Commander.
func (f *FakeShell) Run(ctx context.Context, cmd shell.Command) (shell.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	rules := append([]rule(nil), f.rules...)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return shell.Result{}, err
	}
	line := cmd.String()
	for _, r := range rules {
		if strings.Contains(line, r.contains) {
			return r.respond(cmd)
		}
	}
	return shell.Result{}, nil
}

// LookPath implements shell.Commander.
func (f *FakeShell) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.paths[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %s", shell.ErrNotFound, name)
}

// Calls returns the recorded commands.
func (f *FakeShell) Calls() []shell.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]shell.Command(nil), f.calls...)
}

// Lines returns the recorded commands rendered as command lines.
func (f *FakeShell) Lines() []string {
	calls := f.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}

// Ran reports whether any recorded command line contains substr.
func (f *FakeShell) Ran(substr string) bool {
	for _, l := range f.Lines() {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// Exit responds with the given exit code.
func Exit(code int) Responder {
	return func(shell.Command) (shell.Result, error) {
		return shell.Result{ExitCode: code}, nil
	}
}

// Fail responds with a start error.
func Fail(err error) Responder {
	return func(shell.Command) (shell.Result, error) {
		return shell.Result{}, err
	}
}

// Print writes text to the command's stdout and succeeds.
func Print(text string) Responder {
	return func(cmd shell.Command) (shell.Result, error) {
		if cmd.Stdout != nil {
			_, _ = io.WriteString(cmd.Stdout, text)
		}
		return shell.Result{}, nil
	}
}

// Touch creates the given files (and their directories) and succeeds, the
// way a real tool would leave its outputs behind.
func Touch(paths ...string) Responder {
	return func(shell.Command) (shell.Result, error) {
		for _, p := range paths {
			if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
				return shell.Result{}, err
			}
			if err := os.WriteFile(p, nil, 0o644); err != nil {
				return shell.Result{}, err
			}
		}
		return shell.Result{}, nil
	}
}
