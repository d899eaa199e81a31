// Package console writes operator-facing text: progress lines, "ERROR:"
// diagnostics with their remediation, completion banners, and the
// "press any key" pause that ends every workflow. Structured diagnostics go
// through slog instead.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// PausePrompt is shown before waiting for the operator.
const PausePrompt = "Press any key to continue . . ."

// Console is the operator's terminal.
type Console struct {
	out         io.Writer
	in          io.Reader
	interactive bool
}

// New creates a Console. Pausing is enabled only when in is a terminal and
// pause is true.
func New(out io.Writer, in io.Reader, pause bool) *Console {
	return &Console{out: out, in: in, interactive: pause && isTerminal(in)}
}

// NewWithPause creates a Console that always pauses, regardless of whether
// in is a terminal. Used by tests and by callers that know better.
func NewWithPause(out io.Writer, in io.Reader) *Console {
	return &Console{out: out, in: in, interactive: true}
}

// Out exposes the underlying writer so child processes can share it.
func (c *Console) Out() io.Writer {
	return c.out
}

// In exposes the underlying reader so foreground processes can share it.
func (c *Console) In() io.Reader {
	return c.in
}

// Printf writes a formatted line.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Error writes an "ERROR:" line followed by an optional remediation hint.
func (c *Console) Error(message, remediation string) {
	fmt.Fprintf(c.out, "\nERROR: %s\n", message)
	if remediation != "" {
		fmt.Fprintln(c.out, remediation)
	}
}

// Banner writes lines framed by rules.
func (c *Console) Banner(lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	rule := strings.Repeat("=", max(width, 40))
	fmt.Fprintf(c.out, "\n%s\n", rule)
	for _, l := range lines {
		fmt.Fprintln(c.out, l)
	}
	fmt.Fprintln(c.out, rule)
}

// Pause blocks until the operator presses a key. It is a no-op when the
// console is not interactive.
func (c *Console) Pause() {
	if !c.interactive || c.in == nil {
		return
	}
	fmt.Fprintln(c.out, PausePrompt)
	if f, ok := c.in.(*os.File); ok {
		if restore := rawMode(f); restore != nil {
			defer restore()
		}
	}
	buf := make([]byte, 1)
	_, _ = c.in.Read(buf)
}

// rawMode puts a terminal into raw mode so a single key press is delivered
// without waiting for Enter. It returns the function restoring the previous
// state, or nil when f is not a terminal.
var rawMode = func(f *os.File) func() {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil
	}
	return func() { _ = term.Restore(fd, state) }
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
