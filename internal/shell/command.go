package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotFound is returned by LookPath when a program is not on the search path.
var ErrNotFound = errors.New("executable not found in search path")

// Command is a single foreground process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds extra KEY=VALUE pairs layered over the inherited environment.
	Env []string

	// Nil streams are discarded (Stdin reads as empty).
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for logs.
func (c Command) String() string {
	parts := append([]string{c.Name}, c.Args...)
	for i, p := range parts {
		if p == "" || strings.ContainsAny(p, " \t\"") {
			parts[i] = `"` + strings.ReplaceAll(p, `"`, `\"`) + `"`
		}
	}
	return strings.Join(parts, " ")
}

// Result is the outcome of a process that ran to completion.
type Result struct {
	ExitCode int
}

// Success reports whether the process exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// ExitError reports a process that ran but exited with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Err returns nil for a successful result and an *ExitError otherwise.
func (r Result) Err() error {
	if r.Success() {
		return nil
	}
	return &ExitError{Code: r.ExitCode}
}

// Commander starts external programs and waits for them.
type Commander interface {
	// Run starts the command and blocks until it exits. A non-zero exit is
	// reported through Result, not as an error; errors mean the process
	// could not be started or was interrupted.
	Run(ctx context.Context, cmd Command) (Result, error)

	// LookPath resolves a program name against the search path, wrapping
	// ErrNotFound when it is absent.
	LookPath(name string) (string, error)
}
