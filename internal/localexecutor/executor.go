// Package localexecutor provides a concrete, OS-process implementation of the
// shell.Commander interface.
package localexecutor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/shell"
)

// Executor implements shell.Commander by spawning local processes.
type Executor struct {
	// Environ returns the base environment for every child. Defaults to os.Environ.
	Environ func() []string
}

// New creates a new local executor.
func New() *Executor {
	return &Executor{Environ: os.Environ}
}

// Run starts cmd and waits for it. The exit status of a process that ran is
// reported through the result; only start failures and cancellation are errors.
func (e *Executor) Run(ctx context.Context, cmd shell.Command) (shell.Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting command.", "cmd", cmd.String(), "dir", cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = mergeEnv(e.environ(), cmd.Env)
	c.Stdin = cmd.Stdin
	c.Stdout = orDiscard(cmd.Stdout)
	c.Stderr = orDiscard(cmd.Stderr)

	err := c.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return shell.Result{}, fmt.Errorf("command %s interrupted: %w", cmd.Name, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("Command exited non-zero.", "cmd", cmd.Name, "exit_code", exitErr.ExitCode())
			return shell.Result{ExitCode: exitErr.ExitCode()}, nil
		}
		return shell.Result{}, fmt.Errorf("failed to start %s: %w", cmd.Name, err)
	}

	logger.Debug("Command finished.", "cmd", cmd.Name)
	return shell.Result{}, nil
}

// LookPath resolves name against PATH.
func (e *Executor) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", shell.ErrNotFound, name)
	}
	return path, nil
}

func (e *Executor) environ() []string {
	if e.Environ == nil {
		return os.Environ()
	}
	return e.Environ()
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
