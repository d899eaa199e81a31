// Package session holds the state shared by the steps of a single workflow
// run: the project, the collaborators used to reach the outside world, and
// whatever earlier steps resolved for later ones.
package session

import (
	"context"
	"os"
	"runtime"

	"github.com/specialistvlad/pyship/internal/config"
	"github.com/specialistvlad/pyship/internal/console"
	"github.com/specialistvlad/pyship/internal/pyenv"
	"github.com/specialistvlad/pyship/internal/shell"
)

// Session is one workflow run. Steps execute sequentially, so no locking is
// needed.
type Session struct {
	Project *config.Project
	Shell   shell.Commander
	Console *console.Console
	// GOOS selects environment layout and packaging conventions.
	GOOS string
	// Getenv reads the operator's environment; tests replace it.
	Getenv func(string) string

	// Python is the interpreter later steps should invoke. runtime_check sets
	// it to the system interpreter and env_activate switches it to the
	// environment's own.
	Python string
	// Env holds the variables exported by activation for child processes.
	Env []string
}

// New creates a session for the current OS.
func New(project *config.Project, sh shell.Commander, con *console.Console) *Session {
	return &Session{
		Project: project,
		Shell:   sh,
		Console: con,
		GOOS:    runtime.GOOS,
		Getenv:  os.Getenv,
	}
}

// Layout returns the virtual environment layout of the project.
func (s *Session) Layout() pyenv.Layout {
	return pyenv.NewLayout(s.Project.Abs(s.Project.Environment.Dir), s.GOOS)
}

// Interpreter returns the interpreter to use, falling back to the
// configured name when no step has resolved one yet.
func (s *Session) Interpreter() string {
	if s.Python != "" {
		return s.Python
	}
	return s.Project.Runtime.Interpreter
}

// Activate points later commands at the virtual environment.
func (s *Session) Activate() {
	layout := s.Layout()
	s.Python = layout.Python()
	s.Env = layout.ActivationEnv(s.getenv("PATH"))
}

// Command builds a command that runs in the project directory with the
// session's environment and the console's output.
func (s *Session) Command(name string, args ...string) shell.Command {
	return shell.Command{
		Name:   name,
		Args:   args,
		Dir:    s.Project.Dir,
		Env:    append([]string(nil), s.Env...),
		Stdout: s.Console.Out(),
		Stderr: s.Console.Out(),
	}
}

// PythonCommand runs the session interpreter with args.
func (s *Session) PythonCommand(args ...string) shell.Command {
	return s.Command(s.Interpreter(), args...)
}

// Run runs cmd in the foreground. A non-zero exit is returned as a
// *shell.ExitError.
func (s *Session) Run(ctx context.Context, cmd shell.Command) error {
	res, err := s.Shell.Run(ctx, cmd)
	if err != nil {
		return err
	}
	return res.Err()
}

func (s *Session) getenv(key string) string {
	if s.Getenv == nil {
		return os.Getenv(key)
	}
	return s.Getenv(key)
}
