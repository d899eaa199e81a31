package runtime_check

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/executor"
	"github.com/specialistvlad/pyship/internal/pyenv"
	"github.com/specialistvlad/pyship/internal/registry"
	"github.com/specialistvlad/pyship/internal/session"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

const (
	msgMissing = "Python is not installed or not in PATH"
	remMissing = "Install Python 3 from https://www.python.org and re-run"
	msgVersion = "Could not query the Python version"
	remVersion = "Check that the configured interpreter runs, then re-run"
)

// CheckRuntime resolves the interpreter on the search path and, when a
// minimum version is configured, verifies it.
func CheckRuntime(ctx context.Context, s *session.Session) (executor.Status, error) {
	logger := ctxlog.FromContext(ctx)
	s.Console.Printf("Checking Python installation...")

	path, err := s.Shell.LookPath(s.Project.Runtime.Interpreter)
	if err != nil {
		logger.Debug("Interpreter lookup failed.", "interpreter", s.Project.Runtime.Interpreter, "error", err)
		return executor.StatusFailed, executor.MissingPrerequisite(msgMissing, remMissing)
	}
	logger.Debug("Interpreter resolved.", "path", path)
	s.Python = path

	minimum := s.Project.Runtime.MinVersion
	if minimum == "" {
		return executor.StatusDone, nil
	}

	var out strings.Builder
	cmd := s.PythonCommand("--version")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := s.Run(ctx, cmd); err != nil {
		return executor.StatusFailed, executor.CommandFailed(msgVersion, remVersion, err)
	}

	have, err := pyenv.ParseVersion(out.String())
	if err != nil {
		return executor.StatusFailed, executor.CommandFailed(msgVersion, remVersion, err)
	}
	logger.Debug("Interpreter version.", "version", have, "minimum", minimum)
	if !pyenv.AtLeast(have, minimum) {
		return executor.StatusFailed, executor.MissingPrerequisite(
			fmt.Sprintf("Python %s or newer is required, found %s", minimum, strings.TrimPrefix(have, "v")),
			remMissing,
		)
	}
	return executor.StatusDone, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("runtime_check", &registry.RegisteredStep{
		Description: "Checks that the Python interpreter is on the search path.",
		Fn:          CheckRuntime,
	})
}
