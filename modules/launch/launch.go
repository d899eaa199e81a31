// Package launch starts the application entry point in the foreground.
package launch

import (
	"context"
	"errors"

	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/executor"
	"github.com/specialistvlad/pyship/internal/registry"
	"github.com/specialistvlad/pyship/internal/session"
	"github.com/specialistvlad/pyship/internal/shell"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

const (
	msgFailed = "Application failed to start"
	remFailed = "Try running 'pyship install' first"
)

// LaunchApp runs the entry point with the operator's terminal attached.
func LaunchApp(ctx context.Context, s *session.Session) (executor.Status, error) {
	s.Console.Printf("Starting %s...", s.Project.DisplayName)

	cmd := s.PythonCommand(s.Project.EntryPoint)
	cmd.Stdin = s.Console.In()
	err := s.Run(ctx, cmd)
	if err == nil {
		return executor.StatusDone, nil
	}

	var exitErr *shell.ExitError
	if errors.As(err, &exitErr) {
		ctxlog.FromContext(ctx).Debug("Application exited.", "code", exitErr.Code)
		return executor.StatusFailed, executor.AppFailed(msgFailed, remFailed, err)
	}
	return executor.StatusFailed, &executor.Failure{
		Kind:        executor.KindInternal,
		Message:     msgFailed,
		Remediation: remFailed,
		Err:         err,
	}
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("app_launch", &registry.RegisteredStep{
		Description: "Runs the application entry point.",
		Fn:          LaunchApp,
	})
}
