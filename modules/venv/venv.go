// Package venv provisions, checks, and activates the project's isolated
// Python environment.
package venv

import (
	"context"

	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/executor"
	"github.com/specialistvlad/pyship/internal/fsutil"
	"github.com/specialistvlad/pyship/internal/provision"
	"github.com/specialistvlad/pyship/internal/session"
)

const (
	remInstall = "Run 'pyship install' first"
	remCreate  = "Check that Python includes the venv module and the project directory is writable, then re-run 'pyship install'"
)

// CreateEnv creates the environment unless its marker already exists, then
// activates it for the remaining steps.
func CreateEnv(ctx context.Context, s *session.Session) (executor.Status, error) {
	layout := s.Layout()
	dir := s.Project.Environment.Dir

	status, err := provision.Ensure(ctx, provision.Resource{
		Name:   "virtual environment",
		Exists: provision.File(layout.Marker()),
		Create: func(ctx context.Context) error {
			s.Console.Printf("Creating virtual environment in %s...", dir)
			return s.Run(ctx, s.PythonCommand("-m", "venv", layout.Root))
		},
	})
	if err != nil {
		return executor.StatusFailed, executor.CommandFailed("Failed to create virtual environment", remCreate, err)
	}
	s.Activate()
	if status == provision.StatusExisting {
		s.Console.Printf("Virtual environment already exists.")
		return executor.StatusSkipped, nil
	}
	return executor.StatusDone, nil
}

// RequireEnv fails when the environment has not been provisioned. On
// success the session is activated so later steps use the environment.
func RequireEnv(ctx context.Context, s *session.Session) (executor.Status, error) {
	marker := s.Layout().Marker()
	if !fsutil.IsFile(marker) {
		ctxlog.FromContext(ctx).Debug("Environment marker absent.", "marker", marker)
		return executor.StatusFailed, executor.MissingPrerequisite("Virtual environment not found", remInstall)
	}
	s.Activate()
	return executor.StatusDone, nil
}

// ActivateEnv switches the session to the environment when it exists. A
// missing environment leaves the system interpreter in place.
func ActivateEnv(ctx context.Context, s *session.Session) (executor.Status, error) {
	marker := s.Layout().Marker()
	ok, err := fsutil.Exists(marker)
	if err != nil {
		return executor.StatusFailed, err
	}
	if !ok {
		ctxlog.FromContext(ctx).Debug("No environment to activate.", "marker", marker)
		return executor.StatusSkipped, nil
	}
	s.Activate()
	ctxlog.FromContext(ctx).Debug("Environment activated.", "python", s.Python)
	return executor.StatusDone, nil
}
