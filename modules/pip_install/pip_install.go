// Package pip_install upgrades pip and installs packages into the active
// environment.
package pip_install

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/executor"
	"github.com/specialistvlad/pyship/internal/fsutil"
	"github.com/specialistvlad/pyship/internal/session"
)

const (
	remManifest = "Check %s and your network connection, then re-run 'pyship install'"
	remTool     = "Check your network connection, then re-run 'pyship build'"
)

// UpgradePip upgrades pip quietly.
func UpgradePip(ctx context.Context, s *session.Session) (executor.Status, error) {
	s.Console.Printf("Upgrading pip...")
	if err := s.Run(ctx, s.PythonCommand("-m", "pip", "install", "--upgrade", "pip", "--quiet")); err != nil {
		return executor.StatusFailed, executor.CommandFailed("Failed to upgrade pip", "Re-run 'pyship install'", err)
	}
	return executor.StatusDone, nil
}

// InstallManifest installs the dependency manifest.
func InstallManifest(ctx context.Context, s *session.Session) (executor.Status, error) {
	const msg = "Failed to install dependencies"
	manifest := s.Project.Environment.Manifest
	rem := fmt.Sprintf(remManifest, manifest)
	if !fsutil.IsFile(s.Project.Abs(manifest)) {
		return executor.StatusFailed, executor.CommandFailed(msg, rem, fmt.Errorf("%s not found", manifest))
	}

	s.Console.Printf("Installing dependencies from %s...", manifest)
	if err := s.Run(ctx, s.PythonCommand("-m", "pip", "install", "-r", manifest)); err != nil {
		return executor.StatusFailed, executor.CommandFailed(msg, rem, err)
	}
	return executor.StatusDone, nil
}

// EnsurePackageTool installs the packaging tool unless pip already knows it.
func EnsurePackageTool(ctx context.Context, s *session.Session) (executor.Status, error) {
	logger := ctxlog.FromContext(ctx)
	tool := s.Project.Package.Tool

	show := s.PythonCommand("-m", "pip", "show", tool, "--quiet")
	show.Stdout, show.Stderr = nil, nil
	if err := s.Run(ctx, show); err == nil {
		logger.Debug("Packaging tool already installed.", "tool", tool)
		return executor.StatusSkipped, nil
	} else if ctx.Err() != nil {
		return executor.StatusFailed, err
	}

	s.Console.Printf("Installing %s...", tool)
	if err := s.Run(ctx, s.PythonCommand("-m", "pip", "install", tool)); err != nil {
		return executor.StatusFailed, executor.CommandFailed("Failed to install PyInstaller", remTool, err)
	}
	return executor.StatusDone, nil
}
