// Package package_app runs the packaging tool over the project.
package package_app

import (
	"context"
	"path/filepath"

	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/executor"
	"github.com/specialistvlad/pyship/internal/packager"
	"github.com/specialistvlad/pyship/internal/registry"
	"github.com/specialistvlad/pyship/internal/session"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// BuildPackage invokes the packaging tool with the project's fixed argument
// set and reports where the output was written.
func BuildPackage(ctx context.Context, s *session.Session) (executor.Status, error) {
	plan := packager.NewPlan(s.Project, s.GOOS)
	args := append([]string{"-m", s.Project.Package.Module}, plan.Args()...)

	s.Console.Printf("Building %s...", s.Project.DisplayName)
	ctxlog.FromContext(ctx).Debug("Packaging.", "output", plan.OutputDir(), "executable", plan.Executable())
	if err := s.Run(ctx, s.PythonCommand(args...)); err != nil {
		return executor.StatusFailed, executor.CommandFailed("Build failed", "Check the output above, then re-run 'pyship build'", err)
	}

	s.Console.Banner(
		"Build completed successfully!",
		"",
		"Output: "+filepath.ToSlash(plan.OutputDir())+"/",
		"Executable: "+filepath.ToSlash(plan.Executable()),
	)
	return executor.StatusDone, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("package_build", &registry.RegisteredStep{
		Description: "Packages the application into a standalone distributable.",
		Fn:          BuildPackage,
	})
}
