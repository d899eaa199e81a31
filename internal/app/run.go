package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/executor"
)

// Install provisions the environment and dependencies.
func (a *App) Install(ctx context.Context) error {
	a.console.Banner(fmt.Sprintf("%s - Installation", a.project.DisplayName))
	if _, err := a.runWorkflow(ctx, installWorkflow); err != nil {
		return err
	}
	a.console.Banner(
		"Installation complete!",
		"",
		"Run 'pyship run' to start "+a.project.DisplayName,
	)
	a.console.Pause()
	return nil
}

// Launch starts the application. It only pauses when the application fails.
func (a *App) Launch(ctx context.Context) error {
	_, err := a.runWorkflow(ctx, runWorkflow)
	return err
}

// Build packages the application. The output location is reported by the
// packaging step itself.
func (a *App) Build(ctx context.Context) error {
	a.console.Banner(fmt.Sprintf("%s - Build", a.project.DisplayName))
	if _, err := a.runWorkflow(ctx, buildWorkflow); err != nil {
		return err
	}
	a.console.Pause()
	return nil
}

// Icon creates the icon asset when it is missing, or replaces it when force
// is set.
func (a *App) Icon(ctx context.Context, force bool) error {
	wf := iconWorkflow
	if force {
		wf = iconForceWorkflow
	}
	report, err := a.runWorkflow(ctx, wf)
	if err != nil {
		return err
	}
	if report.Status("icon_ensure") == executor.StatusSkipped {
		a.console.Printf("Icon already exists: %s", a.project.Icon.Path)
	}
	return nil
}

// runWorkflow executes wf in a fresh session. A checked failure is shown to
// the operator, followed by the pause, and returned as *executor.Failure.
func (a *App) runWorkflow(ctx context.Context, wf executor.Workflow) (*executor.Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.runWorkflow started.", "workflow", wf.Name)
	a.logger.Info("Step handlers registered:", "count", len(a.registry.Names()), "keys", a.registry.Names())

	report := a.executor.Run(ctx, wf, a.newSession())
	if report.Succeeded() {
		a.logger.Debug("App.runWorkflow finished.", "workflow", wf.Name)
		return report, nil
	}

	failure := report.Failure
	a.console.Error(failure.Message, failure.Remediation)
	a.console.Pause()
	return report, failure
}
