package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/specialistvlad/pyship/internal/config"
	"github.com/specialistvlad/pyship/internal/console"
	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/executor"
	"github.com/specialistvlad/pyship/internal/registry"
	"github.com/specialistvlad/pyship/internal/session"
	"github.com/specialistvlad/pyship/internal/shell"
)

// Streams are the process's standard streams. Operator text goes to Out,
// logs to Err.
type Streams struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger   *slog.Logger
	registry *registry.Registry
	executor *executor.Executor
	project  *config.Project
	shell    shell.Commander
	console  *console.Console
	goos     string
}

// NewApp is the constructor for the main application. It configures an
// isolated logger, loads the project, and registers the step modules. A
// project that cannot be loaded is returned as an error; a workflow that
// references an unregistered step is a programming error and panics.
func NewApp(streams Streams, appConfig *Config, loader config.Loader, sh shell.Commander, modules ...registry.Module) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, streams.Err)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	project, err := loader.Load(ctx, appConfig.Dir, appConfig.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	logger.Debug("Project loaded.", "name", project.Name, "dir", project.Dir)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if err := reg.ValidateWorkflows(Workflows()...); err != nil {
		panic(err)
	}
	logger.Debug("Workflow validation passed.")

	return &App{
		logger:   logger,
		registry: reg,
		executor: executor.New(reg),
		project:  project,
		shell:    sh,
		console:  console.New(streams.Out, streams.In, !appConfig.NoPause),
		goos:     runtime.GOOS,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Project returns the loaded project.
func (a *App) Project() *config.Project {
	return a.project
}

// Console returns the operator console.
func (a *App) Console() *console.Console {
	return a.console
}

func (a *App) newSession() *session.Session {
	s := session.New(a.project, a.shell, a.console)
	s.GOOS = a.goos
	return s
}
