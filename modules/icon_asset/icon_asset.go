// Package icon_asset makes sure the application icon exists before it is
// needed by packaging.
package icon_asset

import (
	"context"

	"github.com/specialistvlad/pyship/internal/config"
	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/executor"
	"github.com/specialistvlad/pyship/internal/fsutil"
	"github.com/specialistvlad/pyship/internal/icon"
	"github.com/specialistvlad/pyship/internal/provision"
	"github.com/specialistvlad/pyship/internal/session"
)

// EnsureIcon generates the icon asset when it is absent.
func EnsureIcon(ctx context.Context, s *session.Session) (executor.Status, error) {
	path := s.Project.Abs(s.Project.Icon.Path)

	status, err := provision.Ensure(ctx, provision.Resource{
		Name:   "icon",
		Exists: provision.File(path),
		Create: func(ctx context.Context) error {
			s.Console.Printf("Creating application icon...")
			return Generate(ctx, s)
		},
	})
	if err != nil {
		return executor.StatusFailed, err
	}
	if status == provision.StatusExisting {
		return executor.StatusSkipped, nil
	}
	return executor.StatusDone, nil
}

// RegenerateIcon produces the icon unconditionally.
func RegenerateIcon(ctx context.Context, s *session.Session) (executor.Status, error) {
	s.Console.Printf("Creating application icon...")
	if err := Generate(ctx, s); err != nil {
		return executor.StatusFailed, executor.CommandFailed("Failed to create icon", "Check the icon generator settings, then re-run 'pyship icon --force'", err)
	}
	s.Console.Printf("Icon written to %s", s.Project.Icon.Path)
	return executor.StatusDone, nil
}

// Generate produces the icon with the configured generator, overwriting
// any existing file.
func Generate(ctx context.Context, s *session.Session) error {
	logger := ctxlog.FromContext(ctx)
	ic := s.Project.Icon

	script := ""
	switch ic.Generator {
	case config.GeneratorBuiltin:
	case config.GeneratorAuto:
		if fsutil.IsFile(s.Project.Abs(ic.Script)) {
			script = ic.Script
		}
	default:
		script = ic.Generator
	}

	if script != "" {
		logger.Debug("Generating icon with script.", "script", script)
		return s.Run(ctx, s.PythonCommand(script))
	}

	files, err := icon.Write(s.Project.Abs(ic.Path))
	if err != nil {
		return err
	}
	logger.Debug("Icon rendered.", "ico", files.ICO, "png", files.PNG)
	return nil
}
