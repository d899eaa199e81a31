package hcl_adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pyship/internal/config"
	"github.com/specialistvlad/pyship/internal/ctxlog"
)

// DefaultFileName is the project file looked up when none is given.
const DefaultFileName = "pyship.hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Getenv backs the env() function. Nil means os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new HCL project loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{}
}

// NewLoaderWithEnv creates a loader whose env() function reads through getenv.
func NewLoaderWithEnv(getenv func(string) string) *Loader {
	return &Loader{Getenv: getenv}
}

// Load parses the project file, overlays it on the built-in defaults and
// validates the result. A project file that does not exist is not an error.
func (l *Loader) Load(ctx context.Context, dir, path string) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory %s: %w", dir, err)
	}
	if path == "" {
		path = DefaultFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(absDir, path)
	}
	logger.Debug("HCL loader started.", "dir", absDir, "file", path)

	project := config.Default(absDir)

	src, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Debug("Project file not found, using built-in defaults.", "file", path)
	case err != nil:
		return nil, fmt.Errorf("reading project file %s: %w", path, err)
	default:
		root, err := l.decode(src, path, absDir)
		if err != nil {
			return nil, err
		}
		root.apply(project)
		logger.Debug("Project file decoded.", "file", path, "name", project.Name)
	}

	if err := config.Validate(project); err != nil {
		return nil, fmt.Errorf("invalid project file %s: %w", path, err)
	}
	return project, nil
}

func (l *Loader) decode(src []byte, filename, dir string) (*fileRoot, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, newEvalContext(dir, l.Getenv), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return &root, nil
}
