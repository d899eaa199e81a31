package venv

import (
	"github.com/specialistvlad/pyship/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("env_create", &registry.RegisteredStep{
		Description: "Creates the virtual environment when it is absent.",
		Fn:          CreateEnv,
	})
	r.RegisterStep("env_require", &registry.RegisteredStep{
		Description: "Fails unless the virtual environment exists, then activates it.",
		Fn:          RequireEnv,
	})
	r.RegisterStep("env_activate", &registry.RegisteredStep{
		Description: "Activates the virtual environment if present.",
		Fn:          ActivateEnv,
	})
}
