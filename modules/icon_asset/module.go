package icon_asset

import (
	"github.com/specialistvlad/pyship/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("icon_ensure", &registry.RegisteredStep{
		Description: "Generates the application icon if it does not exist.",
		Fn:          EnsureIcon,
	})
	r.RegisterStep("icon_generate", &registry.RegisteredStep{
		Description: "Regenerates the application icon, replacing any existing file.",
		Fn:          RegenerateIcon,
	})
}
