package pip_install

import (
	"github.com/specialistvlad/pyship/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("pip_upgrade", &registry.RegisteredStep{
		Description: "Upgrades pip inside the environment.",
		Fn:          UpgradePip,
	})
	r.RegisterStep("manifest_install", &registry.RegisteredStep{
		Description: "Installs the dependency manifest.",
		Fn:          InstallManifest,
	})
	r.RegisterStep("package_tool_ensure", &registry.RegisteredStep{
		Description: "Installs the packaging tool if missing.",
		Fn:          EnsurePackageTool,
	})
}
