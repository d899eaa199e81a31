package app

import (
	"github.com/specialistvlad/pyship/internal/registry"
	"github.com/specialistvlad/pyship/modules/icon_asset"
	"github.com/specialistvlad/pyship/modules/launch"
	"github.com/specialistvlad/pyship/modules/package_app"
	"github.com/specialistvlad/pyship/modules/pip_install"
	"github.com/specialistvlad/pyship/modules/runtime_check"
	"github.com/specialistvlad/pyship/modules/venv"
)

// coreModules is the definitive list of all modules that are compiled into
// the pyship binary.
var coreModules = []registry.Module{
	&runtime_check.Module{},
	&venv.Module{},
	&pip_install.Module{},
	&icon_asset.Module{},
	&package_app.Module{},
	&launch.Module{},
}
