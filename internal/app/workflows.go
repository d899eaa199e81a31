package app

import (
	"github.com/specialistvlad/pyship/internal/executor"
)

// Workflow names, also used as subcommand names.
const (
	WorkflowInstall = "install"
	WorkflowRun     = "run"
	WorkflowBuild   = "build"
	WorkflowIcon    = "icon"
)

var installWorkflow = executor.Workflow{
	Name: WorkflowInstall,
	Steps: []executor.StepRef{
		executor.Step("runtime_check"),
		executor.Step("env_create"),
		executor.BestEffort("pip_upgrade"),
		executor.Step("manifest_install"),
		executor.BestEffort("icon_ensure"),
	},
}

var runWorkflow = executor.Workflow{
	Name: WorkflowRun,
	Steps: []executor.StepRef{
		executor.BestEffort("env_activate"),
		executor.Step("app_launch"),
	},
}

var buildWorkflow = executor.Workflow{
	Name: WorkflowBuild,
	Steps: []executor.StepRef{
		executor.Step("runtime_check"),
		executor.Step("env_require"),
		executor.Step("package_tool_ensure"),
		executor.BestEffort("icon_ensure"),
		executor.Step("package_build"),
	},
}

// The icon workflows back the icon subcommand. Unlike the best-effort icon
// step of install and build, failures here are reported.
var (
	iconWorkflow = executor.Workflow{
		Name: WorkflowIcon,
		Steps: []executor.StepRef{
			executor.BestEffort("env_activate"),
			executor.Step("icon_ensure"),
		},
	}
	iconForceWorkflow = executor.Workflow{
		Name: WorkflowIcon,
		Steps: []executor.StepRef{
			executor.BestEffort("env_activate"),
			executor.Step("icon_generate"),
		},
	}
)

// Workflows returns every workflow the application can run.
func Workflows() []executor.Workflow {
	return []executor.Workflow{installWorkflow, runWorkflow, buildWorkflow, iconWorkflow, iconForceWorkflow}
}
