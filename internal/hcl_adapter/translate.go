package hcl_adapter

import (
	"github.com/specialistvlad/pyship/internal/config"
)

// fileRoot mirrors the top level of a project file. Every field is optional;
// absent values keep the defaults already present on the target project.
type fileRoot struct {
	Name        string `hcl:"name,optional"`
	DisplayName string `hcl:"display_name,optional"`
	EntryPoint  string `hcl:"entry_point,optional"`

	Runtime     *runtimeBlock     `hcl:"runtime,block"`
	Environment *environmentBlock `hcl:"environment,block"`
	Icon        *iconBlock        `hcl:"icon,block"`
	Package     *packageBlock     `hcl:"package,block"`
}

type runtimeBlock struct {
	Interpreter string `hcl:"interpreter,optional"`
	MinVersion  string `hcl:"min_version,optional"`
}

type environmentBlock struct {
	Dir      string `hcl:"dir,optional"`
	Manifest string `hcl:"manifest,optional"`
}

type iconBlock struct {
	Path      string `hcl:"path,optional"`
	Generator string `hcl:"generator,optional"`
	Script    string `hcl:"script,optional"`
}

// packageBlock uses pointers so that an explicit false or an explicit empty
// list can be told apart from an omitted attribute.
type packageBlock struct {
	Tool          string    `hcl:"tool,optional"`
	Module        string    `hcl:"module,optional"`
	Windowed      *bool     `hcl:"windowed,optional"`
	Layout        string    `hcl:"layout,optional"`
	AddData       *[]string `hcl:"add_data,optional"`
	HiddenImports *[]string `hcl:"hidden_imports,optional"`
	CollectAll    *[]string `hcl:"collect_all,optional"`
	NoConfirm     *bool     `hcl:"no_confirm,optional"`
	DistDir       string    `hcl:"dist_dir,optional"`
	WorkDir       string    `hcl:"work_dir,optional"`
}

func (r *fileRoot) apply(p *config.Project) {
	setString(&p.Name, r.Name)
	setString(&p.DisplayName, r.DisplayName)
	setString(&p.EntryPoint, r.EntryPoint)
	if r.DisplayName == "" && r.Name != "" {
		p.DisplayName = r.Name
	}

	if rt := r.Runtime; rt != nil {
		setString(&p.Runtime.Interpreter, rt.Interpreter)
		setString(&p.Runtime.MinVersion, rt.MinVersion)
	}
	if env := r.Environment; env != nil {
		setString(&p.Environment.Dir, env.Dir)
		setString(&p.Environment.Manifest, env.Manifest)
	}
	if icon := r.Icon; icon != nil {
		setString(&p.Icon.Path, icon.Path)
		setString(&p.Icon.Generator, icon.Generator)
		setString(&p.Icon.Script, icon.Script)
	}
	if pkg := r.Package; pkg != nil {
		setString(&p.Package.Tool, pkg.Tool)
		setString(&p.Package.Module, pkg.Module)
		setString(&p.Package.Layout, pkg.Layout)
		setString(&p.Package.DistDir, pkg.DistDir)
		setString(&p.Package.WorkDir, pkg.WorkDir)
		setBool(&p.Package.Windowed, pkg.Windowed)
		setBool(&p.Package.NoConfirm, pkg.NoConfirm)
		setList(&p.Package.AddData, pkg.AddData)
		setList(&p.Package.HiddenImports, pkg.HiddenImports)
		setList(&p.Package.CollectAll, pkg.CollectAll)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setList(dst *[]string, v *[]string) {
	if v == nil {
		return
	}
	*dst = append([]string{}, (*v)...)
}
