// Package packager turns a project's packaging settings into the fixed
// PyInstaller command line and predicts where the result lands.
package packager

import (
	"path/filepath"

	"github.com/specialistvlad/pyship/internal/config"
)

// Plan is a packaging run for one target OS.
type Plan struct {
	Project *config.Project
	GOOS    string
}

// NewPlan creates a plan for project on goos.
func NewPlan(project *config.Project, goos string) Plan {
	return Plan{Project: project, GOOS: goos}
}

// Args returns the tool arguments in a fixed order: name, icon, mode,
// layout, data, hidden imports, collected packages, paths, overwrite, and
// finally the entry point.
func (p Plan) Args() []string {
	pkg := p.Project.Package
	args := []string{
		"--name", p.Project.Name,
		"--icon", filepath.FromSlash(p.Project.Icon.Path),
	}
	if pkg.Windowed {
		args = append(args, "--windowed")
	}
	if pkg.Layout == config.LayoutOneFile {
		args = append(args, "--onefile")
	} else {
		args = append(args, "--onedir")
	}
	for _, data := range pkg.AddData {
		args = append(args, "--add-data", p.dataSpec(data))
	}
	for _, mod := range pkg.HiddenImports {
		args = append(args, "--hidden-import", mod)
	}
	for _, mod := range pkg.CollectAll {
		args = append(args, "--collect-all", mod)
	}
	args = append(args, "--distpath", filepath.FromSlash(pkg.DistDir))
	if pkg.WorkDir != "" {
		args = append(args, "--workpath", filepath.FromSlash(pkg.WorkDir))
	}
	if pkg.NoConfirm {
		args = append(args, "--noconfirm")
	}
	return append(args, filepath.FromSlash(p.Project.EntryPoint))
}

// dataSpec formats an --add-data value. The destination mirrors the source
// path inside the bundle; the separator is ';' on Windows and ':' elsewhere.
func (p Plan) dataSpec(src string) string {
	sep := ":"
	if p.GOOS == "windows" {
		sep = ";"
	}
	dst := filepath.ToSlash(filepath.Clean(filepath.FromSlash(src)))
	return filepath.FromSlash(src) + sep + dst
}

// OutputDir is the project-relative directory the distributable is
// written to.
func (p Plan) OutputDir() string {
	dist := filepath.FromSlash(p.Project.Package.DistDir)
	if p.Project.Package.Layout == config.LayoutOneFile {
		return dist
	}
	return filepath.Join(dist, p.Project.Name)
}

// Executable is the project-relative path of the packaged program.
func (p Plan) Executable() string {
	name := p.Project.Name
	if p.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(p.OutputDir(), name)
}
