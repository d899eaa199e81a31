package config

import (
	"path/filepath"
)

// Package output layouts understood by the packaging tool.
const (
	LayoutOneDir  = "onedir"
	LayoutOneFile = "onefile"
)

// Icon generator selectors. Any other value is treated as a script path.
const (
	GeneratorAuto    = "auto"
	GeneratorBuiltin = "builtin"
)

// Project is the unified, format-agnostic representation of a pyship
// project file.
type Project struct {
	// Name is the packaged application and executable name.
	Name string
	// DisplayName is used in operator-facing banners.
	DisplayName string
	// Dir is the absolute project directory; every relative path below is
	// resolved against it.
	Dir        string
	EntryPoint string

	Runtime     Runtime
	Environment Environment
	Icon        Icon
	Package     Package
}

// Runtime describes the interpreter that must be on the search path.
type Runtime struct {
	Interpreter string
	// MinVersion is an optional dotted version such as "3.10".
	MinVersion string
}

// Environment describes the isolated dependency environment.
type Environment struct {
	Dir      string
	Manifest string
}

// Icon describes the icon asset and how to produce it when missing.
type Icon struct {
	Path      string
	Generator string
	// Script is the helper used by the "auto" generator.
	Script string
}

// Package is the fixed argument set handed to the packaging tool.
type Package struct {
	// Tool is the pip distribution name, Module the importable name used
	// with `python -m`.
	Tool          string
	Module        string
	Windowed      bool
	Layout        string
	AddData       []string
	HiddenImports []string
	CollectAll    []string
	NoConfirm     bool
	DistDir       string
	WorkDir       string
}

// Abs resolves a project-relative path against the project directory.
func (p *Project) Abs(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Dir, filepath.FromSlash(rel))
}
