package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

var versionPattern = regexp.MustCompile(`^\d+(\.\d+){0,2}$`)

// Validate checks a fully defaulted project. All problems are reported
// together.
func Validate(p *Project) error {
	var errs []error
	required := map[string]string{
		"name":                 p.Name,
		"entry_point":          p.EntryPoint,
		"runtime.interpreter":  p.Runtime.Interpreter,
		"environment.dir":      p.Environment.Dir,
		"environment.manifest": p.Environment.Manifest,
		"icon.path":            p.Icon.Path,
		"package.tool":         p.Package.Tool,
		"package.module":       p.Package.Module,
		"package.dist_dir":     p.Package.DistDir,
	}
	for _, field := range sortedKeys(required) {
		if strings.TrimSpace(required[field]) == "" {
			errs = append(errs, fmt.Errorf("%s is required", field))
		}
	}

	if strings.ContainsAny(p.Name, `/\:*?"<>|`) {
		errs = append(errs, fmt.Errorf("name %q contains characters not allowed in a file name", p.Name))
	}

	switch p.Package.Layout {
	case LayoutOneDir, LayoutOneFile:
	default:
		errs = append(errs, fmt.Errorf("package.layout must be %q or %q, got %q", LayoutOneDir, LayoutOneFile, p.Package.Layout))
	}

	if p.Runtime.MinVersion != "" && !versionPattern.MatchString(p.Runtime.MinVersion) {
		errs = append(errs, fmt.Errorf("runtime.min_version %q is not a dotted numeric version", p.Runtime.MinVersion))
	}

	contained := map[string]string{
		"entry_point":          p.EntryPoint,
		"environment.dir":      p.Environment.Dir,
		"environment.manifest": p.Environment.Manifest,
		"icon.path":            p.Icon.Path,
		"package.dist_dir":     p.Package.DistDir,
		"package.work_dir":     p.Package.WorkDir,
	}
	for _, field := range sortedKeys(contained) {
		if escapes(contained[field]) {
			errs = append(errs, fmt.Errorf("%s %q must stay inside the project directory", field, contained[field]))
		}
	}
	for i, data := range p.Package.AddData {
		if escapes(data) {
			errs = append(errs, fmt.Errorf("package.add_data[%d] %q must stay inside the project directory", i, data))
		}
	}

	return errors.Join(errs...)
}

// escapes reports whether a relative path climbs out of its root. Absolute
// paths are allowed; the operator asked for them explicitly.
func escapes(rel string) bool {
	if rel == "" || filepath.IsAbs(rel) {
		return false
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(rel)))
	return clean == ".." || strings.HasPrefix(clean, "../")
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
