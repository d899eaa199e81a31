package hcl_adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/pyship/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// ErrTemplateExists is returned by WriteTemplate when the target exists and
// force was not requested.
var ErrTemplateExists = errors.New("project file already exists")

// RenderTemplate renders a project as HCL source.
func RenderTemplate(p *config.Project) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.SetAttributeValue("name", cty.StringVal(p.Name))
	body.SetAttributeValue("display_name", cty.StringVal(p.DisplayName))
	body.SetAttributeValue("entry_point", cty.StringVal(p.EntryPoint))

	body.AppendNewline()
	rt := body.AppendNewBlock("runtime", nil).Body()
	rt.SetAttributeValue("interpreter", cty.StringVal(p.Runtime.Interpreter))
	if p.Runtime.MinVersion != "" {
		rt.SetAttributeValue("min_version", cty.StringVal(p.Runtime.MinVersion))
	}

	body.AppendNewline()
	env := body.AppendNewBlock("environment", nil).Body()
	env.SetAttributeValue("dir", cty.StringVal(p.Environment.Dir))
	env.SetAttributeValue("manifest", cty.StringVal(p.Environment.Manifest))

	body.AppendNewline()
	icon := body.AppendNewBlock("icon", nil).Body()
	icon.SetAttributeValue("path", cty.StringVal(p.Icon.Path))
	icon.SetAttributeValue("generator", cty.StringVal(p.Icon.Generator))
	icon.SetAttributeValue("script", cty.StringVal(p.Icon.Script))

	body.AppendNewline()
	pkg := body.AppendNewBlock("package", nil).Body()
	pkg.SetAttributeValue("tool", cty.StringVal(p.Package.Tool))
	pkg.SetAttributeValue("module", cty.StringVal(p.Package.Module))
	pkg.SetAttributeValue("windowed", cty.BoolVal(p.Package.Windowed))
	pkg.SetAttributeValue("layout", cty.StringVal(p.Package.Layout))
	pkg.SetAttributeValue("add_data", stringList(p.Package.AddData))
	pkg.SetAttributeValue("hidden_imports", stringList(p.Package.HiddenImports))
	pkg.SetAttributeValue("collect_all", stringList(p.Package.CollectAll))
	pkg.SetAttributeValue("no_confirm", cty.BoolVal(p.Package.NoConfirm))
	pkg.SetAttributeValue("dist_dir", cty.StringVal(p.Package.DistDir))
	pkg.SetAttributeValue("work_dir", cty.StringVal(p.Package.WorkDir))

	return hclwrite.Format(f.Bytes())
}

// WriteTemplate writes the rendered project to path, creating parent
// directories as needed.
func WriteTemplate(path string, p *config.Project, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrTemplateExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, RenderTemplate(p), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func stringList(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, item := range items {
		vals[i] = cty.StringVal(item)
	}
	return cty.ListVal(vals)
}
