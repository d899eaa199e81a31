package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	p := Default(t.TempDir())
	require.NoError(t, Validate(p))
	assert.Equal(t, "WriterPlatform", p.Name)
	assert.Equal(t, LayoutOneDir, p.Package.Layout)
	assert.Contains(t, p.Package.HiddenImports, "keyring")
}

func TestDefault_HiddenImportsAreCopied(t *testing.T) {
	p := Default(".")
	p.Package.HiddenImports[0] = "mutated"
	assert.Equal(t, "PyQt6", DefaultHiddenImports[0])
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(p *Project)
		expectErr string
	}{
		{
			name:      "missing name",
			mutate:    func(p *Project) { p.Name = " " },
			expectErr: "name is required",
		},
		{
			name:      "name with separators",
			mutate:    func(p *Project) { p.Name = "a/b" },
			expectErr: "not allowed in a file name",
		},
		{
			name:      "bad layout",
			mutate:    func(p *Project) { p.Package.Layout = "zip" },
			expectErr: "package.layout",
		},
		{
			name:      "bad min version",
			mutate:    func(p *Project) { p.Runtime.MinVersion = "three" },
			expectErr: "runtime.min_version",
		},
		{
			name:      "environment escapes project",
			mutate:    func(p *Project) { p.Environment.Dir = "../venv" },
			expectErr: "environment.dir",
		},
		{
			name:      "add data escapes project",
			mutate:    func(p *Project) { p.Package.AddData = []string{"assets", ".."} },
			expectErr: "package.add_data[1]",
		},
		{
			name:   "absolute paths are allowed",
			mutate: func(p *Project) { p.Environment.Dir = filepath.Join(t.TempDir(), "venv") },
		},
		{
			name:   "min version accepted",
			mutate: func(p *Project) { p.Runtime.MinVersion = "3.10" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Default(t.TempDir())
			tc.mutate(p)
			err := Validate(p)
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestProject_Abs(t *testing.T) {
	dir := t.TempDir()
	p := Default(dir)
	assert.Equal(t, filepath.Join(dir, "assets", "icon.ico"), p.Abs("assets/icon.ico"))

	abs := filepath.Join(dir, "elsewhere")
	assert.Equal(t, abs, p.Abs(abs))
}
