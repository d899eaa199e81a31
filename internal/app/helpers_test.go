package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/pyship/internal/console"
	"github.com/specialistvlad/pyship/internal/hcl_adapter"
	"github.com/specialistvlad/pyship/internal/pyenv"
	"github.com/specialistvlad/pyship/internal/registry"
	"github.com/specialistvlad/pyship/internal/testutil"
	"github.com/stretchr/testify/require"
)

// setupAppTest creates an app over an empty project directory that talks to
// sh. The console always pauses so tests can observe the prompt.
func setupAppTest(t *testing.T, sh *testutil.FakeShell, modules ...registry.Module) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	dir := t.TempDir()
	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	cfg, err := NewConfig(Config{Dir: dir, LogLevel: "debug"})
	require.NoError(t, err)

	a, err := NewApp(Streams{Out: out, Err: logs}, cfg, hcl_adapter.NewLoader(), sh, modules...)
	require.NoError(t, err)
	a.goos = "windows"
	a.console = console.NewWithPause(out, strings.NewReader(strings.Repeat("x", 8)))

	t.Cleanup(func() {
		if os.Getenv("PYSHIP_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs
}

func layoutOf(a *App) pyenv.Layout {
	return pyenv.NewLayout(filepath.Join(a.project.Dir, "venv"), a.goos)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
