package package_app

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/pyship/internal/config"
	"github.com/specialistvlad/pyship/internal/console"
	"github.com/specialistvlad/pyship/internal/executor"
	"github.com/specialistvlad/pyship/internal/session"
	"github.com/specialistvlad/pyship/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, sh *testutil.FakeShell) (*session.Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s := session.New(config.Default(t.TempDir()), sh, console.New(&out, nil, false))
	s.GOOS = "windows"
	s.Python = "venvpython"
	return s, &out
}

func TestBuildPackage(t *testing.T) {
	sh := testutil.NewFakeShell()
	s, out := newSession(t, sh)
	s.Project.Package.HiddenImports = []string{"PyQt6", "keyring"}

	status, err := BuildPackage(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, executor.StatusDone, status)

	calls := sh.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "venvpython", calls[0].Name)
	want := []string{
		"-m", "PyInstaller",
		"--name", "WriterPlatform",
		"--icon", "assets/icon.ico",
		"--windowed",
		"--onedir",
		"--add-data", "assets;assets",
		"--hidden-import", "PyQt6",
		"--hidden-import", "keyring",
		"--collect-all", "PyQt6",
		"--distpath", "dist",
		"--workpath", "build",
		"--noconfirm",
		"main.py",
	}
	if diff := cmp.Diff(want, calls[0].Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, out.String(), "Output: dist/WriterPlatform/")
	assert.Contains(t, out.String(), "Executable: dist/WriterPlatform/WriterPlatform.exe")
}

func TestBuildPackage_Failure(t *testing.T) {
	sh := testutil.NewFakeShell().On("PyInstaller", testutil.Exit(1))
	s, out := newSession(t, sh)

	_, err := BuildPackage(context.Background(), s)
	require.Error(t, err)
	failure := executor.AsFailure(err)
	assert.Equal(t, executor.KindCommandFailed, failure.Kind)
	assert.Equal(t, "Build failed", failure.Message)
	assert.Equal(t, "Check the output above, then re-run 'pyship build'", failure.Remediation)
	assert.NotContains(t, out.String(), "Executable:")
}
