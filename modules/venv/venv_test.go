package venv

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

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
	s.Getenv = func(string) string { return `C:\Windows` }
	return s, &out
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestCreateEnv_CreatesWhenAbsent(t *testing.T) {
	sh := testutil.NewFakeShell()
	s, out := newSession(t, sh)
	marker := s.Layout().Marker()
	sh.On("-m venv", testutil.Touch(marker))

	status, err := CreateEnv(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, executor.StatusDone, status)
	require.Len(t, sh.Calls(), 1)
	assert.Equal(t, []string{"-m", "venv", s.Layout().Root}, sh.Calls()[0].Args)
	assert.Contains(t, out.String(), "Creating virtual environment in venv...")
}

func TestCreateEnv_SkipsWhenPresent(t *testing.T) {
	sh := testutil.NewFakeShell()
	s, out := newSession(t, sh)
	touch(t, s.Layout().Marker())

	status, err := CreateEnv(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, executor.StatusSkipped, status)
	assert.Empty(t, sh.Calls())
	assert.Contains(t, out.String(), "already exists")
	assert.Equal(t, s.Layout().Python(), s.Python)
}

func TestCreateEnv_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		respond testutil.Responder
	}{
		{name: "non-zero exit", respond: testutil.Exit(1)},
		{name: "exit zero but no marker", respond: testutil.Exit(0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sh := testutil.NewFakeShell().On("-m venv", tc.respond)
			s, _ := newSession(t, sh)

			_, err := CreateEnv(context.Background(), s)
			require.Error(t, err)
			failure := executor.AsFailure(err)
			assert.Equal(t, executor.KindCommandFailed, failure.Kind)
			assert.Equal(t, "Failed to create virtual environment", failure.Message)
			assert.Contains(t, failure.Remediation, "re-run 'pyship install'")
		})
	}
}

func TestRequireEnv(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		s, _ := newSession(t, testutil.NewFakeShell())
		_, err := RequireEnv(context.Background(), s)
		require.Error(t, err)
		failure := executor.AsFailure(err)
		assert.Equal(t, executor.KindMissingPrerequisite, failure.Kind)
		assert.Equal(t, "Virtual environment not found", failure.Message)
		assert.Equal(t, "Run 'pyship install' first", failure.Remediation)
	})

	t.Run("present activates", func(t *testing.T) {
		s, _ := newSession(t, testutil.NewFakeShell())
		touch(t, s.Layout().Marker())
		status, err := RequireEnv(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, executor.StatusDone, status)
		assert.Equal(t, s.Layout().Python(), s.Python)
	})
}

func TestActivateEnv(t *testing.T) {
	t.Run("absent keeps system interpreter", func(t *testing.T) {
		s, _ := newSession(t, testutil.NewFakeShell())
		status, err := ActivateEnv(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, executor.StatusSkipped, status)
		assert.Equal(t, "python", s.Interpreter())
		assert.Empty(t, s.Env)
	})

	t.Run("present exports environment", func(t *testing.T) {
		s, _ := newSession(t, testutil.NewFakeShell())
		touch(t, s.Layout().Marker())
		status, err := ActivateEnv(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, executor.StatusDone, status)
		assert.Equal(t, s.Layout().Python(), s.Interpreter())
		assert.Contains(t, s.Env, "VIRTUAL_ENV="+s.Layout().Root)
		assert.Contains(t, s.Env, "PATH="+s.Layout().BinDir()+`;C:\Windows`)
	})
}
