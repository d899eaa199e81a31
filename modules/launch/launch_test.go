package launch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/pyship/internal/config"
	"github.com/specialistvlad/pyship/internal/console"
	"github.com/specialistvlad/pyship/internal/executor"
	"github.com/specialistvlad/pyship/internal/session"
	"github.com/specialistvlad/pyship/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, sh *testutil.FakeShell) *session.Session {
	t.Helper()
	return session.New(config.Default(t.TempDir()), sh, console.New(&bytes.Buffer{}, strings.NewReader(""), false))
}

func TestLaunchApp(t *testing.T) {
	sh := testutil.NewFakeShell()
	s := newSession(t, sh)

	status, err := LaunchApp(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, executor.StatusDone, status)

	calls := sh.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "python main.py", calls[0].String())
	assert.Same(t, s.Console.In(), calls[0].Stdin)
	assert.Equal(t, s.Project.Dir, calls[0].Dir)
}

func TestLaunchApp_NonZeroExit(t *testing.T) {
	sh := testutil.NewFakeShell().On("main.py", testutil.Exit(1))

	_, err := LaunchApp(context.Background(), newSession(t, sh))
	require.Error(t, err)
	failure := executor.AsFailure(err)
	assert.Equal(t, executor.KindAppFailed, failure.Kind)
	assert.Equal(t, "Application failed to start", failure.Message)
	assert.Equal(t, "Try running 'pyship install' first", failure.Remediation)
}

func TestLaunchApp_StartError(t *testing.T) {
	sh := testutil.NewFakeShell().On("main.py", testutil.Fail(errors.New("no such file")))

	_, err := LaunchApp(context.Background(), newSession(t, sh))
	require.Error(t, err)
	failure := executor.AsFailure(err)
	assert.Equal(t, executor.KindInternal, failure.Kind)
	assert.Equal(t, "Try running 'pyship install' first", failure.Remediation)
}
