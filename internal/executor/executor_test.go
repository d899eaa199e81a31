package executor

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/pyship/internal/config"
	"github.com/specialistvlad/pyship/internal/console"
	"github.com/specialistvlad/pyship/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapResolver map[string]Handler

func (m mapResolver) Lookup(name string) (Handler, bool) {
	h, ok := m[name]
	return h, ok
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(config.Default(t.TempDir()), nil, console.New(&bytes.Buffer{}, nil, false))
}

func recorder(calls *[]string, name string, status Status, err error) Handler {
	return func(context.Context, *session.Session) (Status, error) {
		*calls = append(*calls, name)
		return status, err
	}
}

func TestRun_AllStepsInOrder(t *testing.T) {
	var calls []string
	exec := New(mapResolver{
		"a": recorder(&calls, "a", StatusDone, nil),
		"b": recorder(&calls, "b", StatusSkipped, nil),
		"c": recorder(&calls, "c", "", nil),
	})

	report := exec.Run(context.Background(), Workflow{Name: "wf", Steps: []StepRef{Step("a"), Step("b"), Step("c")}}, newSession(t))

	require.True(t, report.Succeeded())
	assert.Equal(t, []string{"a", "b", "c"}, calls)
	assert.Equal(t, StatusDone, report.Status("a"))
	assert.Equal(t, StatusSkipped, report.Status("b"))
	assert.Equal(t, StatusDone, report.Status("c"), "empty status counts as done")
}

func TestRun_StopsAtFirstCheckedFailure(t *testing.T) {
	var calls []string
	exec := New(mapResolver{
		"install": recorder(&calls, "install", "", CommandFailed("Failed to install dependencies", "check the manifest", nil)),
		"icon":    recorder(&calls, "icon", StatusDone, nil),
	})

	report := exec.Run(context.Background(), Workflow{Steps: []StepRef{Step("install"), BestEffort("icon")}}, newSession(t))

	require.False(t, report.Succeeded())
	assert.Equal(t, []string{"install"}, calls)
	assert.Equal(t, KindCommandFailed, report.Failure.Kind)
	assert.Equal(t, "install", report.Failure.Step)
	assert.Equal(t, StatusFailed, report.Status("install"))
	assert.Equal(t, Status(""), report.Status("icon"))
}

func TestRun_BestEffortFailureIsIgnored(t *testing.T) {
	var calls []string
	exec := New(mapResolver{
		"icon": recorder(&calls, "icon", "", errors.New("generator crashed")),
		"next": recorder(&calls, "next", StatusDone, nil),
	})

	report := exec.Run(context.Background(), Workflow{Steps: []StepRef{BestEffort("icon"), Step("next")}}, newSession(t))

	require.True(t, report.Succeeded())
	assert.Equal(t, []string{"icon", "next"}, calls)
	assert.Equal(t, StatusIgnored, report.Status("icon"))
}

func TestRun_PlainErrorBecomesInternalFailure(t *testing.T) {
	boom := errors.New("boom")
	exec := New(mapResolver{"a": func(context.Context, *session.Session) (Status, error) { return "", boom }})

	report := exec.Run(context.Background(), Workflow{Steps: []StepRef{Step("a")}}, newSession(t))

	require.NotNil(t, report.Failure)
	assert.Equal(t, KindInternal, report.Failure.Kind)
	assert.ErrorIs(t, report.Failure, boom)
}

func TestRun_UnknownStepRunsNothing(t *testing.T) {
	var calls []string
	exec := New(mapResolver{"a": recorder(&calls, "a", StatusDone, nil)})

	report := exec.Run(context.Background(), Workflow{Steps: []StepRef{Step("a"), Step("ghost")}}, newSession(t))

	require.NotNil(t, report.Failure)
	assert.Equal(t, "ghost", report.Failure.Step)
	assert.Empty(t, calls)
}

func TestRun_CancelledContext(t *testing.T) {
	var calls []string
	exec := New(mapResolver{"a": recorder(&calls, "a", StatusDone, nil)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := exec.Run(ctx, Workflow{Steps: []StepRef{Step("a")}}, newSession(t))

	require.NotNil(t, report.Failure)
	assert.ErrorIs(t, report.Failure, context.Canceled)
	assert.Empty(t, calls)
}

func TestFailure_Error(t *testing.T) {
	f := CommandFailed("Build failed", "", errors.New("exit status 1"))
	assert.Equal(t, "Build failed: exit status 1", f.Error())

	f.Step = "package_build"
	assert.Equal(t, "package_build: Build failed: exit status 1", f.Error())

	assert.Equal(t, "missing_prerequisite", KindMissingPrerequisite.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestAsFailure_KeepsWrappedFailure(t *testing.T) {
	orig := MissingPrerequisite("Virtual environment not found", "Run install first")
	wrapped := errors.Join(errors.New("context"), orig)

	assert.Same(t, orig, AsFailure(wrapped))
}
