package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertStepFinished checks text log output for the executor's completion
// record of step with the given status.
func AssertStepFinished(t *testing.T, logOutput, step, status string) {
	t.Helper()

	expected := fmt.Sprintf("step=%s status=%s", step, status)
	require.True(t,
		strings.Contains(logOutput, expected),
		"expected log output for step '%s' with status '%s' was not found in logs", step, status,
	)
}
