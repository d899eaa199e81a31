package cli

import (
	"errors"

	"github.com/specialistvlad/pyship/internal/executor"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// workflowError maps a workflow outcome to an exit code. The failure was
// already shown on the console, so the message stays empty.
func workflowError(err error) error {
	if err == nil {
		return nil
	}
	var failure *executor.Failure
	if errors.As(err, &failure) {
		return &ExitError{Code: ExitFailure}
	}
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}
