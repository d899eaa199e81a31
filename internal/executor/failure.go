package executor

import (
	"errors"
	"fmt"
)

// Kind classifies why a workflow stopped.
type Kind int

const (
	// KindMissingPrerequisite: something the step needs is absent (runtime
	// not on PATH, environment not provisioned).
	KindMissingPrerequisite Kind = iota + 1
	// KindCommandFailed: an external command ran and reported failure.
	KindCommandFailed
	// KindAppFailed: the launched application exited non-zero.
	KindAppFailed
	// KindInternal: the step could not run at all (start failure, interrupt).
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindMissingPrerequisite:
		return "missing_prerequisite"
	case KindCommandFailed:
		return "command_failed"
	case KindAppFailed:
		return "app_failed"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Failure is the operator-facing description of a stopped workflow.
type Failure struct {
	Kind Kind
	// Step is filled in by the executor.
	Step        string
	Message     string
	Remediation string
	Err         error
}

func (f *Failure) Error() string {
	msg := f.Message
	if f.Step != "" {
		msg = f.Step + ": " + msg
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// MissingPrerequisite builds a KindMissingPrerequisite failure.
func MissingPrerequisite(message, remediation string) *Failure {
	return &Failure{Kind: KindMissingPrerequisite, Message: message, Remediation: remediation}
}

// CommandFailed builds a KindCommandFailed failure. err may be nil.
func CommandFailed(message, remediation string, err error) *Failure {
	return &Failure{Kind: KindCommandFailed, Message: message, Remediation: remediation, Err: err}
}

// AppFailed builds a KindAppFailed failure.
func AppFailed(message, remediation string, err error) *Failure {
	return &Failure{Kind: KindAppFailed, Message: message, Remediation: remediation, Err: err}
}

// AsFailure converts any step error into a *Failure, keeping typed failures
// as they are.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: KindInternal, Message: "unexpected error", Err: err}
}
