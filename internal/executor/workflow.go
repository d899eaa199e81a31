package executor

import (
	"context"

	"github.com/specialistvlad/pyship/internal/session"
)

// Status is the outcome of one step.
type Status string

const (
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusIgnored Status = "ignored"
	StatusFailed  Status = "failed"
)

// Handler is the Go implementation of a step. It returns StatusDone or
// StatusSkipped on success.
type Handler func(ctx context.Context, s *session.Session) (Status, error)

// StepRef names a registered step inside a workflow.
type StepRef struct {
	Name string
	// BestEffort steps never stop the workflow or change its outcome.
	BestEffort bool
}

// Step references a checked step.
func Step(name string) StepRef {
	return StepRef{Name: name}
}

// BestEffort references a step whose failure is ignored.
func BestEffort(name string) StepRef {
	return StepRef{Name: name, BestEffort: true}
}

// Workflow is an ordered list of steps.
type Workflow struct {
	Name  string
	Steps []StepRef
}

// StepResult records what happened to one step.
type StepResult struct {
	Name   string
	Status Status
	Err    error
}

// Report summarises a run.
type Report struct {
	Workflow string
	Steps    []StepResult
	// Failure is set when a checked step stopped the run.
	Failure *Failure
}

// Succeeded reports whether every checked step completed.
func (r *Report) Succeeded() bool {
	return r.Failure == nil
}

// Status returns the recorded status of the named step, or "" when it never ran.
func (r *Report) Status(step string) Status {
	for _, s := range r.Steps {
		if s.Name == step {
			return s.Status
		}
	}
	return ""
}
