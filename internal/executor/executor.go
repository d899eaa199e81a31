package executor

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/session"
)

// Resolver finds the handler registered under a step name.
type Resolver interface {
	Lookup(name string) (Handler, bool)
}

// Executor runs workflows one step at a time.
type Executor struct {
	resolver Resolver
}

// New creates an executor resolving step names through r.
func New(r Resolver) *Executor {
	return &Executor{resolver: r}
}

// Run executes wf against s. Unknown steps are a programming error and are
// reported before anything runs. The returned report is never nil.
func (e *Executor) Run(ctx context.Context, wf Workflow, s *session.Session) *Report {
	logger := ctxlog.FromContext(ctx).With("workflow", wf.Name)
	report := &Report{Workflow: wf.Name}

	handlers := make([]Handler, len(wf.Steps))
	for i, ref := range wf.Steps {
		h, ok := e.resolver.Lookup(ref.Name)
		if !ok {
			report.Failure = &Failure{
				Kind:    KindInternal,
				Step:    ref.Name,
				Message: fmt.Sprintf("step %q is not registered", ref.Name),
			}
			return report
		}
		handlers[i] = h
	}

	logger.Info("🚀 Starting workflow.", "steps", len(wf.Steps))
	for i, ref := range wf.Steps {
		stepLogger := logger.With("step", ref.Name)
		stepCtx := ctxlog.WithLogger(ctx, stepLogger)

		if err := ctx.Err(); err != nil {
			report.Failure = &Failure{Kind: KindInternal, Step: ref.Name, Message: "interrupted", Err: err}
			stepLogger.Warn("Workflow interrupted before step.")
			return report
		}

		stepLogger.Info("▶️ Starting step.", "best_effort", ref.BestEffort)
		status, err := handlers[i](stepCtx, s)
		if err != nil {
			if ref.BestEffort {
				stepLogger.Debug("Best-effort step failed, continuing.", "error", err)
				report.Steps = append(report.Steps, StepResult{Name: ref.Name, Status: StatusIgnored, Err: err})
				continue
			}
			failure := AsFailure(err)
			failure.Step = ref.Name
			stepLogger.Error("Step failed.", "kind", failure.Kind.String(), "error", failure)
			report.Steps = append(report.Steps, StepResult{Name: ref.Name, Status: StatusFailed, Err: failure})
			report.Failure = failure
			return report
		}

		if status == "" {
			status = StatusDone
		}
		report.Steps = append(report.Steps, StepResult{Name: ref.Name, Status: status})
		stepLogger.Info("✅ Finished step.", "status", string(status))
	}

	logger.Info("🏁 Workflow finished.")
	return report
}
