package registry

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/pyship/internal/executor"
)

// ValidateWorkflows checks that every step referenced by the workflows is
// registered. All problems are reported together.
func (r *Registry) ValidateWorkflows(workflows ...executor.Workflow) error {
	var errs []error
	for _, wf := range workflows {
		if len(wf.Steps) == 0 {
			errs = append(errs, fmt.Errorf("workflow '%s' has no steps", wf.Name))
		}
		for _, ref := range wf.Steps {
			if _, ok := r.steps[ref.Name]; !ok {
				errs = append(errs, fmt.Errorf("workflow '%s': step '%s' is not registered", wf.Name, ref.Name))
			}
		}
	}
	return errors.Join(errs...)
}
