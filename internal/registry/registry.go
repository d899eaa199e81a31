package registry

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/specialistvlad/pyship/internal/executor"
)

// Module is the interface that all step modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// RegisteredStep holds the compiled Go parts of a step.
type RegisteredStep struct {
	Description string
	Fn          executor.Handler
}

// Registry holds all the registered steps for a single application instance.
type Registry struct {
	steps map[string]*RegisteredStep
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{steps: make(map[string]*RegisteredStep)}
}

// RegisterStep registers a Go handler under name. Registering the same name
// twice is a programming error and panics.
func (r *Registry) RegisterStep(name string, step *RegisteredStep) {
	if _, exists := r.steps[name]; exists {
		panic(fmt.Sprintf("step handler with name '%s' already registered", name))
	}
	if step == nil || step.Fn == nil {
		panic(fmt.Sprintf("step handler '%s' has no function", name))
	}
	slog.Debug("Registering step handler.", "name", name)
	r.steps[name] = step
}

// Lookup implements executor.Resolver.
func (r *Registry) Lookup(name string) (executor.Handler, bool) {
	step, ok := r.steps[name]
	if !ok {
		return nil, false
	}
	return step.Fn, true
}

// Describe returns the description of a registered step.
func (r *Registry) Describe(name string) (string, bool) {
	step, ok := r.steps[name]
	if !ok {
		return "", false
	}
	return step.Description, true
}

// Names returns the registered step names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.steps))
}
