package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/specialistvlad/pyship/internal/executor"
	"github.com/specialistvlad/pyship/internal/registry"
	"github.com/specialistvlad/pyship/internal/session"
)

// SimpleModule is a test helper that registers a stub handler for each of
// Steps. A stub returns the error in Errors for its name, or StatusDone,
// and records that it ran.
type SimpleModule struct {
	Steps  []string
	Errors map[string]error

	mu  sync.Mutex
	ran []string
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	for _, name := range m.Steps {
		r.RegisterStep(name, &registry.RegisteredStep{
			Description: "stub " + name,
			Fn:          m.stub(name),
		})
	}
}

func (m *SimpleModule) stub(name string) executor.Handler {
	return func(context.Context, *session.Session) (executor.Status, error) {
		m.mu.Lock()
		m.ran = append(m.ran, name)
		m.mu.Unlock()
		if err := m.Errors[name]; err != nil {
			return executor.StatusFailed, err
		}
		return executor.StatusDone, nil
	}
}

// Ran returns the names of the stubs that ran, in order.
func (m *SimpleModule) Ran() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.ran)
}
