// Package provision implements presence-check-then-create: a resource is
// created only when it is absent, and an existing one is reused unchanged.
package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/pyship/internal/ctxlog"
	"github.com/specialistvlad/pyship/internal/fsutil"
)

// Status reports what Ensure did.
type Status int

const (
	// StatusExisting means the resource was already present; nothing ran.
	StatusExisting Status = iota
	// StatusCreated means the resource was absent and has been created.
	StatusCreated
)

func (s Status) String() string {
	switch s {
	case StatusExisting:
		return "existing"
	case StatusCreated:
		return "created"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ErrStillMissing is returned when Create succeeded but the resource is
// still not present afterwards.
var ErrStillMissing = errors.New("resource still missing after creation")

// Resource is something that can be checked for and created.
type Resource struct {
	Name   string
	Exists func() (bool, error)
	Create func(ctx context.Context) error
}

// File returns an Exists check for a filesystem path.
func File(path string) func() (bool, error) {
	return func() (bool, error) { return fsutil.Exists(path) }
}

// Ensure creates r if it is absent.
func Ensure(ctx context.Context, r Resource) (Status, error) {
	logger := ctxlog.FromContext(ctx).With("resource", r.Name)

	present, err := r.Exists()
	if err != nil {
		return StatusExisting, fmt.Errorf("checking %s: %w", r.Name, err)
	}
	if present {
		logger.Debug("Resource already present.")
		return StatusExisting, nil
	}

	logger.Debug("Resource absent, creating.")
	if err := r.Create(ctx); err != nil {
		return StatusCreated, fmt.Errorf("creating %s: %w", r.Name, err)
	}

	present, err = r.Exists()
	if err != nil {
		return StatusCreated, fmt.Errorf("checking %s: %w", r.Name, err)
	}
	if !present {
		return StatusCreated, fmt.Errorf("%s: %w", r.Name, ErrStillMissing)
	}
	logger.Debug("Resource created.")
	return StatusCreated, nil
}
