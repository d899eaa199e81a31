// Package registry provides the central "glue" for the module system.
//
// The Registry maps the step names used by workflows (e.g., "env_create") to
// the compiled Go handlers that implement them. Modules register themselves
// at startup; workflows are then validated against the registry so that a
// misspelled or unregistered step is caught before anything runs.
package registry
