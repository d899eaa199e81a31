// Package config defines the format-agnostic project model for pyship, along
// with the Loader interface that format-specific readers implement.
//
// The `config.Project` is the single source of truth for the step modules:
// every path, tool name and packaging flag they use is read from it.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
