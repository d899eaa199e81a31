package config

import "context"

// Loader is the interface for a format-specific project loader.
type Loader interface {
	// Load reads the project file at path, applies defaults for anything the
	// file omits, and returns a validated Project rooted at dir. A missing
	// file yields the default project.
	Load(ctx context.Context, dir, path string) (*Project, error)
}
