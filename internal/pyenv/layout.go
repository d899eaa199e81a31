// Package pyenv knows the on-disk shape of a Python virtual environment and
// how to read interpreter versions.
package pyenv

import (
	"path/filepath"
	"strings"
)

// Layout locates the pieces of a virtual environment rooted at Root.
type Layout struct {
	Root string
	// GOOS selects the Windows ("Scripts", ".exe") or POSIX ("bin") shape.
	GOOS string
}

// NewLayout returns the layout of the environment at root for goos.
func NewLayout(root, goos string) Layout {
	return Layout{Root: root, GOOS: goos}
}

func (l Layout) windows() bool {
	return l.GOOS == "windows"
}

// BinDir is the directory holding the interpreter and console scripts.
func (l Layout) BinDir() string {
	if l.windows() {
		return filepath.Join(l.Root, "Scripts")
	}
	return filepath.Join(l.Root, "bin")
}

// Python is the environment's interpreter.
func (l Layout) Python() string {
	if l.windows() {
		return filepath.Join(l.BinDir(), "python.exe")
	}
	return filepath.Join(l.BinDir(), "python")
}

// Marker is the file whose presence means the environment was provisioned.
func (l Layout) Marker() string {
	if l.windows() {
		return filepath.Join(l.BinDir(), "activate.bat")
	}
	return filepath.Join(l.BinDir(), "activate")
}

// ActivationEnv returns the variables an activation script would export,
// given the current PATH value.
func (l Layout) ActivationEnv(currentPath string) []string {
	sep := ":"
	if l.windows() {
		sep = ";"
	}
	path := l.BinDir()
	if currentPath != "" {
		path = strings.Join([]string{path, currentPath}, sep)
	}
	return []string{
		"VIRTUAL_ENV=" + l.Root,
		"PATH=" + path,
	}
}
