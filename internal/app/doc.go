// Package app contains the core application logic. It wires the project,
// the step registry, and the operator console together and runs the
// install, run, and build workflows, decoupled from any specific entrypoint
// like a CLI.
package app
