// Package executor runs a workflow: an ordered list of named steps executed
// strictly one after another. The first failure of a checked step stops the
// run and is reported as a typed *Failure; best-effort steps may fail
// without affecting the outcome.
package executor
