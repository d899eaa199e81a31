// Package shell defines how pyship talks to external programs. Step modules
// depend only on the Commander interface; the OS-backed implementation lives
// in the localexecutor package and tests substitute a recording fake.
package shell
