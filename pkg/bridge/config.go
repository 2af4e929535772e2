// Package bridge runs the helper programs and script hosts that some dialog
// backends delegate to: synchronous execution with captured output and exit
// code, detached spawning for fire-and-forget notifications and memoized
// PATH probing.
package bridge

import (
	"io"
	"time"
)

// CommandConfig defines the configuration for running a helper program.
type CommandConfig struct {
	// Command is the program to execute (e.g., "zenity", "osascript").
	Command string

	// Args are the arguments to pass to the command. They are passed as a
	// vector and never through a shell.
	Args []string

	// Stdin, when set, is copied to the process's standard input.
	Stdin io.Reader
}

// Output holds the result of a command execution.
type Output struct {
	// Stdout is the captured standard output, byte for byte.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// ExitCode is the process exit code.
	ExitCode int

	// Duration is the wall-clock time the command took to run.
	Duration time.Duration
}

// Success reports whether the process exited with status 0.
func (o Output) Success() bool {
	return o.ExitCode == 0
}
