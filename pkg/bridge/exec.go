package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/sibikrish3000/nativedialog/pkg/dialog"
	"golang.org/x/term"
)

// IsTerminal reports whether the given file descriptor is a terminal.
// Exported for use in CLI auto-detection.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Runner executes helper programs. Backends depend on it so tests can
// substitute a recording fake.
type Runner interface {
	// Run executes the command and waits for it to exit. A non-zero exit is
	// reported through Output.ExitCode, not as an error.
	Run(ctx context.Context, config CommandConfig) (Output, error)

	// Start launches the command and returns without waiting for it.
	Start(config CommandConfig) error
}

// RunnerFunc adapts a plain function to a Runner whose Start runs the
// function in the background and discards the result.
type RunnerFunc func(ctx context.Context, config CommandConfig) (Output, error)

func (f RunnerFunc) Run(ctx context.Context, config CommandConfig) (Output, error) {
	return f(ctx, config)
}

func (f RunnerFunc) Start(config CommandConfig) error {
	go f(context.Background(), config)
	return nil
}

// System is the Runner backed by os/exec.
var System Runner = systemRunner{}

type systemRunner struct{}

func (systemRunner) Run(ctx context.Context, config CommandConfig) (Output, error) {
	return Execute(ctx, config)
}

func (systemRunner) Start(config CommandConfig) error {
	return Start(config)
}

func buildCommand(ctx context.Context, config CommandConfig) *exec.Cmd {
	cmd := exec.CommandContext(ctx, config.Command, config.Args...)
	if config.Stdin != nil {
		cmd.Stdin = config.Stdin
	}
	return cmd
}

func launchError(config CommandConfig, err error) error {
	return fmt.Errorf("%w: failed to start command %q: %w", dialog.ErrLaunch, config.Command, err)
}

// Execute runs a helper program to completion, capturing its output. It uses
// exec.CommandContext so cancelling ctx kills the process.
func Execute(ctx context.Context, config CommandConfig) (Output, error) {
	cmd := buildCommand(ctx, config)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return Output{}, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return Output{}, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	start := time.Now()

	if err := cmd.Start(); err != nil {
		return Output{}, launchError(config, err)
	}

	// Drain stdout and stderr concurrently. Output is kept verbatim since
	// multi-line text input depends on embedded and trailing line breaks.
	var stdoutBuf, stderrBuf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		io.Copy(&stdoutBuf, stdoutPipe)
	}()

	go func() {
		defer wg.Done()
		io.Copy(&stderrBuf, stderrPipe)
	}()

	// Wait for the readers before Wait closes the pipes.
	wg.Wait()

	waitErr := cmd.Wait()

	output := Output{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: time.Since(start),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
		} else {
			return output, fmt.Errorf("command execution failed: %w", waitErr)
		}
	}

	logf("%s exited with status %d after %s", config.Command, output.ExitCode, output.Duration.Round(time.Millisecond))
	return output, nil
}

// Start launches a helper program without waiting for it. Its output is
// discarded and a background goroutine reaps the process when it exits.
func Start(config CommandConfig) error {
	cmd := buildCommand(context.Background(), config)

	if err := cmd.Start(); err != nil {
		return launchError(config, err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logf("%s exited: %v", config.Command, err)
		}
	}()
	return nil
}

// ExitError converts a non-zero exit into a *dialog.ProcessError.
func ExitError(config CommandConfig, out Output) error {
	return &dialog.ProcessError{
		Program: config.Command,
		Code:    out.ExitCode,
		Stderr:  out.Stderr,
	}
}
