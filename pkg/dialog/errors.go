package dialog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Backends wrap them with context; match with errors.Is.
var (
	// ErrUnknownBackend reports an override naming no backend of this platform.
	ErrUnknownBackend = errors.New("dialog: unknown backend")

	// ErrNoBackend reports that no backend could be selected.
	ErrNoBackend = errors.New("dialog: no backend available")

	// ErrInit reports that a toolkit or notification subsystem failed to start.
	ErrInit = errors.New("dialog: backend initialization failed")

	// ErrDecode reports backend output that does not fit the canonical result
	// even though the backend reported success.
	ErrDecode = errors.New("dialog: cannot decode backend output")

	// ErrLaunch reports that a helper program or script host could not be
	// started.
	ErrLaunch = errors.New("dialog: cannot launch backend process")

	// ErrUnsupported reports a backend that cannot run on this platform.
	ErrUnsupported = errors.New("dialog: backend not supported on this platform")
)

// ProcessError is returned when a helper program exits with a code that the
// calling operation does not assign any meaning to.
type ProcessError struct {
	Program string
	Code    int
	Stderr  string
	// Err is the underlying *exec.ExitError, when there is one.
	Err error
}

func (e *ProcessError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dialog: %s exited with status %d", e.Program, e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		b.WriteString(": ")
		b.WriteString(s)
	}
	return b.String()
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// DecodeError wraps ErrDecode with the offending output.
func DecodeError(backend, what, output string) error {
	return fmt.Errorf("%w: %s returned invalid %s %q", ErrDecode, backend, what, output)
}
