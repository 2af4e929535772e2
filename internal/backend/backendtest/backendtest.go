// Package backendtest provides a recording bridge.Runner and a compliance
// suite shared by the helper-program backends.
package backendtest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/sibikrish3000/nativedialog/pkg/bridge"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// Call is one recorded invocation.
type Call struct {
	Command string
	Args    []string
	// Stdin is everything the runner read from the command's input.
	Stdin string
	// Detached is true for Start.
	Detached bool
}

// Runner records invocations and answers Run with queued outputs. When the
// queue is empty Run answers with Default.
type Runner struct {
	mu      sync.Mutex
	calls   []Call
	queue   []Reply
	Default Reply

	// OnRun, when set, observes each synchronous call before it is answered.
	OnRun func(Call)
}

// Reply is a canned answer to Run or Start.
type Reply struct {
	Output bridge.Output
	Err    error
}

// Stdout is a successful reply with the given output.
func Stdout(s string) Reply {
	return Reply{Output: bridge.Output{Stdout: s}}
}

// Exit is a reply with the given exit code, stdout and stderr.
func Exit(code int, stdout, stderr string) Reply {
	return Reply{Output: bridge.Output{ExitCode: code, Stdout: stdout, Stderr: stderr}}
}

// LaunchFailure is a reply for a program that cannot be started.
func LaunchFailure() Reply {
	return Reply{Err: fmt.Errorf("%w: fake", dialog.ErrLaunch)}
}

// NewRunner returns a Runner answering with replies in order.
func NewRunner(replies ...Reply) *Runner {
	return &Runner{queue: replies}
}

func (r *Runner) Run(_ context.Context, config bridge.CommandConfig) (bridge.Output, error) {
	call := Call{Command: config.Command, Args: slices.Clone(config.Args)}
	if config.Stdin != nil {
		data, err := io.ReadAll(config.Stdin)
		if err != nil {
			return bridge.Output{}, err
		}
		call.Stdin = string(data)
	}
	if r.OnRun != nil {
		r.OnRun(call)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
	reply := r.Default
	if len(r.queue) > 0 {
		reply, r.queue = r.queue[0], r.queue[1:]
	}
	return reply.Output, reply.Err
}

func (r *Runner) Start(config bridge.CommandConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Command: config.Command, Args: slices.Clone(config.Args), Detached: true})
	if len(r.queue) > 0 {
		var reply Reply
		reply, r.queue = r.queue[0], r.queue[1:]
		return reply.Err
	}
	return r.Default.Err
}

// Calls returns the recorded invocations.
func (r *Runner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Last returns the most recent invocation.
func (r *Runner) Last(t *testing.T) Call {
	t.Helper()
	calls := r.Calls()
	if len(calls) == 0 {
		t.Fatal("no invocation recorded")
	}
	return calls[len(calls)-1]
}

// Factory builds a backend around a runner.
type Factory func(runner bridge.Runner) dialog.Backend

// RunBackendTests checks the contract every helper-program backend honors.
// cancel is the reply the backend's program gives when the user dismisses a
// dialog.
func RunBackendTests(t *testing.T, factory Factory, cancel Reply) {
	t.Helper()

	t.Run("NameNonEmpty", func(t *testing.T) {
		if factory(NewRunner()).Name() == "" {
			t.Error("name must be non-empty")
		}
	})

	t.Run("CancelIsNoResult", func(t *testing.T) {
		b := factory(&Runner{Default: cancel})

		if p, ok, err := b.PickFile(dialog.FileDialogSpec{Title: "t"}); ok || err != nil || p != "" {
			t.Errorf("PickFile() = (%q, %v, %v)", p, ok, err)
		}
		if ps, ok, err := b.PickFiles(dialog.FileDialogSpec{Title: "t"}); ok || err != nil || ps != nil {
			t.Errorf("PickFiles() = (%q, %v, %v)", ps, ok, err)
		}
		if p, ok, err := b.SaveFile(dialog.FileDialogSpec{Title: "t"}); ok || err != nil || p != "" {
			t.Errorf("SaveFile() = (%q, %v, %v)", p, ok, err)
		}
		if p, ok, err := b.PickFolder(dialog.FolderDialogSpec{Title: "t"}); ok || err != nil || p != "" {
			t.Errorf("PickFolder() = (%q, %v, %v)", p, ok, err)
		}
		for _, mode := range []dialog.TextInputMode{dialog.SingleLine, dialog.MultiLine, dialog.Password} {
			if s, ok, err := b.TextInput(dialog.TextInputSpec{Title: "t", Value: "v", Mode: mode}); ok || err != nil || s != "" {
				t.Errorf("TextInput(%v) = (%q, %v, %v)", mode, s, ok, err)
			}
		}
		if c, ok, err := b.PickColor(dialog.ColorSpec{Title: "t"}); ok || err != nil || c != (dialog.RGB{}) {
			t.Errorf("PickColor() = (%v, %v, %v)", c, ok, err)
		}
	})

	t.Run("MessageStaysInButtonSet", func(t *testing.T) {
		sets := []dialog.MessageButtons{dialog.ButtonsOk, dialog.ButtonsOkCancel, dialog.ButtonsYesNo, dialog.ButtonsYesNoCancel}
		for _, buttons := range sets {
			b := factory(&Runner{Default: cancel})
			r, ok, err := b.ShowMessage(dialog.MessageSpec{Title: "t", Message: "m", Buttons: buttons})
			if err != nil {
				t.Fatalf("ShowMessage(%v) error = %v", buttons, err)
			}
			if ok && !buttons.Allows(r) {
				t.Errorf("ShowMessage(%v) = %v, outside the button set", buttons, r)
			}
		}
	})

	t.Run("EmptySelectionIsNoResult", func(t *testing.T) {
		b := factory(&Runner{Default: Stdout("\n")})
		if ps, ok, err := b.PickFiles(dialog.FileDialogSpec{Title: "t"}); ok || err != nil || len(ps) != 0 {
			t.Errorf("PickFiles() = (%q, %v, %v)", ps, ok, err)
		}
	})

	t.Run("LaunchFailure", func(t *testing.T) {
		b := factory(&Runner{Default: LaunchFailure()})
		if _, _, err := b.PickFile(dialog.FileDialogSpec{}); !errors.Is(err, dialog.ErrLaunch) {
			t.Errorf("PickFile() error = %v, want ErrLaunch", err)
		}
		if err := b.Notify(dialog.NotifySpec{Title: "t"}); !errors.Is(err, dialog.ErrLaunch) {
			t.Errorf("Notify() error = %v, want ErrLaunch", err)
		}
	})

	t.Run("NotifyDetaches", func(t *testing.T) {
		r := NewRunner()
		if err := factory(r).Notify(dialog.NotifySpec{Title: "t", Message: "m"}); err != nil {
			t.Fatalf("Notify() error = %v", err)
		}
		if call := r.Last(t); !call.Detached {
			t.Errorf("Notify() ran %q synchronously", call.Command)
		}
	})

	t.Run("UnexpectedExitIsProcessError", func(t *testing.T) {
		b := factory(&Runner{Default: Exit(42, "", "boom")})
		var pe *dialog.ProcessError
		if _, _, err := b.ShowMessage(dialog.MessageSpec{Buttons: dialog.ButtonsOkCancel}); !errors.As(err, &pe) && err != nil {
			t.Errorf("ShowMessage() error = %v, want *dialog.ProcessError", err)
		}
	})
}
