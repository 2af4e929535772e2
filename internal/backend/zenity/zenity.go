// Package zenity implements dialogs by running the zenity helper program
// found on GNOME-family desktops.
package zenity

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sibikrish3000/nativedialog/pkg/bridge"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// Program is the helper program name, also used as the override name.
const Program = "zenity"

// Exit statuses zenity documents for its dialogs.
const (
	exitOK     = 0
	exitCancel = 1
)

// Backend runs zenity through a bridge.Runner.
type Backend struct {
	runner bridge.Runner
}

// New returns a Backend that executes the real program.
func New() *Backend {
	return NewWithRunner(bridge.System)
}

// NewWithRunner returns a Backend that executes through runner.
func NewWithRunner(runner bridge.Runner) *Backend {
	return &Backend{runner: runner}
}

func (b *Backend) Name() string { return Program }

func (b *Backend) run(args []string) (bridge.Output, error) {
	return b.runWithInput(args, nil)
}

func (b *Backend) runWithInput(args []string, stdin io.Reader) (bridge.Output, error) {
	return b.runner.Run(context.Background(), bridge.CommandConfig{Command: Program, Args: args, Stdin: stdin})
}

// result interprets the exit status of a dialog that either produces a value
// or is cancelled.
func (b *Backend) result(args []string) (string, bool, error) {
	return b.resultWithInput(args, nil)
}

func (b *Backend) resultWithInput(args []string, stdin io.Reader) (string, bool, error) {
	out, err := b.runWithInput(args, stdin)
	if err != nil {
		return "", false, err
	}
	switch out.ExitCode {
	case exitOK:
		return out.Stdout, true, nil
	case exitCancel:
		return "", false, nil
	default:
		return "", false, bridge.ExitError(bridge.CommandConfig{Command: Program}, out)
	}
}

func iconFlag(icon dialog.MessageIcon) string {
	switch icon {
	case dialog.IconWarning:
		return "--warning"
	case dialog.IconError:
		return "--error"
	case dialog.IconQuestion:
		return "--question"
	default:
		return "--info"
	}
}

func messageArgs(spec dialog.MessageSpec) []string {
	args := []string{"--title", spec.Title, "--text", spec.Message, iconFlag(spec.Icon)}
	switch spec.Buttons {
	case dialog.ButtonsOkCancel:
		args = append(args, "--ok-label", "OK", "--extra-button", "Cancel")
	case dialog.ButtonsYesNo:
		args = append(args, "--ok-label", "Yes", "--extra-button", "No")
	case dialog.ButtonsYesNoCancel:
		args = append(args, "--ok-label", "Yes", "--extra-button", "Cancel", "--extra-button", "No")
	default:
		args = append(args, "--ok-label", "OK")
	}
	return args
}

// ShowMessage maps the accept button to exit 0. Extra buttons exit 1 and
// print their label; exit 1 without a label is a closed window.
func (b *Backend) ShowMessage(spec dialog.MessageSpec) (dialog.MessageResult, bool, error) {
	out, err := b.run(messageArgs(spec))
	if err != nil {
		return 0, false, err
	}
	switch out.ExitCode {
	case exitOK:
		return spec.Buttons.Affirmative(), true, nil
	case exitCancel:
		if r, ok := spec.Buttons.ResultForLabel(strings.TrimSpace(out.Stdout)); ok {
			return r, true, nil
		}
		return spec.Buttons.Rejective(), true, nil
	default:
		return 0, false, bridge.ExitError(bridge.CommandConfig{Command: Program}, out)
	}
}

func filterArgs(filters []dialog.FileFilter) []string {
	var args []string
	for _, f := range filters {
		args = append(args, "--file-filter", f.Description+" | "+f.JoinPatterns(" "))
	}
	return append(args, "--file-filter", "All Files (*) | *")
}

func initialPath(spec dialog.FileDialogSpec) string {
	if p, ok := spec.InitialPath(); ok {
		return p
	}
	return "."
}

func fileArgs(spec dialog.FileDialogSpec, multiple bool) []string {
	args := []string{"--file-selection", "--title", spec.Title, "--filename", initialPath(spec)}
	if multiple {
		args = append(args, "--multiple", "--separator", "\n")
	}
	return append(args, filterArgs(spec.Filters)...)
}

func saveArgs(spec dialog.FileDialogSpec) []string {
	args := []string{"--file-selection", "--save", "--confirm-overwrite", "--title", spec.Title, "--filename", initialPath(spec)}
	return append(args, filterArgs(spec.Filters)...)
}

func folderArgs(spec dialog.FolderDialogSpec) []string {
	dir := spec.Directory
	if dir == "" {
		dir = "."
	}
	return []string{"--file-selection", "--directory", "--title", spec.Title, "--filename", dir}
}

func (b *Backend) PickFile(spec dialog.FileDialogSpec) (string, bool, error) {
	return b.firstPath(fileArgs(spec, false))
}

func (b *Backend) PickFiles(spec dialog.FileDialogSpec) ([]string, bool, error) {
	out, ok, err := b.result(fileArgs(spec, true))
	if !ok || err != nil {
		return nil, false, err
	}
	paths, ok := dialog.SplitPaths(out)
	if !ok {
		return nil, false, nil
	}
	return paths, true, nil
}

func (b *Backend) SaveFile(spec dialog.FileDialogSpec) (string, bool, error) {
	return b.firstPath(saveArgs(spec))
}

func (b *Backend) PickFolder(spec dialog.FolderDialogSpec) (string, bool, error) {
	return b.firstPath(folderArgs(spec))
}

func (b *Backend) firstPath(args []string) (string, bool, error) {
	out, ok, err := b.result(args)
	if !ok || err != nil {
		return "", false, err
	}
	paths, ok := dialog.SplitPaths(out)
	if !ok {
		return "", false, nil
	}
	return paths[0], true, nil
}

// TextInput strips the line terminator zenity appends to entries. The
// multi-line editor returns the buffer verbatim.
func (b *Backend) TextInput(spec dialog.TextInputSpec) (string, bool, error) {
	switch spec.Mode {
	case dialog.MultiLine:
		return b.textInputMulti(spec)
	case dialog.Password:
		out, ok, err := b.result([]string{"--password", "--title", spec.Title, "--text", spec.Message})
		return strings.TrimSuffix(out, "\n"), ok, err
	default:
		out, ok, err := b.result([]string{"--entry", "--title", spec.Title, "--text", spec.Message, "--entry-text", spec.Value})
		return strings.TrimSuffix(out, "\n"), ok, err
	}
}

// textInputMulti feeds the initial text to the editor on standard input;
// without --filename zenity reads the document from there.
func (b *Backend) textInputMulti(spec dialog.TextInputSpec) (string, bool, error) {
	args := []string{"--text-info", "--editable", "--title", spec.Title}
	return b.resultWithInput(args, strings.NewReader(spec.Value))
}

func (b *Backend) PickColor(spec dialog.ColorSpec) (dialog.RGB, bool, error) {
	out, ok, err := b.result([]string{"--color-selection", "--title", spec.Title, "--color", spec.Value.Hex()})
	if !ok || err != nil {
		return dialog.RGB{}, false, err
	}
	c, ok := dialog.ParseColor(out)
	if !ok {
		return dialog.RGB{}, false, dialog.DecodeError(Program, "color", out)
	}
	return c, true, nil
}

func notifyIcon(icon dialog.MessageIcon) string {
	switch icon {
	case dialog.IconWarning:
		return "dialog-warning"
	case dialog.IconError:
		return "dialog-error"
	default:
		return "dialog-information"
	}
}

func notifyArgs(spec dialog.NotifySpec) []string {
	args := []string{"--notification", "--icon", notifyIcon(spec.Icon), "--text", spec.Title + "\n" + spec.Message}
	if s, ok := dialog.TimeoutSeconds(spec.Timeout); ok {
		args = append(args, fmt.Sprintf("--timeout=%d", s))
	}
	return args
}

func (b *Backend) Notify(spec dialog.NotifySpec) error {
	return b.runner.Start(bridge.CommandConfig{Command: Program, Args: notifyArgs(spec)})
}
