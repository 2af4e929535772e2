// Package kdialog implements dialogs by running KDE's kdialog helper program.
package kdialog

import (
	"context"
	"strconv"
	"strings"

	"github.com/sibikrish3000/nativedialog/pkg/bridge"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// Program is the helper program name, also used as the override name.
const Program = "kdialog"

// Backend runs kdialog through a bridge.Runner.
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
	return b.runner.Run(context.Background(), bridge.CommandConfig{Command: Program, Args: args})
}

// result returns stdout on exit 0 and no result on exit 1, kdialog's cancel
// status. kdialog terminates every value with a newline, which is removed.
func (b *Backend) result(args []string) (string, bool, error) {
	out, err := b.run(args)
	if err != nil {
		return "", false, err
	}
	switch out.ExitCode {
	case 0:
		return strings.TrimSuffix(out.Stdout, "\n"), true, nil
	case 1:
		return "", false, nil
	default:
		return "", false, bridge.ExitError(bridge.CommandConfig{Command: Program}, out)
	}
}

// messageKind picks the kdialog box for a button set and icon.
func messageKind(buttons dialog.MessageButtons, icon dialog.MessageIcon) string {
	warn := icon == dialog.IconWarning || icon == dialog.IconError
	switch buttons {
	case dialog.ButtonsOkCancel, dialog.ButtonsYesNo:
		if warn {
			return "--warningyesno"
		}
		return "--yesno"
	case dialog.ButtonsYesNoCancel:
		if warn {
			return "--warningyesnocancel"
		}
		return "--yesnocancel"
	default:
		switch icon {
		case dialog.IconWarning:
			return "--sorry"
		case dialog.IconError:
			return "--error"
		default:
			return "--msgbox"
		}
	}
}

func messageLabels(buttons dialog.MessageButtons) (yes, no string) {
	switch buttons {
	case dialog.ButtonsOkCancel:
		return "OK", "Cancel"
	case dialog.ButtonsYesNo, dialog.ButtonsYesNoCancel:
		return "Yes", "No"
	default:
		return "OK", "None"
	}
}

func messageArgs(spec dialog.MessageSpec) []string {
	yes, no := messageLabels(spec.Buttons)
	return []string{
		messageKind(spec.Buttons, spec.Icon), spec.Message,
		"--yes-label", yes,
		"--no-label", no,
		"--title", spec.Title,
	}
}

// ShowMessage indexes the button table with the exit status: kdialog exits
// with 0 for yes, 1 for no and 2 for cancel. Statuses outside the table are
// reported as no result.
func (b *Backend) ShowMessage(spec dialog.MessageSpec) (dialog.MessageResult, bool, error) {
	out, err := b.run(messageArgs(spec))
	if err != nil {
		return 0, false, err
	}
	codes := spec.Buttons.Results()
	if out.ExitCode < 0 || out.ExitCode >= len(codes) {
		return 0, false, nil
	}
	return codes[out.ExitCode], true, nil
}

// filterString renders filters the way kdialog expects: one
// "Description (patterns)" entry per line.
func filterString(filters []dialog.FileFilter) string {
	var b strings.Builder
	for _, f := range filters {
		b.WriteString(f.Description)
		b.WriteString(" (")
		b.WriteString(f.JoinPatterns(" "))
		b.WriteString(")\n")
	}
	b.WriteString("All Files (*)")
	return b.String()
}

func initialPath(spec dialog.FileDialogSpec) string {
	if p, ok := spec.InitialPath(); ok {
		return p
	}
	return "."
}

func openArgs(spec dialog.FileDialogSpec, multiple bool) []string {
	args := []string{"--title", spec.Title, "--getopenfilename", initialPath(spec), filterString(spec.Filters)}
	if multiple {
		args = append(args, "--multiple", "--separate-output")
	}
	return args
}

func (b *Backend) PickFile(spec dialog.FileDialogSpec) (string, bool, error) {
	return b.firstPath(openArgs(spec, false))
}

func (b *Backend) PickFiles(spec dialog.FileDialogSpec) ([]string, bool, error) {
	out, ok, err := b.result(openArgs(spec, true))
	if !ok || err != nil {
		return nil, false, err
	}
	paths, ok := dialog.SplitPaths(out)
	if !ok {
		return nil, false, nil
	}
	return paths, true, nil
}

// SaveFile relies on kdialog's save dialog, which always confirms overwrites.
func (b *Backend) SaveFile(spec dialog.FileDialogSpec) (string, bool, error) {
	return b.firstPath([]string{"--title", spec.Title, "--getsavefilename", initialPath(spec), filterString(spec.Filters)})
}

func (b *Backend) PickFolder(spec dialog.FolderDialogSpec) (string, bool, error) {
	dir := spec.Directory
	if dir == "" {
		dir = "."
	}
	return b.firstPath([]string{"--title", spec.Title, "--getexistingdirectory", dir})
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

func textArgs(spec dialog.TextInputSpec) []string {
	switch spec.Mode {
	case dialog.MultiLine:
		return []string{"--textinputbox", spec.Message, spec.Value, "--title", spec.Title}
	case dialog.Password:
		return []string{"--password", spec.Message, "--title", spec.Title}
	default:
		return []string{"--inputbox", spec.Message, spec.Value, "--title", spec.Title}
	}
}

func (b *Backend) TextInput(spec dialog.TextInputSpec) (string, bool, error) {
	return b.result(textArgs(spec))
}

func (b *Backend) PickColor(spec dialog.ColorSpec) (dialog.RGB, bool, error) {
	out, ok, err := b.result([]string{"--getcolor", "--default", spec.Value.Hex(), "--title", spec.Title})
	if !ok || err != nil {
		return dialog.RGB{}, false, err
	}
	c, ok := dialog.ParseHex(out)
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

// notifyArgs uses the maximum timeout kdialog accepts for persistent popups
// since it has no infinite one.
func notifyArgs(spec dialog.NotifySpec) []string {
	return []string{
		"--title", spec.Title,
		"--icon", notifyIcon(spec.Icon),
		"--passivepopup", spec.Message,
		strconv.Itoa(dialog.CappedTimeoutSeconds(spec.Timeout)),
	}
}

func (b *Backend) Notify(spec dialog.NotifySpec) error {
	return b.runner.Start(bridge.CommandConfig{Command: Program, Args: notifyArgs(spec)})
}
