// Package osascript implements dialogs on macOS by running AppleScript
// programs through the osascript scripting host.
package osascript

import (
	"context"
	"strconv"
	"strings"

	"github.com/sibikrish3000/nativedialog/pkg/bridge"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// Program is the scripting host, also used as the override name.
const Program = "osascript"

// Backend runs AppleScript through a bridge.Runner.
type Backend struct {
	runner bridge.Runner
}

// New returns a Backend that executes the real scripting host.
func New() *Backend {
	return NewWithRunner(bridge.System)
}

// NewWithRunner returns a Backend that executes through runner.
func NewWithRunner(runner bridge.Runner) *Backend {
	return &Backend{runner: runner}
}

func (b *Backend) Name() string { return Program }

func command(script string, args ...string) bridge.CommandConfig {
	return bridge.CommandConfig{Command: Program, Args: append([]string{"-e", script}, args...)}
}

// userCanceled reports AppleScript's error -128, raised when a dialog is
// dismissed through its cancel button or Escape.
func userCanceled(stderr string) bool {
	return strings.Contains(stderr, "(-128)") || strings.Contains(stderr, "User canceled")
}

// run executes script and returns its single line result. A cancelled
// dialog yields no result.
func (b *Backend) run(script string, args ...string) (string, bool, error) {
	cfg := command(script, args...)
	out, err := b.runner.Run(context.Background(), cfg)
	if err != nil {
		return "", false, err
	}
	if !out.Success() {
		if userCanceled(out.Stderr) {
			return "", false, nil
		}
		return "", false, bridge.ExitError(bridge.CommandConfig{Command: Program}, out)
	}
	return dialog.TrimLine(out.Stdout), true, nil
}

func messageArgs(spec dialog.MessageSpec) []string {
	icon := "note"
	switch spec.Icon {
	case dialog.IconWarning:
		icon = "caution"
	case dialog.IconError:
		icon = "stop"
	}

	labels := make([]string, 0, 3)
	for _, r := range spec.Buttons.Results() {
		labels = append(labels, r.Label())
	}
	cancel := ""
	if spec.Buttons.HasCancel() {
		cancel = dialog.ResultCancel.Label()
	}
	return []string{spec.Title, spec.Message, icon, strings.Join(labels, "||"), spec.Buttons.Affirmative().Label(), cancel}
}

// ShowMessage maps the returned button name to its result. The cancel
// button raises -128 instead of returning, which is reported as Cancel.
func (b *Backend) ShowMessage(spec dialog.MessageSpec) (dialog.MessageResult, bool, error) {
	out, ok, err := b.run(messageScript, messageArgs(spec)...)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		if spec.Buttons.HasCancel() {
			return dialog.ResultCancel, true, nil
		}
		return 0, false, nil
	}
	r, found := spec.Buttons.ResultForLabel(out)
	return r, found, nil
}

func startDir(spec dialog.FileDialogSpec) string {
	dir, _ := spec.InitialDirectory()
	return dir
}

func (b *Backend) PickFile(spec dialog.FileDialogSpec) (string, bool, error) {
	out, ok, err := b.run(openScript, spec.Title, startDir(spec))
	if !ok || err != nil || out == "" {
		return "", false, err
	}
	return out, true, nil
}

func (b *Backend) PickFiles(spec dialog.FileDialogSpec) ([]string, bool, error) {
	out, ok, err := b.run(openMultipleScript, spec.Title, startDir(spec))
	if !ok || err != nil {
		return nil, false, err
	}
	paths, ok := dialog.SplitPaths(out)
	if !ok {
		return nil, false, nil
	}
	return paths, true, nil
}

// SaveFile relies on "choose file name", which confirms overwrites itself.
func (b *Backend) SaveFile(spec dialog.FileDialogSpec) (string, bool, error) {
	name, _ := spec.DefaultName()
	out, ok, err := b.run(saveScript, spec.Title, startDir(spec), name)
	if !ok || err != nil || out == "" {
		return "", false, err
	}
	return out, true, nil
}

func (b *Backend) PickFolder(spec dialog.FolderDialogSpec) (string, bool, error) {
	out, ok, err := b.run(folderScript, spec.Title, spec.Directory)
	if !ok || err != nil || out == "" {
		return "", false, err
	}
	return out, true, nil
}

func (b *Backend) TextInput(spec dialog.TextInputSpec) (string, bool, error) {
	return b.run(textScript, spec.Title, spec.Message, spec.Value, strconv.FormatBool(spec.Mode == dialog.Password))
}

// PickColor passes and receives 16-bit channels.
func (b *Backend) PickColor(spec dialog.ColorSpec) (dialog.RGB, bool, error) {
	r, g, bl := spec.Value.Wide()
	out, ok, err := b.run(colorScript, spec.Title,
		strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(bl)))
	if !ok || err != nil {
		return dialog.RGB{}, false, err
	}
	c, ok := dialog.ParseWideTriple(out)
	if !ok {
		return dialog.RGB{}, false, dialog.DecodeError(Program, "color", out)
	}
	return c, true, nil
}

// Notify posts through the notification center, which owns the timeout.
func (b *Backend) Notify(spec dialog.NotifySpec) error {
	return b.runner.Start(command(notifyScript, spec.Title, spec.Message))
}
