// Package win32 implements dialogs with the Windows common dialogs
// (MessageBoxW, GetOpenFileNameW, SHBrowseForFolderW, ChooseColorW), an
// in-memory dialog template for text input, and an HTML application shown
// by mshta.exe for notifications.
//
// The request translation (flags, filter strings, selection buffers, COLORREF
// values, the notification document) is platform independent. Only the
// system calls live in the Windows-specific file; elsewhere every dialog
// operation reports dialog.ErrUnsupported.
package win32

import (
	"os"

	"github.com/sibikrish3000/nativedialog/pkg/bridge"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// Name is the override name of the backend.
const Name = "win32"

// Backend calls the Win32 API directly. Notifications go through a
// bridge.Runner since they are a separate process.
type Backend struct {
	runner bridge.Runner
	// tempDir receives notification documents.
	tempDir string
}

// New returns a Backend launching notifications as real processes.
func New() *Backend {
	return NewWithRunner(bridge.System)
}

// NewWithRunner returns a Backend launching notifications through runner.
func NewWithRunner(runner bridge.Runner) *Backend {
	return &Backend{runner: runner, tempDir: os.TempDir()}
}

func (b *Backend) Name() string { return Name }

// ShowMessage never reports "no result": closing the box counts as the
// most-rejective button of the set.
func (b *Backend) ShowMessage(spec dialog.MessageSpec) (dialog.MessageResult, bool, error) {
	code, err := messageBox(spec)
	if err != nil {
		return 0, false, err
	}
	return messageResult(code, spec.Buttons), true, nil
}

func (b *Backend) PickFile(spec dialog.FileDialogSpec) (string, bool, error) {
	paths, ok, err := fileDialog(spec, openSingle)
	if !ok || err != nil {
		return "", false, err
	}
	return paths[0], true, nil
}

func (b *Backend) PickFiles(spec dialog.FileDialogSpec) ([]string, bool, error) {
	return fileDialog(spec, openMultiple)
}

func (b *Backend) SaveFile(spec dialog.FileDialogSpec) (string, bool, error) {
	paths, ok, err := fileDialog(spec, saveFile)
	if !ok || err != nil {
		return "", false, err
	}
	return paths[0], true, nil
}

func (b *Backend) PickFolder(spec dialog.FolderDialogSpec) (string, bool, error) {
	return folderDialog(spec)
}

func (b *Backend) TextInput(spec dialog.TextInputSpec) (string, bool, error) {
	return inputDialog(spec)
}

func (b *Backend) PickColor(spec dialog.ColorSpec) (dialog.RGB, bool, error) {
	ref, ok, err := chooseColor(spec.Owner, ColorRef(spec.Value))
	if !ok || err != nil {
		return dialog.RGB{}, false, err
	}
	return FromColorRef(ref), true, nil
}
