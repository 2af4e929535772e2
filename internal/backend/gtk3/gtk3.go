// Package gtk3 implements dialogs with GTK 3, loaded at run time with purego.
// Dialogs run modally with gtk_dialog_run on the toolkit's UI thread.
package gtk3

import (
	"github.com/sibikrish3000/nativedialog/internal/toolkit"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// Name is the override name of the backend.
const Name = "gtk3"

// Backend is stateless; the loaded library and the UI thread are process
// wide.
type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return Name }

func (b *Backend) ShowMessage(spec dialog.MessageSpec) (dialog.MessageResult, bool, error) {
	response, err := showMessage(spec)
	if err != nil {
		return 0, false, err
	}
	r, ok := toolkit.MessageResult(response, spec.Buttons)
	return r, ok, nil
}

func (b *Backend) PickFile(spec dialog.FileDialogSpec) (string, bool, error) {
	paths, err := openFiles(spec, false)
	if err != nil || len(paths) == 0 {
		return "", false, err
	}
	return paths[0], true, nil
}

func (b *Backend) PickFiles(spec dialog.FileDialogSpec) ([]string, bool, error) {
	paths, err := openFiles(spec, true)
	if err != nil || len(paths) == 0 {
		return nil, false, err
	}
	return paths, true, nil
}

func (b *Backend) SaveFile(spec dialog.FileDialogSpec) (string, bool, error) {
	return saveFile(spec)
}

func (b *Backend) PickFolder(spec dialog.FolderDialogSpec) (string, bool, error) {
	return pickFolder(spec)
}

func (b *Backend) TextInput(spec dialog.TextInputSpec) (string, bool, error) {
	return textInput(spec)
}

func (b *Backend) PickColor(spec dialog.ColorSpec) (dialog.RGB, bool, error) {
	return pickColor(spec)
}

func (b *Backend) Notify(spec dialog.NotifySpec) error {
	return notify(spec)
}
