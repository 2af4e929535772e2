// Package desktop shows native dialogs through the one backend selected for
// the process.
//
// The backend is chosen on first use: NATIVEDIALOG_BACKEND when set, else the
// toolkit selected at build time (-tags gtk3 or -tags gtk4), else the platform
// default (osascript on macOS, Win32 on Windows), else kdialog or zenity,
// ordered by the running desktop environment and probed on PATH.
//
// Every function except Notify blocks until the dialog closes. A false ok with
// a nil error means the user dismissed the dialog without answering.
package desktop

import (
	"log"

	"github.com/sibikrish3000/nativedialog/internal/debug"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// SetLogger installs the logger used for diagnostics. A nil logger silences
// them. Without a call, diagnostics go to stderr when NATIVEDIALOG_DEBUG is
// set.
func SetLogger(l *log.Logger) {
	debug.SetLogger(l)
}

// ShowMessage shows a message box and returns the button that closed it.
func ShowMessage(spec dialog.MessageSpec) (dialog.MessageResult, bool, error) {
	b, err := Resolve()
	if err != nil {
		return 0, false, err
	}
	return b.ShowMessage(spec)
}

// PickFile asks for one existing file.
func PickFile(spec dialog.FileDialogSpec) (string, bool, error) {
	b, err := Resolve()
	if err != nil {
		return "", false, err
	}
	return b.PickFile(spec)
}

// PickFiles asks for one or more existing files.
func PickFiles(spec dialog.FileDialogSpec) ([]string, bool, error) {
	b, err := Resolve()
	if err != nil {
		return nil, false, err
	}
	return b.PickFiles(spec)
}

// SaveFile asks for a path to write to.
func SaveFile(spec dialog.FileDialogSpec) (string, bool, error) {
	b, err := Resolve()
	if err != nil {
		return "", false, err
	}
	return b.SaveFile(spec)
}

func PickFolder(spec dialog.FolderDialogSpec) (string, bool, error) {
	b, err := Resolve()
	if err != nil {
		return "", false, err
	}
	return b.PickFolder(spec)
}

func TextInput(spec dialog.TextInputSpec) (string, bool, error) {
	b, err := Resolve()
	if err != nil {
		return "", false, err
	}
	return b.TextInput(spec)
}

func PickColor(spec dialog.ColorSpec) (dialog.RGB, bool, error) {
	b, err := Resolve()
	if err != nil {
		return dialog.RGB{}, false, err
	}
	return b.PickColor(spec)
}

// Notify shows a notification and returns without waiting for it.
func Notify(spec dialog.NotifySpec) error {
	b, err := Resolve()
	if err != nil {
		return err
	}
	return b.Notify(spec)
}
