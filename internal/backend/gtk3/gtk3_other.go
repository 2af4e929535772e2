//go:build !(linux || freebsd)

package gtk3

import (
	"fmt"
	"runtime"

	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

func unsupported() error {
	return fmt.Errorf("%w: %s on %s", dialog.ErrUnsupported, Name, runtime.GOOS)
}

func showMessage(dialog.MessageSpec) (int32, error) { return 0, unsupported() }

func openFiles(dialog.FileDialogSpec, bool) ([]string, error) { return nil, unsupported() }

func saveFile(dialog.FileDialogSpec) (string, bool, error) { return "", false, unsupported() }

func pickFolder(dialog.FolderDialogSpec) (string, bool, error) { return "", false, unsupported() }

func textInput(dialog.TextInputSpec) (string, bool, error) { return "", false, unsupported() }

func pickColor(dialog.ColorSpec) (dialog.RGB, bool, error) { return dialog.RGB{}, false, unsupported() }

func notify(dialog.NotifySpec) error { return unsupported() }
