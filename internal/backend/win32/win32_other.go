//go:build !windows

package win32

import (
	"fmt"
	"runtime"

	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

func unsupported() error {
	return fmt.Errorf("%w: %s on %s", dialog.ErrUnsupported, Name, runtime.GOOS)
}

func messageBox(dialog.MessageSpec) (int32, error) {
	return 0, unsupported()
}

func fileDialog(dialog.FileDialogSpec, fileMode) ([]string, bool, error) {
	return nil, false, unsupported()
}

func folderDialog(dialog.FolderDialogSpec) (string, bool, error) {
	return "", false, unsupported()
}

func inputDialog(dialog.TextInputSpec) (string, bool, error) {
	return "", false, unsupported()
}

func chooseColor(uintptr, uint32) (uint32, bool, error) {
	return 0, false, unsupported()
}
