package dialog

// Backend is implemented once per native mechanism (toolkit FFI, helper
// program, raw Win32 resources, scripting host).
//
// Every operation except Notify blocks until the dialog is closed. A false ok
// with a nil error means the user dismissed the dialog without a result;
// cancellation is never reported as an error.
type Backend interface {
	// Name returns the backend's override name, e.g. "zenity".
	Name() string

	ShowMessage(spec MessageSpec) (result MessageResult, ok bool, err error)
	PickFile(spec FileDialogSpec) (path string, ok bool, err error)
	// PickFiles returns a non-empty list whenever ok is true.
	PickFiles(spec FileDialogSpec) (paths []string, ok bool, err error)
	// SaveFile asks the backend to confirm overwrites where it can.
	SaveFile(spec FileDialogSpec) (path string, ok bool, err error)
	PickFolder(spec FolderDialogSpec) (path string, ok bool, err error)
	TextInput(spec TextInputSpec) (text string, ok bool, err error)
	PickColor(spec ColorSpec) (color RGB, ok bool, err error)

	// Notify shows a notification without waiting for it to close.
	Notify(spec NotifySpec) error
}
