// Package dialog defines the platform-neutral request and result model shared
// by every native dialog backend, the Backend contract each backend
// implements, and the pure translation helpers (initial path composition,
// filter lists, color codecs, timeout rounding, button tables) that backends
// use to speak their own protocols.
//
// All request types are plain values; nothing here outlives a single dialog
// invocation.
package dialog

// MessageIcon selects the icon shown by message boxes and notifications.
type MessageIcon int

const (
	IconInfo MessageIcon = iota
	IconWarning
	IconError
	IconQuestion
)

func (i MessageIcon) String() string {
	switch i {
	case IconInfo:
		return "info"
	case IconWarning:
		return "warning"
	case IconError:
		return "error"
	case IconQuestion:
		return "question"
	default:
		return "unknown"
	}
}

// MessageButtons selects the fixed button set of a message box.
type MessageButtons int

const (
	ButtonsOk MessageButtons = iota
	ButtonsOkCancel
	ButtonsYesNo
	ButtonsYesNoCancel
)

func (b MessageButtons) String() string {
	switch b {
	case ButtonsOk:
		return "ok"
	case ButtonsOkCancel:
		return "ok-cancel"
	case ButtonsYesNo:
		return "yes-no"
	case ButtonsYesNoCancel:
		return "yes-no-cancel"
	default:
		return "unknown"
	}
}

// MessageResult identifies the button the user pressed.
type MessageResult int

const (
	ResultOk MessageResult = iota
	ResultCancel
	ResultYes
	ResultNo
)

func (r MessageResult) String() string {
	switch r {
	case ResultOk:
		return "ok"
	case ResultCancel:
		return "cancel"
	case ResultYes:
		return "yes"
	case ResultNo:
		return "no"
	default:
		return "unknown"
	}
}

// MessageSpec describes a modal message box.
type MessageSpec struct {
	Title   string
	Message string
	Icon    MessageIcon
	Buttons MessageButtons
	// Owner is a native window handle (HWND, GtkWindow*). Zero means none.
	Owner uintptr
}

// FileFilter is one entry of a file dialog's filter list, e.g.
// {"Images", []string{"*.png", "*.jpg"}}.
type FileFilter struct {
	Description string
	Patterns    []string
}

// FileDialogSpec describes an open or save file dialog. The operation called
// on the Backend selects single pick, multi pick or save.
type FileDialogSpec struct {
	Title string
	// Directory is the initial directory. Empty means unset.
	Directory string
	// FileName is the initial file name. When Directory is also set the two
	// are joined into one initial path.
	FileName string
	Filters  []FileFilter
	Owner    uintptr
}

// InitialPath returns the composed initial location of the dialog.
func (s FileDialogSpec) InitialPath() (string, bool) {
	return ComposePath(s.Directory, s.FileName)
}

// FolderDialogSpec describes a directory picker.
type FolderDialogSpec struct {
	Title     string
	Directory string
	Owner     uintptr
}

// TextInputMode selects the presentation of a text input dialog.
type TextInputMode int

const (
	// SingleLine is a one line entry.
	SingleLine TextInputMode = iota
	// MultiLine is a free-form editor; line breaks are returned verbatim.
	MultiLine
	// Password masks the entry; the content is still returned as plain text.
	Password
)

func (m TextInputMode) String() string {
	switch m {
	case SingleLine:
		return "single-line"
	case MultiLine:
		return "multi-line"
	case Password:
		return "password"
	default:
		return "unknown"
	}
}

// TextInputSpec describes a text input dialog.
type TextInputSpec struct {
	Title   string
	Message string
	// Value pre-populates the field.
	Value string
	Mode  TextInputMode
	Owner uintptr
}

// ColorSpec describes a color chooser seeded with Value.
type ColorSpec struct {
	Title string
	Value RGB
	Owner uintptr
}

// NotifySpec describes a transient notification.
type NotifySpec struct {
	Title   string
	Message string
	Icon    MessageIcon
	// Timeout in milliseconds. Zero or negative means no automatic dismissal.
	Timeout int
}
