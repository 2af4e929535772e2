package desktop

import (
	"github.com/sibikrish3000/nativedialog/internal/backend/gtk3"
	"github.com/sibikrish3000/nativedialog/internal/backend/gtk4"
	"github.com/sibikrish3000/nativedialog/internal/backend/kdialog"
	"github.com/sibikrish3000/nativedialog/internal/backend/osascript"
	"github.com/sibikrish3000/nativedialog/internal/backend/win32"
	"github.com/sibikrish3000/nativedialog/internal/backend/zenity"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// Kind identifies a backend implementation.
type Kind int

const (
	// KindNone is the zero Kind; no backend is selected.
	KindNone Kind = iota
	KindGTK3
	KindGTK4
	KindKDialog
	KindZenity
	KindWin32
	KindOSAScript
)

// String returns the override name of the kind, as accepted in
// NATIVEDIALOG_BACKEND.
func (k Kind) String() string {
	switch k {
	case KindGTK3:
		return gtk3.Name
	case KindGTK4:
		return gtk4.Name
	case KindKDialog:
		return kdialog.Program
	case KindZenity:
		return zenity.Program
	case KindWin32:
		return win32.Name
	case KindOSAScript:
		return osascript.Program
	default:
		return "none"
	}
}

// parseKind matches name against the kinds offered on this platform.
func parseKind(name string, offered []Kind) (Kind, bool) {
	for _, k := range offered {
		if k.String() == name {
			return k, true
		}
	}
	return KindNone, false
}

func newBackend(k Kind) dialog.Backend {
	switch k {
	case KindGTK3:
		return gtk3.New()
	case KindGTK4:
		return gtk4.New()
	case KindKDialog:
		return kdialog.New()
	case KindZenity:
		return zenity.New()
	case KindWin32:
		return win32.New()
	case KindOSAScript:
		return osascript.New()
	default:
		return nil
	}
}
