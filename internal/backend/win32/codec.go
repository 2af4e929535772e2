package win32

import (
	"strings"

	"github.com/sibikrish3000/nativedialog/internal/dlgtemplate"
	"github.com/sibikrish3000/nativedialog/internal/nativestr"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// MessageBoxW styles and return values.
const (
	MB_OK          = 0x00000000
	MB_OKCANCEL    = 0x00000001
	MB_YESNOCANCEL = 0x00000003
	MB_YESNO       = 0x00000004

	MB_ICONERROR       = 0x00000010
	MB_ICONQUESTION    = 0x00000020
	MB_ICONWARNING     = 0x00000030
	MB_ICONINFORMATION = 0x00000040

	IDOK     = 1
	IDCANCEL = 2
	IDYES    = 6
	IDNO     = 7
)

// MessageFlags returns the uType argument of MessageBoxW.
func MessageFlags(spec dialog.MessageSpec) uint32 {
	var flags uint32
	switch spec.Buttons {
	case dialog.ButtonsOkCancel:
		flags = MB_OKCANCEL
	case dialog.ButtonsYesNo:
		flags = MB_YESNO
	case dialog.ButtonsYesNoCancel:
		flags = MB_YESNOCANCEL
	default:
		flags = MB_OK
	}
	switch spec.Icon {
	case dialog.IconWarning:
		flags |= MB_ICONWARNING
	case dialog.IconError:
		flags |= MB_ICONERROR
	case dialog.IconQuestion:
		flags |= MB_ICONQUESTION
	default:
		flags |= MB_ICONINFORMATION
	}
	return flags
}

func messageResult(code int32, buttons dialog.MessageButtons) dialog.MessageResult {
	var r dialog.MessageResult
	switch code {
	case IDOK:
		r = dialog.ResultOk
	case IDCANCEL:
		r = dialog.ResultCancel
	case IDYES:
		r = dialog.ResultYes
	case IDNO:
		r = dialog.ResultNo
	default:
		return buttons.Rejective()
	}
	if !buttons.Allows(r) {
		return buttons.Rejective()
	}
	return r
}

// FilterString returns the lpstrFilter list: description and
// semicolon-separated patterns per filter, then the catch-all, each field
// NUL-terminated and the list closed by an extra NUL.
func FilterString(filters []dialog.FileFilter) []uint16 {
	var b strings.Builder
	for _, f := range filters {
		if len(f.Patterns) == 0 {
			continue
		}
		b.WriteString(f.Description)
		b.WriteByte(0)
		b.WriteString(f.JoinPatterns(";"))
		b.WriteByte(0)
	}
	b.WriteString(dialog.AllFilesDescription)
	b.WriteString("\x00*.*\x00")
	return encodeUTF16(b.String())
}

// encodeUTF16 encodes s including interior NULs and appends a terminator.
func encodeUTF16(s string) []uint16 {
	var out []uint16
	for _, part := range strings.Split(s, "\x00") {
		out = append(out, nativestr.UTF16(part)...)
	}
	return out
}

// fileBufferLen is the size in code units of the selection buffer.
const fileBufferLen = 16 * 1024

// FileBuffer returns the lpstrFile buffer seeded with the composed initial
// path. A path that does not fit is truncated, keeping the terminator.
func FileBuffer(spec dialog.FileDialogSpec) []uint16 {
	buf := make([]uint16, fileBufferLen)
	path, ok := spec.InitialPath()
	if !ok {
		return buf
	}
	copy(buf[:len(buf)-1], nativestr.UTF16(path))
	buf[len(buf)-1] = 0
	return buf
}

// ParseFileBuffer decodes a selection buffer. A single entry is a full path;
// several entries are a directory followed by file names in it. The list
// ends at the first empty entry.
func ParseFileBuffer(buf []uint16) []string {
	var parts []string
	start := 0
	for i, v := range buf {
		if v != 0 {
			continue
		}
		if i == start {
			break
		}
		parts = append(parts, nativestr.UTF16ToString(buf[start:i]))
		start = i + 1
	}

	if len(parts) <= 1 {
		return parts
	}
	dir := parts[0]
	if !strings.HasSuffix(dir, `\`) {
		dir += `\`
	}
	paths := make([]string, 0, len(parts)-1)
	for _, name := range parts[1:] {
		paths = append(paths, dir+name)
	}
	return paths
}

// ColorRef packs c as a COLORREF, 0x00BBGGRR.
func ColorRef(c dialog.RGB) uint32 {
	return uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// FromColorRef unpacks a COLORREF.
func FromColorRef(ref uint32) dialog.RGB {
	return dialog.RGB{R: uint8(ref), G: uint8(ref >> 8), B: uint8(ref >> 16)}
}

// Common dialog flags.
const (
	OFN_OVERWRITEPROMPT  = 0x00000002
	OFN_NOCHANGEDIR      = 0x00000008
	OFN_ALLOWMULTISELECT = 0x00000200
	OFN_PATHMUSTEXIST    = 0x00000800
	OFN_FILEMUSTEXIST    = 0x00001000
	OFN_EXPLORER         = 0x00080000

	BIF_RETURNONLYFSDIRS = 0x00000001
	BIF_NEWDIALOGSTYLE   = 0x00000040

	CC_RGBINIT  = 0x00000001
	CC_FULLOPEN = 0x00000002
)

type fileMode int

const (
	openSingle fileMode = iota
	openMultiple
	saveFile
)

// flags returns the OPENFILENAMEW flags of the mode.
func (m fileMode) flags() uint32 {
	flags := uint32(OFN_EXPLORER | OFN_NOCHANGEDIR | OFN_PATHMUSTEXIST)
	switch m {
	case openSingle:
		flags |= OFN_FILEMUSTEXIST
	case openMultiple:
		flags |= OFN_FILEMUSTEXIST | OFN_ALLOWMULTISELECT
	case saveFile:
		flags |= OFN_OVERWRITEPROMPT
	}
	return flags
}

// inputGeometry is the part of the input dialog state its sizing depends on.
type inputGeometry struct {
	multiline bool
	// fixedHeight is the window height single-line dialogs are locked to.
	fixedHeight int32
}

// limits answers WM_GETMINMAXINFO. A nil geometry means the message arrived
// before WM_INITDIALOG bound the state; the single-line minimums apply then.
func (g *inputGeometry) limits() dlgtemplate.TrackLimits {
	if g == nil {
		return dlgtemplate.Limits(false, 0)
	}
	return dlgtemplate.Limits(g.multiline, g.fixedHeight)
}
