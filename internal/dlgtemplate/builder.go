// Package dlgtemplate serializes in-memory Win32 dialog templates
// (DLGTEMPLATE followed by DLGITEMTEMPLATE entries) and computes the control
// layout of the text input dialog built from them.
//
// The package has no platform dependency: templates are plain little-endian
// byte slices that the Windows backend hands to DialogBoxIndirectParamW.
package dlgtemplate

import (
	"encoding/binary"

	"github.com/sibikrish3000/nativedialog/internal/nativestr"
)

// Window and control styles used by the templates.
const (
	WS_POPUP       = 0x80000000
	WS_CHILD       = 0x40000000
	WS_VISIBLE     = 0x10000000
	WS_CAPTION     = 0x00C00000
	WS_BORDER      = 0x00800000
	WS_VSCROLL     = 0x00200000
	WS_SYSMENU     = 0x00080000
	WS_THICKFRAME  = 0x00040000
	WS_MINIMIZEBOX = 0x00020000
	WS_TABSTOP     = 0x00010000

	DS_SETFONT = 0x0040
	DS_CENTER  = 0x0800

	ES_LEFT        = 0x0000
	ES_MULTILINE   = 0x0004
	ES_PASSWORD    = 0x0020
	ES_AUTOVSCROLL = 0x0040
	ES_AUTOHSCROLL = 0x0080
	ES_WANTRETURN  = 0x1000

	BS_PUSHBUTTON    = 0x0000
	BS_DEFPUSHBUTTON = 0x0001
)

// Predefined control class ordinals.
const (
	ClassButton uint16 = 0x0080
	ClassEdit   uint16 = 0x0081
	ClassStatic uint16 = 0x0082
)

// Header describes the DLGTEMPLATE that starts a template.
type Header struct {
	Style, ExStyle uint32
	Items          uint16
	X, Y, CX, CY   int16
	Title          string
	// FontSize and FontName are written when Style has DS_SETFONT.
	FontSize uint16
	FontName string
}

// Item describes one DLGITEMTEMPLATE.
type Item struct {
	Style, ExStyle uint32
	X, Y, CX, CY   int16
	ID             uint16
	Class          uint16
	// Caption is the initial window text; empty writes no text.
	Caption string
}

// Builder accumulates template fields in order.
type Builder struct {
	buf []byte
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return len(b.buf) }

// Bytes returns the serialized template.
func (b *Builder) Bytes() []byte { return b.buf }

func (b *Builder) U16(v uint16) { b.buf = binary.LittleEndian.AppendUint16(b.buf, v) }
func (b *Builder) I16(v int16)  { b.U16(uint16(v)) }
func (b *Builder) U32(v uint32) { b.buf = binary.LittleEndian.AppendUint32(b.buf, v) }

// String writes s as NUL-terminated UTF-16LE.
func (b *Builder) String(s string) {
	b.buf = append(b.buf, nativestr.UTF16LE(s)...)
}

// Align pads with zero bytes up to the next 4-byte boundary.
func (b *Builder) Align() {
	for len(b.buf)%4 != 0 {
		b.buf = append(b.buf, 0)
	}
}

// Header writes the dialog header. Menu and window class are always the
// default (zero).
func (b *Builder) Header(h Header) {
	b.U32(h.Style)
	b.U32(h.ExStyle)
	b.U16(h.Items)
	b.I16(h.X)
	b.I16(h.Y)
	b.I16(h.CX)
	b.I16(h.CY)
	b.U16(0) // menu
	b.U16(0) // class
	b.String(h.Title)
	if h.Style&DS_SETFONT != 0 {
		b.U16(h.FontSize)
		b.String(h.FontName)
	}
}

// Item writes a control. Every item starts on a 4-byte boundary.
func (b *Builder) Item(it Item) {
	b.Align()
	b.U32(it.Style)
	b.U32(it.ExStyle)
	b.I16(it.X)
	b.I16(it.Y)
	b.I16(it.CX)
	b.I16(it.CY)
	b.U16(it.ID)
	b.U16(0xFFFF)
	b.U16(it.Class)
	if it.Caption == "" {
		b.U16(0)
	} else {
		b.String(it.Caption)
	}
	b.U16(0) // creation data
}
