// Package nativestr converts strings between Go and the encodings native
// APIs expect: NUL-terminated narrow (UTF-8) strings for toolkit calls and
// NUL-terminated UTF-16 strings for Windows and dialog templates.
//
// Buffers returned here are owned by Go. Callers passing their address to
// native code must keep them alive (runtime.KeepAlive) until the call
// returns. Strings allocated by native code are copied out by GoString and
// remain owned by the caller, who frees them with the allocator's own free
// function.
package nativestr

import (
	"strings"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/text/encoding/unicode"
)

// maxCString bounds GoString's scan for a terminator.
const maxCString = 1 << 20

// CString returns s as a NUL-terminated byte slice. A string containing NUL
// is cut at the first one since C cannot represent it.
func CString(s string) []byte {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// GoString copies the NUL-terminated string at ptr. A zero ptr yields "".
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	// Find the null terminator
	var length int
	for length < maxCString {
		if *(*byte)(unsafe.Pointer(ptr + uintptr(length))) == 0 {
			break
		}
		length++
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}

// UTF16 returns s as NUL-terminated UTF-16 code units, cut at the first NUL.
func UTF16(s string) []uint16 {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return append(utf16.Encode([]rune(s)), 0)
}

// UTF16ToString decodes code units up to the first NUL.
func UTF16ToString(u []uint16) string {
	for i, v := range u {
		if v == 0 {
			u = u[:i]
			break
		}
	}
	return string(utf16.Decode(u))
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// UTF16LE returns s encoded as little-endian UTF-16 bytes followed by a
// two byte terminator, the layout used inside dialog templates. Interior NULs
// cut the string.
func UTF16LE(s string) []byte {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// Invalid UTF-8 is replaced rather than rejected.
		b, _ = utf16le.NewEncoder().Bytes([]byte(strings.ToValidUTF8(s, "�")))
	}
	return append(b, 0, 0)
}
