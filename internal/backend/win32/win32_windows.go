//go:build windows

package win32

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/sibikrish3000/nativedialog/internal/dlgtemplate"
	"github.com/sibikrish3000/nativedialog/internal/nativestr"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	comdlg32 = windows.NewLazySystemDLL("comdlg32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")
	ole32    = windows.NewLazySystemDLL("ole32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procMessageBoxW             = user32.NewProc("MessageBoxW")
	procDialogBoxIndirectParamW = user32.NewProc("DialogBoxIndirectParamW")
	procEndDialog               = user32.NewProc("EndDialog")
	procGetDlgItem              = user32.NewProc("GetDlgItem")
	procSetDlgItemTextW         = user32.NewProc("SetDlgItemTextW")
	procGetDlgItemTextW         = user32.NewProc("GetDlgItemTextW")
	procSendMessageW            = user32.NewProc("SendMessageW")
	procSetFocus                = user32.NewProc("SetFocus")
	procGetClientRect           = user32.NewProc("GetClientRect")
	procGetWindowRect           = user32.NewProc("GetWindowRect")
	procMoveWindow              = user32.NewProc("MoveWindow")
	procSetWindowLongPtrW       = user32.NewProc("SetWindowLongPtrW")
	procGetWindowLongPtrW       = user32.NewProc("GetWindowLongPtrW")

	procGetOpenFileNameW     = comdlg32.NewProc("GetOpenFileNameW")
	procGetSaveFileNameW     = comdlg32.NewProc("GetSaveFileNameW")
	procChooseColorW         = comdlg32.NewProc("ChooseColorW")
	procCommDlgExtendedError = comdlg32.NewProc("CommDlgExtendedError")
	procSHBrowseForFolderW   = shell32.NewProc("SHBrowseForFolderW")
	procSHGetPathFromIDListW = shell32.NewProc("SHGetPathFromIDListW")
	procCoTaskMemFree        = ole32.NewProc("CoTaskMemFree")
	procGetModuleHandleW     = kernel32.NewProc("GetModuleHandleW")
)

const (
	wmSize          = 0x0005
	wmGetMinMaxInfo = 0x0024
	wmInitDialog    = 0x0110
	wmCommand       = 0x0111
	emSetSel        = 0x00B1

	bffmInitialized   = 1
	bffmSetSelectionW = 0x0400 + 103

	maxPath = 260

	// inputBufferLen bounds the text read back from the edit control.
	inputBufferLen = 32768
)

// gwlpUserData is GWLP_USERDATA; a variable since the index is negative.
var gwlpUserData = -21

type point struct{ X, Y int32 }

type rect struct{ Left, Top, Right, Bottom int32 }

type minMaxInfo struct {
	Reserved     point
	MaxSize      point
	MaxPosition  point
	MinTrackSize point
	MaxTrackSize point
}

type openFileName struct {
	StructSize    uint32
	Owner         uintptr
	Instance      uintptr
	Filter        *uint16
	CustomFilter  *uint16
	MaxCustFilter uint32
	FilterIndex   uint32
	File          *uint16
	MaxFile       uint32
	FileTitle     *uint16
	MaxFileTitle  uint32
	InitialDir    *uint16
	Title         *uint16
	Flags         uint32
	FileOffset    uint16
	FileExtension uint16
	DefExt        *uint16
	CustData      uintptr
	Hook          uintptr
	TemplateName  *uint16
	Reserved      uintptr
	Reserved2     uint32
	FlagsEx       uint32
}

type browseInfo struct {
	Owner       uintptr
	Root        uintptr
	DisplayName *uint16
	Title       *uint16
	Flags       uint32
	Callback    uintptr
	LParam      uintptr
	Image       int32
}

type chooseColorInfo struct {
	StructSize   uint32
	Owner        uintptr
	Instance     uintptr
	Result       uint32
	CustColors   *[16]uint32
	Flags        uint32
	CustData     uintptr
	Hook         uintptr
	TemplateName *uint16
}

// optionalUTF16 returns nil for an empty string so the dialog uses its
// default text.
func optionalUTF16(s string) *uint16 {
	if s == "" {
		return nil
	}
	return &nativestr.UTF16(s)[0]
}

func loWord(v uintptr) int32 { return int32(uint16(v)) }
func hiWord(v uintptr) int32 { return int32(uint16(v >> 16)) }

// commonDialogError returns the extended error of a failed common dialog, or
// nil when the user dismissed it.
func commonDialogError(name string) error {
	code, _, _ := procCommDlgExtendedError.Call()
	if code == 0 {
		return nil
	}
	return fmt.Errorf("win32: %s failed with error %#x", name, code)
}

func messageBox(spec dialog.MessageSpec) (int32, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	text := nativestr.UTF16(spec.Message)
	caption := nativestr.UTF16(spec.Title)
	r, _, err := procMessageBoxW.Call(spec.Owner,
		uintptr(unsafe.Pointer(&text[0])),
		uintptr(unsafe.Pointer(&caption[0])),
		uintptr(MessageFlags(spec)))
	if r == 0 {
		return 0, fmt.Errorf("%w: MessageBoxW: %v", dialog.ErrInit, err)
	}
	return int32(r), nil
}

func fileDialog(spec dialog.FileDialogSpec, mode fileMode) ([]string, bool, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	filter := FilterString(spec.Filters)
	buf := FileBuffer(spec)
	ofn := openFileName{
		Owner:   spec.Owner,
		Filter:  &filter[0],
		File:    &buf[0],
		MaxFile: uint32(len(buf)),
		Title:   optionalUTF16(spec.Title),
		Flags:   mode.flags(),
	}
	ofn.StructSize = uint32(unsafe.Sizeof(ofn))

	proc, name := procGetOpenFileNameW, "GetOpenFileNameW"
	if mode == saveFile {
		proc, name = procGetSaveFileNameW, "GetSaveFileNameW"
	}
	r, _, _ := proc.Call(uintptr(unsafe.Pointer(&ofn)))
	runtime.KeepAlive(filter)
	if r == 0 {
		return nil, false, commonDialogError(name)
	}

	paths := ParseFileBuffer(buf)
	if len(paths) == 0 {
		return nil, false, nil
	}
	return paths, true, nil
}

var browseCallback = sync.OnceValue(func() uintptr {
	return windows.NewCallback(func(hwnd, msg, lparam, data uintptr) uintptr {
		if msg == bffmInitialized && data != 0 {
			procSendMessageW.Call(hwnd, bffmSetSelectionW, 1, data)
		}
		return 0
	})
})

func folderDialog(spec dialog.FolderDialogSpec) (string, bool, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// The new dialog style needs OLE on this thread.
	if err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED); err == nil || errors.Is(err, syscall.Errno(1)) {
		defer windows.CoUninitialize()
	}

	display := make([]uint16, maxPath+1)
	bi := browseInfo{
		Owner:       spec.Owner,
		DisplayName: &display[0],
		Title:       optionalUTF16(spec.Title),
		Flags:       BIF_RETURNONLYFSDIRS | BIF_NEWDIALOGSTYLE,
		Callback:    browseCallback(),
	}
	var initial []uint16
	if spec.Directory != "" {
		initial = nativestr.UTF16(spec.Directory)
		bi.LParam = uintptr(unsafe.Pointer(&initial[0]))
	}

	pidl, _, _ := procSHBrowseForFolderW.Call(uintptr(unsafe.Pointer(&bi)))
	runtime.KeepAlive(initial)
	runtime.KeepAlive(display)
	if pidl == 0 {
		return "", false, nil
	}
	defer procCoTaskMemFree.Call(pidl)

	path := make([]uint16, maxPath)
	if r, _, _ := procSHGetPathFromIDListW.Call(pidl, uintptr(unsafe.Pointer(&path[0]))); r == 0 {
		return "", false, nil
	}
	dir := windows.UTF16ToString(path)
	if dir == "" {
		return "", false, nil
	}
	return dir, true, nil
}

func chooseColor(owner uintptr, initial uint32) (uint32, bool, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var custom [16]uint32
	cc := chooseColorInfo{
		Owner:      owner,
		Result:     initial,
		CustColors: &custom,
		Flags:      CC_RGBINIT | CC_FULLOPEN,
	}
	cc.StructSize = uint32(unsafe.Sizeof(cc))

	if r, _, _ := procChooseColorW.Call(uintptr(unsafe.Pointer(&cc))); r == 0 {
		return 0, false, commonDialogError("ChooseColorW")
	}
	return cc.Result, true, nil
}

// inputState is the text input dialog's data, reachable from the dialog
// procedure through the id stored in GWLP_USERDATA.
type inputState struct {
	inputGeometry
	message []uint16
	value   []uint16
	result  string
}

var inputs = struct {
	sync.Mutex
	next   uintptr
	states map[uintptr]*inputState
}{states: make(map[uintptr]*inputState)}

func registerInput(st *inputState) uintptr {
	inputs.Lock()
	defer inputs.Unlock()
	inputs.next++
	inputs.states[inputs.next] = st
	return inputs.next
}

func releaseInput(id uintptr) {
	inputs.Lock()
	defer inputs.Unlock()
	delete(inputs.states, id)
}

func stateOf(hwnd uintptr) *inputState {
	id, _, _ := procGetWindowLongPtrW.Call(hwnd, uintptr(gwlpUserData))
	inputs.Lock()
	defer inputs.Unlock()
	return inputs.states[id]
}

func layoutInput(hwnd uintptr, w, h int32, multiline bool) {
	l := dlgtemplate.Layout(w, h, multiline)
	for id, r := range map[uintptr]dlgtemplate.Rect{
		dlgtemplate.LabelID:  l.Label,
		dlgtemplate.EditID:   l.Edit,
		dlgtemplate.IDOK:     l.OK,
		dlgtemplate.IDCANCEL: l.Cancel,
	} {
		ctl, _, _ := procGetDlgItem.Call(hwnd, id)
		procMoveWindow.Call(ctl, uintptr(r.X), uintptr(r.Y), uintptr(r.W), uintptr(r.H), 1)
	}
}

func initInput(hwnd, id uintptr) {
	procSetWindowLongPtrW.Call(hwnd, uintptr(gwlpUserData), id)
	st := stateOf(hwnd)
	if st == nil {
		return
	}
	procSetDlgItemTextW.Call(hwnd, dlgtemplate.LabelID, uintptr(unsafe.Pointer(&st.message[0])))
	procSetDlgItemTextW.Call(hwnd, dlgtemplate.EditID, uintptr(unsafe.Pointer(&st.value[0])))

	edit, _, _ := procGetDlgItem.Call(hwnd, dlgtemplate.EditID)
	procSetFocus.Call(edit)
	end := uintptr(len(st.value) - 1)
	procSendMessageW.Call(edit, emSetSel, end, end)

	var client rect
	procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&client)))
	layoutInput(hwnd, client.Right-client.Left, client.Bottom-client.Top, st.multiline)

	if !st.multiline {
		var win rect
		procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&win)))
		st.fixedHeight = win.Bottom - win.Top
	}
}

func inputDialogProc(hwnd, msg, wparam, lparam uintptr) uintptr {
	switch msg {
	case wmInitDialog:
		initInput(hwnd, lparam)
		// Focus was set explicitly.
		return 0
	case wmSize:
		if st := stateOf(hwnd); st != nil {
			layoutInput(hwnd, loWord(lparam), hiWord(lparam), st.multiline)
		}
		return 0
	case wmGetMinMaxInfo:
		if lparam == 0 {
			return 0
		}
		var geom *inputGeometry
		if st := stateOf(hwnd); st != nil {
			geom = &st.inputGeometry
		}
		lim := geom.limits()
		mmi := (*minMaxInfo)(unsafe.Pointer(lparam))
		mmi.MinTrackSize = point{X: lim.MinW, Y: lim.MinH}
		if lim.MaxH > 0 {
			mmi.MaxTrackSize.Y = lim.MaxH
		}
		return 0
	case wmCommand:
		switch loWord(wparam) {
		case dlgtemplate.IDOK:
			if st := stateOf(hwnd); st != nil {
				buf := make([]uint16, inputBufferLen)
				n, _, _ := procGetDlgItemTextW.Call(hwnd, dlgtemplate.EditID, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
				st.result = windows.UTF16ToString(buf[:n])
			}
			procEndDialog.Call(hwnd, dlgtemplate.IDOK)
			return 1
		case dlgtemplate.IDCANCEL:
			procEndDialog.Call(hwnd, dlgtemplate.IDCANCEL)
			return 1
		}
	}
	return 0
}

var inputProc = sync.OnceValue(func() uintptr {
	return windows.NewCallback(inputDialogProc)
})

// alignedTemplate copies tpl into DWORD-aligned memory.
func alignedTemplate(tpl []byte) []uint32 {
	buf := make([]uint32, (len(tpl)+3)/4)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*4), tpl)
	return buf
}

func inputDialog(spec dialog.TextInputSpec) (string, bool, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	opts := dlgtemplate.InputOptions{
		Title:     spec.Title,
		Multiline: spec.Mode == dialog.MultiLine,
		Password:  spec.Mode == dialog.Password,
	}
	tpl := alignedTemplate(dlgtemplate.InputTemplate(opts))

	st := &inputState{
		inputGeometry: inputGeometry{multiline: opts.Multiline},
		message:       nativestr.UTF16(spec.Message),
		value:         nativestr.UTF16(spec.Value),
	}
	id := registerInput(st)
	defer releaseInput(id)

	instance, _, _ := procGetModuleHandleW.Call(0)
	r, _, err := procDialogBoxIndirectParamW.Call(instance,
		uintptr(unsafe.Pointer(&tpl[0])), spec.Owner, inputProc(), id)
	runtime.KeepAlive(tpl)
	switch int(r) {
	case dlgtemplate.IDOK:
		return st.result, true, nil
	case -1:
		return "", false, fmt.Errorf("%w: DialogBoxIndirectParamW: %v", dialog.ErrInit, err)
	default:
		return "", false, nil
	}
}
