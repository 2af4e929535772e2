//go:build linux || freebsd

package toolkit

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/sibikrish3000/nativedialog/internal/debug"
	"github.com/sibikrish3000/nativedialog/internal/nativestr"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

const (
	rtldNow    = 0x2
	rtldGlobal = 0x100
)

// Open loads the first library of names that the dynamic linker finds.
func Open(names ...string) (uintptr, error) {
	var lastErr error
	for _, name := range names {
		h, err := purego.Dlopen(name, rtldNow|rtldGlobal)
		if err == nil {
			debug.Printf("toolkit: loaded %s", name)
			return h, nil
		}
		lastErr = err
	}
	return 0, fmt.Errorf("%w: cannot load %v: %v", dialog.ErrInit, names, lastErr)
}

// Library function pointers (populated by loadGLib)
var (
	gFree                    func(mem uintptr)
	gSlistFree               func(list uintptr)
	gMarkupEscapeText        func(text string, length int) uintptr
	gMainLoopNew             func(context uintptr, isRunning bool) uintptr
	gMainLoopRun             func(loop uintptr)
	gMainLoopQuit            func(loop uintptr)
	gMainLoopUnref           func(loop uintptr)
	gMainContextPending      func(context uintptr) bool
	gMainContextIteration    func(context uintptr, mayBlock bool) bool
	gErrorFree               func(err uintptr)
	gObjectUnref             func(object uintptr)
	gSignalConnectData       func(instance uintptr, signal string, handler, data, destroy uintptr, flags int32) uint64
	gSignalHandlerDisconnect func(instance uintptr, handler uint64)
	gFileNewForPath          func(path string) uintptr
	gFileGetPath             func(file uintptr) uintptr
	gListModelGetNItems      func(list uintptr) uint32
	gListModelGetItem        func(list uintptr, position uint32) uintptr
)

var loadGLib = sync.OnceValue(func() error {
	glib, err := Open("libglib-2.0.so.0", "libglib-2.0.so")
	if err != nil {
		return err
	}
	gobject, err := Open("libgobject-2.0.so.0", "libgobject-2.0.so")
	if err != nil {
		return err
	}
	gio, err := Open("libgio-2.0.so.0", "libgio-2.0.so")
	if err != nil {
		return err
	}

	purego.RegisterLibFunc(&gFree, glib, "g_free")
	purego.RegisterLibFunc(&gSlistFree, glib, "g_slist_free")
	purego.RegisterLibFunc(&gMarkupEscapeText, glib, "g_markup_escape_text")
	purego.RegisterLibFunc(&gMainLoopNew, glib, "g_main_loop_new")
	purego.RegisterLibFunc(&gMainLoopRun, glib, "g_main_loop_run")
	purego.RegisterLibFunc(&gMainLoopQuit, glib, "g_main_loop_quit")
	purego.RegisterLibFunc(&gMainLoopUnref, glib, "g_main_loop_unref")
	purego.RegisterLibFunc(&gMainContextPending, glib, "g_main_context_pending")
	purego.RegisterLibFunc(&gMainContextIteration, glib, "g_main_context_iteration")
	purego.RegisterLibFunc(&gErrorFree, glib, "g_error_free")

	purego.RegisterLibFunc(&gObjectUnref, gobject, "g_object_unref")
	purego.RegisterLibFunc(&gSignalConnectData, gobject, "g_signal_connect_data")
	purego.RegisterLibFunc(&gSignalHandlerDisconnect, gobject, "g_signal_handler_disconnect")

	purego.RegisterLibFunc(&gFileNewForPath, gio, "g_file_new_for_path")
	purego.RegisterLibFunc(&gFileGetPath, gio, "g_file_get_path")
	purego.RegisterLibFunc(&gListModelGetNItems, gio, "g_list_model_get_n_items")
	purego.RegisterLibFunc(&gListModelGetItem, gio, "g_list_model_get_item")
	return nil
})

// LoadGLib loads glib, gobject and gio once.
func LoadGLib() error {
	return loadGLib()
}

// Escape returns text with markup characters escaped.
func Escape(text string) string {
	return TakeString(gMarkupEscapeText(text, -1))
}

// TakeString copies a newly allocated gchar* and frees it.
func TakeString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	s := nativestr.GoString(ptr)
	gFree(ptr)
	return s
}

// TakePath is TakeString for a path that may be absent.
func TakePath(ptr uintptr) (string, bool) {
	if ptr == 0 {
		return "", false
	}
	s := TakeString(ptr)
	return s, s != ""
}

func Unref(object uintptr) {
	if object != 0 {
		gObjectUnref(object)
	}
}

// gslist mirrors GSList.
type gslist struct {
	data uintptr
	next uintptr
}

// TakeFilenames copies the strings of a GSList of gchar* and frees both the
// strings and the list.
func TakeFilenames(list uintptr) []string {
	var paths []string
	for node := list; node != 0; {
		n := (*gslist)(unsafe.Pointer(node))
		if n.data != 0 {
			paths = append(paths, TakeString(n.data))
		}
		node = n.next
	}
	if list != 0 {
		gSlistFree(list)
	}
	return paths
}

// NewFile returns a GFile for path. The caller unrefs it.
func NewFile(path string) uintptr {
	return gFileNewForPath(path)
}

// TakeFilePath returns the path of a GFile and unrefs it.
func TakeFilePath(file uintptr) (string, bool) {
	if file == 0 {
		return "", false
	}
	defer gObjectUnref(file)
	return TakePath(gFileGetPath(file))
}

// TakeFileList returns the paths of a GListModel of GFile, releasing every
// item and the model.
func TakeFileList(model uintptr) []string {
	if model == 0 {
		return nil
	}
	defer gObjectUnref(model)
	n := gListModelGetNItems(model)
	paths := make([]string, 0, n)
	for i := range n {
		if p, ok := TakeFilePath(gListModelGetItem(model, i)); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

// Drain runs pending main context work without blocking.
func Drain() {
	for gMainContextPending(0) {
		gMainContextIteration(0, false)
	}
}

// gerror mirrors the head of GError.
type gerror struct {
	domain  uint32
	code    int32
	message uintptr
}

// TakeError converts and frees a GError. A zero pointer is no error.
func TakeError(ptr uintptr) error {
	if ptr == 0 {
		return nil
	}
	e := (*gerror)(unsafe.Pointer(ptr))
	err := fmt.Errorf("toolkit: %s (code %d)", nativestr.GoString(e.message), e.code)
	gErrorFree(ptr)
	return err
}

// responseCallback is connected to every "response" signal. The user data is
// a Responses id.
var responseCallback = sync.OnceValue(func() uintptr {
	return purego.NewCallback(func(instance, response, data uintptr) {
		Responses.Deliver(data, int32(uint32(response)))
	})
})

// RunResponse shows a dialog through show and runs a nested main loop until
// the dialog emits "response". The handler is disconnected and pending work
// drained before returning. ResponseNone is returned if the loop ended
// without a response.
func RunResponse(object uintptr, show func()) int32 {
	loop := gMainLoopNew(0, false)
	id := Responses.Register(func() { gMainLoopQuit(loop) })
	handler := gSignalConnectData(object, "response", responseCallback(), id, 0, 0)

	show()
	if !Responses.Delivered(id) {
		gMainLoopRun(loop)
	}

	gSignalHandlerDisconnect(object, handler)
	gMainLoopUnref(loop)
	response, ok := Responses.Release(id)
	Drain()
	if !ok {
		return ResponseNone
	}
	return response
}
