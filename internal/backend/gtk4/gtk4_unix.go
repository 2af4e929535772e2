//go:build linux || freebsd

package gtk4

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/sibikrish3000/nativedialog/internal/debug"
	"github.com/sibikrish3000/nativedialog/internal/toolkit"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// gdkRGBA mirrors GdkRGBA, which uses floats in GTK 4.
type gdkRGBA struct {
	Red, Green, Blue, Alpha float32
}

// textIter reserves room for a stack-allocated GtkTextIter.
type textIter [20]uintptr

// Library function pointers (populated by load)
var (
	gtkInitCheck                    func() bool
	gtkWindowSetTitle               func(window uintptr, title string)
	gtkWindowSetTransientFor        func(window, parent uintptr)
	gtkWindowSetModal               func(window uintptr, modal bool)
	gtkWindowSetDefaultSize         func(window uintptr, width, height int32)
	gtkWindowPresent                func(window uintptr)
	gtkWindowDestroy                func(window uintptr)
	gtkWidgetSetSizeRequest         func(widget uintptr, width, height int32)
	gtkWidgetSetMarginStart         func(widget uintptr, margin int32)
	gtkWidgetSetMarginEnd           func(widget uintptr, margin int32)
	gtkWidgetSetMarginTop           func(widget uintptr, margin int32)
	gtkWidgetSetMarginBottom        func(widget uintptr, margin int32)
	gtkWidgetSetHexpand             func(widget uintptr, expand bool)
	gtkWidgetSetVexpand             func(widget uintptr, expand bool)
	gtkDialogNew                    func() uintptr
	gtkDialogAddButton              func(dialog uintptr, text string, response int32) uintptr
	gtkDialogGetContentArea         func(dialog uintptr) uintptr
	gtkDialogGetWidgetForResponse   func(dialog uintptr, response int32) uintptr
	gtkMessageDialogNew             func(parent uintptr, flags, kind, buttons int32, format uintptr) uintptr
	gtkMessageDialogSetMarkup       func(dialog uintptr, markup string)
	gtkBoxSetSpacing                func(box uintptr, spacing int32)
	gtkBoxAppend                    func(box, child uintptr)
	gtkLabelNew                     func(text string) uintptr
	gtkLabelSetXalign               func(label uintptr, xalign float32)
	gtkEntryNew                     func() uintptr
	gtkEntrySetVisibility           func(entry uintptr, visible bool)
	gtkEditableSetText              func(editable uintptr, text string)
	gtkEditableGetText              func(editable uintptr) string
	gtkScrolledWindowNew            func() uintptr
	gtkScrolledWindowSetChild       func(window, child uintptr)
	gtkTextViewNew                  func() uintptr
	gtkTextViewGetBuffer            func(view uintptr) uintptr
	gtkTextBufferSetText            func(buffer uintptr, text string, length int32)
	gtkTextBufferGetBounds          func(buffer uintptr, start, end *textIter)
	gtkTextBufferGetText            func(buffer uintptr, start, end *textIter, includeHidden bool) uintptr
	gtkFileChooserNativeNew         func(title string, parent uintptr, action int32, accept, cancel string) uintptr
	gtkNativeDialogSetModal         func(dialog uintptr, modal bool)
	gtkNativeDialogShow             func(dialog uintptr)
	gtkNativeDialogHide             func(dialog uintptr)
	gtkFileChooserSetSelectMultiple func(chooser uintptr, multiple bool)
	gtkFileChooserSetFile           func(chooser, file uintptr, err *uintptr) bool
	gtkFileChooserSetCurrentFolder  func(chooser, file uintptr, err *uintptr) bool
	gtkFileChooserSetCurrentName    func(chooser uintptr, name string)
	gtkFileChooserGetFile           func(chooser uintptr) uintptr
	gtkFileChooserGetFiles          func(chooser uintptr) uintptr
	gtkFileChooserAddFilter         func(chooser, filter uintptr)
	gtkFileFilterNew                func() uintptr
	gtkFileFilterSetName            func(filter uintptr, name string)
	gtkFileFilterAddPattern         func(filter uintptr, pattern string)
	gtkColorChooserDialogNew        func(title string, parent uintptr) uintptr
	gtkColorChooserSetRGBA          func(chooser uintptr, color *gdkRGBA)
	gtkColorChooserGetRGBA          func(chooser uintptr, color *gdkRGBA)
)

var load = sync.OnceValue(func() error {
	if err := toolkit.LoadGLib(); err != nil {
		return err
	}
	lib, err := toolkit.Open("libgtk-4.so.1", "libgtk-4.so")
	if err != nil {
		return err
	}

	purego.RegisterLibFunc(&gtkInitCheck, lib, "gtk_init_check")
	purego.RegisterLibFunc(&gtkWindowSetTitle, lib, "gtk_window_set_title")
	purego.RegisterLibFunc(&gtkWindowSetTransientFor, lib, "gtk_window_set_transient_for")
	purego.RegisterLibFunc(&gtkWindowSetModal, lib, "gtk_window_set_modal")
	purego.RegisterLibFunc(&gtkWindowSetDefaultSize, lib, "gtk_window_set_default_size")
	purego.RegisterLibFunc(&gtkWindowPresent, lib, "gtk_window_present")
	purego.RegisterLibFunc(&gtkWindowDestroy, lib, "gtk_window_destroy")
	purego.RegisterLibFunc(&gtkWidgetSetSizeRequest, lib, "gtk_widget_set_size_request")
	purego.RegisterLibFunc(&gtkWidgetSetMarginStart, lib, "gtk_widget_set_margin_start")
	purego.RegisterLibFunc(&gtkWidgetSetMarginEnd, lib, "gtk_widget_set_margin_end")
	purego.RegisterLibFunc(&gtkWidgetSetMarginTop, lib, "gtk_widget_set_margin_top")
	purego.RegisterLibFunc(&gtkWidgetSetMarginBottom, lib, "gtk_widget_set_margin_bottom")
	purego.RegisterLibFunc(&gtkWidgetSetHexpand, lib, "gtk_widget_set_hexpand")
	purego.RegisterLibFunc(&gtkWidgetSetVexpand, lib, "gtk_widget_set_vexpand")
	purego.RegisterLibFunc(&gtkDialogNew, lib, "gtk_dialog_new")
	purego.RegisterLibFunc(&gtkDialogAddButton, lib, "gtk_dialog_add_button")
	purego.RegisterLibFunc(&gtkDialogGetContentArea, lib, "gtk_dialog_get_content_area")
	purego.RegisterLibFunc(&gtkDialogGetWidgetForResponse, lib, "gtk_dialog_get_widget_for_response")
	purego.RegisterLibFunc(&gtkMessageDialogNew, lib, "gtk_message_dialog_new")
	purego.RegisterLibFunc(&gtkMessageDialogSetMarkup, lib, "gtk_message_dialog_set_markup")
	purego.RegisterLibFunc(&gtkBoxSetSpacing, lib, "gtk_box_set_spacing")
	purego.RegisterLibFunc(&gtkBoxAppend, lib, "gtk_box_append")
	purego.RegisterLibFunc(&gtkLabelNew, lib, "gtk_label_new")
	purego.RegisterLibFunc(&gtkLabelSetXalign, lib, "gtk_label_set_xalign")
	purego.RegisterLibFunc(&gtkEntryNew, lib, "gtk_entry_new")
	purego.RegisterLibFunc(&gtkEntrySetVisibility, lib, "gtk_entry_set_visibility")
	purego.RegisterLibFunc(&gtkEditableSetText, lib, "gtk_editable_set_text")
	purego.RegisterLibFunc(&gtkEditableGetText, lib, "gtk_editable_get_text")
	purego.RegisterLibFunc(&gtkScrolledWindowNew, lib, "gtk_scrolled_window_new")
	purego.RegisterLibFunc(&gtkScrolledWindowSetChild, lib, "gtk_scrolled_window_set_child")
	purego.RegisterLibFunc(&gtkTextViewNew, lib, "gtk_text_view_new")
	purego.RegisterLibFunc(&gtkTextViewGetBuffer, lib, "gtk_text_view_get_buffer")
	purego.RegisterLibFunc(&gtkTextBufferSetText, lib, "gtk_text_buffer_set_text")
	purego.RegisterLibFunc(&gtkTextBufferGetBounds, lib, "gtk_text_buffer_get_bounds")
	purego.RegisterLibFunc(&gtkTextBufferGetText, lib, "gtk_text_buffer_get_text")
	purego.RegisterLibFunc(&gtkFileChooserNativeNew, lib, "gtk_file_chooser_native_new")
	purego.RegisterLibFunc(&gtkNativeDialogSetModal, lib, "gtk_native_dialog_set_modal")
	purego.RegisterLibFunc(&gtkNativeDialogShow, lib, "gtk_native_dialog_show")
	purego.RegisterLibFunc(&gtkNativeDialogHide, lib, "gtk_native_dialog_hide")
	purego.RegisterLibFunc(&gtkFileChooserSetSelectMultiple, lib, "gtk_file_chooser_set_select_multiple")
	purego.RegisterLibFunc(&gtkFileChooserSetFile, lib, "gtk_file_chooser_set_file")
	purego.RegisterLibFunc(&gtkFileChooserSetCurrentFolder, lib, "gtk_file_chooser_set_current_folder")
	purego.RegisterLibFunc(&gtkFileChooserSetCurrentName, lib, "gtk_file_chooser_set_current_name")
	purego.RegisterLibFunc(&gtkFileChooserGetFile, lib, "gtk_file_chooser_get_file")
	purego.RegisterLibFunc(&gtkFileChooserGetFiles, lib, "gtk_file_chooser_get_files")
	purego.RegisterLibFunc(&gtkFileChooserAddFilter, lib, "gtk_file_chooser_add_filter")
	purego.RegisterLibFunc(&gtkFileFilterNew, lib, "gtk_file_filter_new")
	purego.RegisterLibFunc(&gtkFileFilterSetName, lib, "gtk_file_filter_set_name")
	purego.RegisterLibFunc(&gtkFileFilterAddPattern, lib, "gtk_file_filter_add_pattern")
	purego.RegisterLibFunc(&gtkColorChooserDialogNew, lib, "gtk_color_chooser_dialog_new")
	purego.RegisterLibFunc(&gtkColorChooserSetRGBA, lib, "gtk_color_chooser_set_rgba")
	purego.RegisterLibFunc(&gtkColorChooserGetRGBA, lib, "gtk_color_chooser_get_rgba")

	var ok bool
	toolkit.UI.Do(func() { ok = gtkInitCheck() })
	if !ok {
		return fmt.Errorf("%w: gtk_init_check failed, no graphical session", dialog.ErrInit)
	}
	debug.Printf("gtk4: initialized")
	return nil
})

func onUI(fn func()) error {
	if err := load(); err != nil {
		return err
	}
	toolkit.UI.Do(fn)
	return nil
}

// runWindow presents a dialog, waits for its response and destroys it.
func runWindow(d uintptr) int32 {
	gtkWindowSetModal(d, true)
	return toolkit.RunResponse(d, func() { gtkWindowPresent(d) })
}

// runNative shows a native dialog and hides it once it responded.
func runNative(native uintptr) int32 {
	gtkNativeDialogSetModal(native, true)
	response := toolkit.RunResponse(native, func() { gtkNativeDialogShow(native) })
	gtkNativeDialogHide(native)
	return response
}

func showMessage(spec dialog.MessageSpec) (int32, error) {
	var response int32
	err := onUI(func() {
		d := gtkMessageDialogNew(spec.Owner, toolkit.DialogModal, toolkit.MessageType(spec.Icon), toolkit.ButtonsNone, 0)
		gtkWindowSetTitle(d, spec.Title)
		gtkMessageDialogSetMarkup(d, toolkit.Escape(spec.Message))
		for _, b := range toolkit.Buttons(spec.Buttons) {
			gtkDialogAddButton(d, b.Label, b.Response)
		}
		response = runWindow(d)
		gtkWindowDestroy(d)
	})
	return response, err
}

// setFolder points chooser at dir. A directory that cannot be selected is
// only logged; the chooser then opens in its default location.
func setFolder(chooser uintptr, dir string) {
	f := toolkit.NewFile(dir)
	defer toolkit.Unref(f)
	var gerr uintptr
	if !gtkFileChooserSetCurrentFolder(chooser, f, &gerr) {
		debug.Printf("gtk4: cannot open %s: %v", dir, toolkit.TakeError(gerr))
	}
}

func setFile(chooser uintptr, path string) {
	f := toolkit.NewFile(path)
	defer toolkit.Unref(f)
	var gerr uintptr
	if !gtkFileChooserSetFile(chooser, f, &gerr) {
		debug.Printf("gtk4: cannot select %s: %v", path, toolkit.TakeError(gerr))
	}
}

// configureChooser applies the initial location and the filter list. A save
// dialog gets the folder and a suggested name since the file usually does not
// exist yet. The chooser keeps its own reference to each filter.
func configureChooser(chooser uintptr, spec dialog.FileDialogSpec, save bool) {
	if save {
		if dir, ok := spec.InitialDirectory(); ok {
			setFolder(chooser, dir)
		}
		if name, ok := spec.DefaultName(); ok {
			gtkFileChooserSetCurrentName(chooser, name)
		}
	} else if path, ok := spec.InitialPath(); ok {
		setFile(chooser, path)
	}

	for _, f := range dialog.WithCatchAll(spec.Filters) {
		filter := gtkFileFilterNew()
		gtkFileFilterSetName(filter, f.Description)
		for _, p := range f.Patterns {
			gtkFileFilterAddPattern(filter, p)
		}
		gtkFileChooserAddFilter(chooser, filter)
		toolkit.Unref(filter)
	}
}

func openFiles(spec dialog.FileDialogSpec, multiple bool) ([]string, error) {
	var paths []string
	err := onUI(func() {
		native := gtkFileChooserNativeNew(spec.Title, spec.Owner, toolkit.ActionOpen, "Open", "Cancel")
		defer toolkit.Unref(native)

		gtkFileChooserSetSelectMultiple(native, multiple)
		configureChooser(native, spec, false)
		if runNative(native) != toolkit.ResponseAccept {
			return
		}
		if multiple {
			paths = toolkit.TakeFileList(gtkFileChooserGetFiles(native))
		} else if p, ok := toolkit.TakeFilePath(gtkFileChooserGetFile(native)); ok {
			paths = []string{p}
		}
	})
	return paths, err
}

// saveFile relies on GTK 4 always confirming overwrites.
func saveFile(spec dialog.FileDialogSpec) (string, bool, error) {
	var (
		path string
		ok   bool
	)
	err := onUI(func() {
		native := gtkFileChooserNativeNew(spec.Title, spec.Owner, toolkit.ActionSave, "Save", "Cancel")
		defer toolkit.Unref(native)

		configureChooser(native, spec, true)
		if runNative(native) != toolkit.ResponseAccept {
			return
		}
		path, ok = toolkit.TakeFilePath(gtkFileChooserGetFile(native))
	})
	return path, ok, err
}

func pickFolder(spec dialog.FolderDialogSpec) (string, bool, error) {
	var (
		path string
		ok   bool
	)
	err := onUI(func() {
		native := gtkFileChooserNativeNew(spec.Title, spec.Owner, toolkit.ActionSelectFolder, "Select", "Cancel")
		defer toolkit.Unref(native)

		if spec.Directory != "" {
			setFolder(native, spec.Directory)
		}
		if runNative(native) != toolkit.ResponseAccept {
			return
		}
		path, ok = toolkit.TakeFilePath(gtkFileChooserGetFile(native))
	})
	return path, ok, err
}

func styleButton(d uintptr, response int32) {
	button := gtkDialogGetWidgetForResponse(d, response)
	if button == 0 {
		return
	}
	gtkWidgetSetSizeRequest(button, 110, -1)
	gtkWidgetSetMarginStart(button, 6)
	gtkWidgetSetMarginEnd(button, 6)
	gtkWidgetSetMarginTop(button, 8)
	gtkWidgetSetMarginBottom(button, 8)
}

func setMargins(widget uintptr, m int32) {
	gtkWidgetSetMarginStart(widget, m)
	gtkWidgetSetMarginEnd(widget, m)
	gtkWidgetSetMarginTop(widget, m)
	gtkWidgetSetMarginBottom(widget, m)
}

// newInputDialog returns a dialog with Cancel and OK buttons and a label
// showing message in its content area.
func newInputDialog(spec dialog.TextInputSpec, width, height int32) (d, content uintptr) {
	d = gtkDialogNew()
	if spec.Owner != 0 {
		gtkWindowSetTransientFor(d, spec.Owner)
	}
	gtkWindowSetTitle(d, spec.Title)
	gtkWindowSetDefaultSize(d, width, height)
	gtkDialogAddButton(d, dialog.ResultCancel.Label(), toolkit.ResponseCancel)
	gtkDialogAddButton(d, dialog.ResultOk.Label(), toolkit.ResponseOK)
	styleButton(d, toolkit.ResponseCancel)
	styleButton(d, toolkit.ResponseOK)

	content = gtkDialogGetContentArea(d)
	gtkBoxSetSpacing(content, 10)
	setMargins(content, 14)

	label := gtkLabelNew(spec.Message)
	gtkLabelSetXalign(label, 0)
	gtkBoxAppend(content, label)
	return d, content
}

func textInput(spec dialog.TextInputSpec) (string, bool, error) {
	var (
		text string
		ok   bool
	)
	err := onUI(func() {
		if spec.Mode == dialog.MultiLine {
			d, content := newInputDialog(spec, 500, 380)
			scrolled := gtkScrolledWindowNew()
			view := gtkTextViewNew()
			buffer := gtkTextViewGetBuffer(view)
			gtkTextBufferSetText(buffer, spec.Value, -1)
			gtkWidgetSetSizeRequest(scrolled, 480, 280)
			gtkWidgetSetHexpand(scrolled, true)
			gtkWidgetSetVexpand(scrolled, true)
			gtkScrolledWindowSetChild(scrolled, view)
			gtkBoxAppend(content, scrolled)

			if runWindow(d) == toolkit.ResponseOK {
				var start, end textIter
				gtkTextBufferGetBounds(buffer, &start, &end)
				text, ok = toolkit.TakeString(gtkTextBufferGetText(buffer, &start, &end, false)), true
			}
			gtkWindowDestroy(d)
			return
		}

		d, content := newInputDialog(spec, 520, -1)
		gtkWidgetSetHexpand(content, true)
		gtkWidgetSetVexpand(content, true)
		entry := gtkEntryNew()
		gtkEditableSetText(entry, spec.Value)
		if spec.Mode == dialog.Password {
			gtkEntrySetVisibility(entry, false)
		}
		gtkBoxAppend(content, entry)

		if runWindow(d) == toolkit.ResponseOK {
			text, ok = gtkEditableGetText(entry), true
		}
		gtkWindowDestroy(d)
	})
	return text, ok, err
}

func pickColor(spec dialog.ColorSpec) (dialog.RGB, bool, error) {
	var (
		c  dialog.RGB
		ok bool
	)
	err := onUI(func() {
		d := gtkColorChooserDialogNew(spec.Title, spec.Owner)
		r, g, b := spec.Value.Unit()
		rgba := gdkRGBA{Red: float32(r), Green: float32(g), Blue: float32(b), Alpha: 1}
		gtkColorChooserSetRGBA(d, &rgba)

		if runWindow(d) == toolkit.ResponseOK {
			gtkColorChooserGetRGBA(d, &rgba)
			c, ok = dialog.FromUnit(float64(rgba.Red), float64(rgba.Green), float64(rgba.Blue)), true
		}
		gtkWindowDestroy(d)
	})
	return c, ok, err
}

func notify(spec dialog.NotifySpec) error {
	return toolkit.Notify(spec)
}
