//go:build linux || freebsd

package gtk3

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/sibikrish3000/nativedialog/internal/debug"
	"github.com/sibikrish3000/nativedialog/internal/toolkit"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// gdkRGBA mirrors GdkRGBA, which uses doubles in GTK 3.
type gdkRGBA struct {
	Red, Green, Blue, Alpha float64
}

// textIter reserves room for a stack-allocated GtkTextIter.
type textIter [20]uintptr

// Library function pointers (populated by load)
var (
	gtkInitCheck                        func(argc, argv uintptr) bool
	gtkEventsPending                    func() bool
	gtkMainIteration                    func() bool
	gtkWidgetDestroy                    func(widget uintptr)
	gtkWidgetShowAll                    func(widget uintptr)
	gtkWidgetSetSizeRequest             func(widget uintptr, width, height int32)
	gtkWindowSetTitle                   func(window uintptr, title string)
	gtkWindowSetTransientFor            func(window, parent uintptr)
	gtkDialogNew                        func() uintptr
	gtkDialogRun                        func(dialog uintptr) int32
	gtkDialogAddButton                  func(dialog uintptr, text string, response int32) uintptr
	gtkDialogGetContentArea             func(dialog uintptr) uintptr
	gtkMessageDialogNew                 func(parent uintptr, flags, kind, buttons int32, format uintptr) uintptr
	gtkMessageDialogSetMarkup           func(dialog uintptr, markup string)
	gtkBoxPackStart                     func(box, child uintptr, expand, fill bool, padding uint32)
	gtkContainerAdd                     func(container, widget uintptr)
	gtkLabelNew                         func(text string) uintptr
	gtkEntryNew                         func() uintptr
	gtkEntrySetText                     func(entry uintptr, text string)
	gtkEntryGetText                     func(entry uintptr) string
	gtkEntrySetVisibility               func(entry uintptr, visible bool)
	gtkScrolledWindowNew                func(hadjustment, vadjustment uintptr) uintptr
	gtkTextViewNew                      func() uintptr
	gtkTextViewGetBuffer                func(view uintptr) uintptr
	gtkTextBufferSetText                func(buffer uintptr, text string, length int32)
	gtkTextBufferGetBounds              func(buffer uintptr, start, end *textIter)
	gtkTextBufferGetText                func(buffer uintptr, start, end *textIter, includeHidden bool) uintptr
	gtkFileChooserNativeNew             func(title string, parent uintptr, action int32, accept, cancel string) uintptr
	gtkNativeDialogRun                  func(dialog uintptr) int32
	gtkFileChooserSetSelectMultiple     func(chooser uintptr, multiple bool)
	gtkFileChooserSetDoOverwriteConfirm func(chooser uintptr, confirm bool)
	gtkFileChooserSetFilename           func(chooser uintptr, filename string) bool
	gtkFileChooserSetCurrentFolder      func(chooser uintptr, folder string) bool
	gtkFileChooserGetFilename           func(chooser uintptr) uintptr
	gtkFileChooserGetFilenames          func(chooser uintptr) uintptr
	gtkFileChooserAddFilter             func(chooser, filter uintptr)
	gtkFileFilterNew                    func() uintptr
	gtkFileFilterSetName                func(filter uintptr, name string)
	gtkFileFilterAddPattern             func(filter uintptr, pattern string)
	gtkColorChooserDialogNew            func(title string, parent uintptr) uintptr
	gtkColorChooserSetRGBA              func(chooser uintptr, color *gdkRGBA)
	gtkColorChooserGetRGBA              func(chooser uintptr, color *gdkRGBA)
)

var load = sync.OnceValue(func() error {
	if err := toolkit.LoadGLib(); err != nil {
		return err
	}
	lib, err := toolkit.Open("libgtk-3.so.0", "libgtk-3.so")
	if err != nil {
		return err
	}

	purego.RegisterLibFunc(&gtkInitCheck, lib, "gtk_init_check")
	purego.RegisterLibFunc(&gtkEventsPending, lib, "gtk_events_pending")
	purego.RegisterLibFunc(&gtkMainIteration, lib, "gtk_main_iteration")
	purego.RegisterLibFunc(&gtkWidgetDestroy, lib, "gtk_widget_destroy")
	purego.RegisterLibFunc(&gtkWidgetShowAll, lib, "gtk_widget_show_all")
	purego.RegisterLibFunc(&gtkWidgetSetSizeRequest, lib, "gtk_widget_set_size_request")
	purego.RegisterLibFunc(&gtkWindowSetTitle, lib, "gtk_window_set_title")
	purego.RegisterLibFunc(&gtkWindowSetTransientFor, lib, "gtk_window_set_transient_for")
	purego.RegisterLibFunc(&gtkDialogNew, lib, "gtk_dialog_new")
	purego.RegisterLibFunc(&gtkDialogRun, lib, "gtk_dialog_run")
	purego.RegisterLibFunc(&gtkDialogAddButton, lib, "gtk_dialog_add_button")
	purego.RegisterLibFunc(&gtkDialogGetContentArea, lib, "gtk_dialog_get_content_area")
	purego.RegisterLibFunc(&gtkMessageDialogNew, lib, "gtk_message_dialog_new")
	purego.RegisterLibFunc(&gtkMessageDialogSetMarkup, lib, "gtk_message_dialog_set_markup")
	purego.RegisterLibFunc(&gtkBoxPackStart, lib, "gtk_box_pack_start")
	purego.RegisterLibFunc(&gtkContainerAdd, lib, "gtk_container_add")
	purego.RegisterLibFunc(&gtkLabelNew, lib, "gtk_label_new")
	purego.RegisterLibFunc(&gtkEntryNew, lib, "gtk_entry_new")
	purego.RegisterLibFunc(&gtkEntrySetText, lib, "gtk_entry_set_text")
	purego.RegisterLibFunc(&gtkEntryGetText, lib, "gtk_entry_get_text")
	purego.RegisterLibFunc(&gtkEntrySetVisibility, lib, "gtk_entry_set_visibility")
	purego.RegisterLibFunc(&gtkScrolledWindowNew, lib, "gtk_scrolled_window_new")
	purego.RegisterLibFunc(&gtkTextViewNew, lib, "gtk_text_view_new")
	purego.RegisterLibFunc(&gtkTextViewGetBuffer, lib, "gtk_text_view_get_buffer")
	purego.RegisterLibFunc(&gtkTextBufferSetText, lib, "gtk_text_buffer_set_text")
	purego.RegisterLibFunc(&gtkTextBufferGetBounds, lib, "gtk_text_buffer_get_bounds")
	purego.RegisterLibFunc(&gtkTextBufferGetText, lib, "gtk_text_buffer_get_text")
	purego.RegisterLibFunc(&gtkFileChooserNativeNew, lib, "gtk_file_chooser_native_new")
	purego.RegisterLibFunc(&gtkNativeDialogRun, lib, "gtk_native_dialog_run")
	purego.RegisterLibFunc(&gtkFileChooserSetSelectMultiple, lib, "gtk_file_chooser_set_select_multiple")
	purego.RegisterLibFunc(&gtkFileChooserSetDoOverwriteConfirm, lib, "gtk_file_chooser_set_do_overwrite_confirmation")
	purego.RegisterLibFunc(&gtkFileChooserSetFilename, lib, "gtk_file_chooser_set_filename")
	purego.RegisterLibFunc(&gtkFileChooserSetCurrentFolder, lib, "gtk_file_chooser_set_current_folder")
	purego.RegisterLibFunc(&gtkFileChooserGetFilename, lib, "gtk_file_chooser_get_filename")
	purego.RegisterLibFunc(&gtkFileChooserGetFilenames, lib, "gtk_file_chooser_get_filenames")
	purego.RegisterLibFunc(&gtkFileChooserAddFilter, lib, "gtk_file_chooser_add_filter")
	purego.RegisterLibFunc(&gtkFileFilterNew, lib, "gtk_file_filter_new")
	purego.RegisterLibFunc(&gtkFileFilterSetName, lib, "gtk_file_filter_set_name")
	purego.RegisterLibFunc(&gtkFileFilterAddPattern, lib, "gtk_file_filter_add_pattern")
	purego.RegisterLibFunc(&gtkColorChooserDialogNew, lib, "gtk_color_chooser_dialog_new")
	purego.RegisterLibFunc(&gtkColorChooserSetRGBA, lib, "gtk_color_chooser_set_rgba")
	purego.RegisterLibFunc(&gtkColorChooserGetRGBA, lib, "gtk_color_chooser_get_rgba")

	var ok bool
	toolkit.UI.Do(func() { ok = gtkInitCheck(0, 0) })
	if !ok {
		return fmt.Errorf("%w: gtk_init_check failed, no graphical session", dialog.ErrInit)
	}
	debug.Printf("gtk3: initialized")
	return nil
})

// onUI loads GTK and runs fn on the UI thread.
func onUI(fn func()) error {
	if err := load(); err != nil {
		return err
	}
	toolkit.UI.Do(fn)
	return nil
}

// drainEvents lets GTK process the destruction of a dialog.
func drainEvents() {
	for gtkEventsPending() {
		gtkMainIteration()
	}
}

// runDialog runs d modally, destroys it and returns the response.
func runDialog(d uintptr) int32 {
	response := gtkDialogRun(d)
	gtkWidgetDestroy(d)
	drainEvents()
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
		response = runDialog(d)
	})
	return response, err
}

// configureChooser applies the initial path and the filter list. Filters are
// owned by the chooser once added.
func configureChooser(chooser uintptr, spec dialog.FileDialogSpec) {
	if path, ok := spec.InitialPath(); ok {
		gtkFileChooserSetFilename(chooser, path)
	}
	for _, f := range dialog.WithCatchAll(spec.Filters) {
		filter := gtkFileFilterNew()
		gtkFileFilterSetName(filter, f.Description)
		for _, p := range f.Patterns {
			gtkFileFilterAddPattern(filter, p)
		}
		gtkFileChooserAddFilter(chooser, filter)
	}
}

func openFiles(spec dialog.FileDialogSpec, multiple bool) ([]string, error) {
	var paths []string
	err := onUI(func() {
		native := gtkFileChooserNativeNew(spec.Title, spec.Owner, toolkit.ActionOpen, "Open", "Cancel")
		defer drainEvents()
		defer toolkit.Unref(native)

		gtkFileChooserSetSelectMultiple(native, multiple)
		configureChooser(native, spec)
		if gtkNativeDialogRun(native) != toolkit.ResponseAccept {
			return
		}
		if multiple {
			paths = toolkit.TakeFilenames(gtkFileChooserGetFilenames(native))
		} else if p, ok := toolkit.TakePath(gtkFileChooserGetFilename(native)); ok {
			paths = []string{p}
		}
	})
	return paths, err
}

func saveFile(spec dialog.FileDialogSpec) (string, bool, error) {
	var (
		path string
		ok   bool
	)
	err := onUI(func() {
		native := gtkFileChooserNativeNew(spec.Title, spec.Owner, toolkit.ActionSave, "Save", "Cancel")
		defer drainEvents()
		defer toolkit.Unref(native)

		gtkFileChooserSetDoOverwriteConfirm(native, true)
		configureChooser(native, spec)
		if gtkNativeDialogRun(native) != toolkit.ResponseAccept {
			return
		}
		path, ok = toolkit.TakePath(gtkFileChooserGetFilename(native))
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
		defer drainEvents()
		defer toolkit.Unref(native)

		if spec.Directory != "" {
			gtkFileChooserSetCurrentFolder(native, spec.Directory)
		}
		if gtkNativeDialogRun(native) != toolkit.ResponseAccept {
			return
		}
		path, ok = toolkit.TakePath(gtkFileChooserGetFilename(native))
	})
	return path, ok, err
}

// newInputDialog returns a dialog with Cancel and OK buttons and a label
// showing message in its content area.
func newInputDialog(spec dialog.TextInputSpec) (d, content uintptr) {
	d = gtkDialogNew()
	if spec.Owner != 0 {
		gtkWindowSetTransientFor(d, spec.Owner)
	}
	gtkWindowSetTitle(d, spec.Title)
	gtkDialogAddButton(d, dialog.ResultCancel.Label(), toolkit.ResponseCancel)
	gtkDialogAddButton(d, dialog.ResultOk.Label(), toolkit.ResponseOK)

	content = gtkDialogGetContentArea(d)
	gtkBoxPackStart(content, gtkLabelNew(spec.Message), false, false, 6)
	return d, content
}

func textInput(spec dialog.TextInputSpec) (string, bool, error) {
	var (
		text string
		ok   bool
	)
	err := onUI(func() {
		d, content := newInputDialog(spec)

		if spec.Mode == dialog.MultiLine {
			scrolled := gtkScrolledWindowNew(0, 0)
			view := gtkTextViewNew()
			buffer := gtkTextViewGetBuffer(view)
			gtkTextBufferSetText(buffer, spec.Value, -1)
			gtkWidgetSetSizeRequest(scrolled, 480, 280)
			gtkContainerAdd(scrolled, view)
			gtkBoxPackStart(content, scrolled, true, true, 6)
			gtkWidgetShowAll(d)

			if gtkDialogRun(d) == toolkit.ResponseOK {
				var start, end textIter
				gtkTextBufferGetBounds(buffer, &start, &end)
				text, ok = toolkit.TakeString(gtkTextBufferGetText(buffer, &start, &end, false)), true
			}
		} else {
			entry := gtkEntryNew()
			gtkEntrySetText(entry, spec.Value)
			if spec.Mode == dialog.Password {
				gtkEntrySetVisibility(entry, false)
			}
			gtkBoxPackStart(content, entry, false, false, 6)
			gtkWidgetShowAll(d)

			if gtkDialogRun(d) == toolkit.ResponseOK {
				text, ok = gtkEntryGetText(entry), true
			}
		}

		gtkWidgetDestroy(d)
		drainEvents()
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
		rgba := gdkRGBA{Red: r, Green: g, Blue: b, Alpha: 1}
		gtkColorChooserSetRGBA(d, &rgba)

		if gtkDialogRun(d) == toolkit.ResponseOK {
			gtkColorChooserGetRGBA(d, &rgba)
			c, ok = dialog.FromUnit(rgba.Red, rgba.Green, rgba.Blue), true
		}
		gtkWidgetDestroy(d)
		drainEvents()
	})
	return c, ok, err
}

func notify(spec dialog.NotifySpec) error {
	return toolkit.Notify(spec)
}
