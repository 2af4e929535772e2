package dlgtemplate

// Control identifiers of the text input dialog.
const (
	IDOK     = 1
	IDCANCEL = 2
	LabelID  = 1001
	EditID   = 1002
)

// Layout constants in pixels.
const (
	MinWidth        = 300
	MinHeightSingle = 120
	MinHeightMulti  = 160

	Margin      = 12
	ButtonW     = 88
	ButtonH     = 26
	LabelH      = 16
	EditHSingle = 22
	ButtonGap   = 8
)

// InputOptions selects the presentation of the text input dialog.
type InputOptions struct {
	Title     string
	Multiline bool
	Password  bool
}

// EditStyle returns the style of the edit control.
func (o InputOptions) EditStyle() uint32 {
	style := uint32(WS_CHILD | WS_VISIBLE | WS_TABSTOP | WS_BORDER | ES_LEFT)
	if o.Multiline {
		style |= ES_MULTILINE | ES_AUTOVSCROLL | ES_WANTRETURN | WS_VSCROLL
	} else {
		style |= ES_AUTOHSCROLL
	}
	if o.Password {
		style |= ES_PASSWORD
	}
	return style
}

// InputTemplate returns the template of a resizable dialog with a label, an
// edit control and OK/Cancel buttons. Control positions are placeholders;
// the dialog procedure lays them out with Layout.
func InputTemplate(o InputOptions) []byte {
	height := int16(60)
	if o.Multiline {
		height = 140
	}

	var b Builder
	b.Header(Header{
		Style:    WS_POPUP | WS_CAPTION | WS_SYSMENU | WS_THICKFRAME | WS_MINIMIZEBOX | WS_VISIBLE | DS_CENTER | DS_SETFONT,
		Items:    4,
		X:        10,
		Y:        10,
		CX:       240,
		CY:       height,
		Title:    o.Title,
		FontSize: 9,
		FontName: "MS Shell Dlg 2",
	})
	b.Item(Item{Style: WS_CHILD | WS_VISIBLE, CX: 10, CY: 10, ID: LabelID, Class: ClassStatic})
	b.Item(Item{Style: o.EditStyle(), CX: 10, CY: 10, ID: EditID, Class: ClassEdit})
	b.Item(Item{Style: WS_CHILD | WS_VISIBLE | WS_TABSTOP | BS_DEFPUSHBUTTON, CX: 10, CY: 10, ID: IDOK, Class: ClassButton, Caption: "OK"})
	b.Item(Item{Style: WS_CHILD | WS_VISIBLE | WS_TABSTOP | BS_PUSHBUTTON, CX: 10, CY: 10, ID: IDCANCEL, Class: ClassButton, Caption: "Cancel"})
	return b.Bytes()
}

// Rect is a control position in client coordinates.
type Rect struct {
	X, Y, W, H int32
}

// InputLayout holds the positions of the input dialog's controls.
type InputLayout struct {
	Label, Edit, OK, Cancel Rect
}

// Layout places the controls in a client area of w by h pixels: the label
// along the top, the buttons in the bottom-right corner and the edit control
// stretched between them (multi-line) or fixed below the label.
func Layout(w, h int32, multiline bool) InputLayout {
	btnY := h - Margin - ButtonH
	cancelX := w - Margin - ButtonW
	okX := cancelX - ButtonGap - ButtonW

	editTop := int32(Margin + LabelH + 6)
	editH := int32(EditHSingle)
	if multiline {
		editH = max(btnY-editTop-Margin, EditHSingle)
	}

	return InputLayout{
		Label:  Rect{X: Margin, Y: Margin, W: w - 2*Margin, H: LabelH},
		Edit:   Rect{X: Margin, Y: editTop, W: w - 2*Margin, H: editH},
		OK:     Rect{X: okX, Y: btnY, W: ButtonW, H: ButtonH},
		Cancel: Rect{X: cancelX, Y: btnY, W: ButtonW, H: ButtonH},
	}
}

// TrackLimits is the window tracking size answer for WM_GETMINMAXINFO.
type TrackLimits struct {
	MinW, MinH int32
	// MaxH is zero when the height is not locked.
	MaxH int32
}

// Limits returns the tracking limits. In single-line mode the height is
// locked to fixedHeight, or to the minimum before it is known.
func Limits(multiline bool, fixedHeight int32) TrackLimits {
	if multiline {
		return TrackLimits{MinW: MinWidth, MinH: MinHeightMulti}
	}
	h := fixedHeight
	if h <= 0 {
		h = MinHeightSingle
	}
	return TrackLimits{MinW: MinWidth, MinH: h, MaxH: h}
}
