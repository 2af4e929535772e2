package toolkit

import "github.com/sibikrish3000/nativedialog/pkg/dialog"

// GtkResponseType values.
const (
	ResponseNone        int32 = -1
	ResponseReject      int32 = -2
	ResponseAccept      int32 = -3
	ResponseDeleteEvent int32 = -4
	ResponseOK          int32 = -5
	ResponseCancel      int32 = -6
	ResponseClose       int32 = -7
	ResponseYes         int32 = -8
	ResponseNo          int32 = -9
)

// GtkMessageType values.
const (
	MessageInfo     int32 = 0
	MessageWarning  int32 = 1
	MessageQuestion int32 = 2
	MessageError    int32 = 3
)

// GtkFileChooserAction values.
const (
	ActionOpen         int32 = 0
	ActionSave         int32 = 1
	ActionSelectFolder int32 = 2
)

const (
	DialogModal int32 = 1 << 0
	ButtonsNone int32 = 0
)

// MessageType returns the GtkMessageType showing icon.
func MessageType(icon dialog.MessageIcon) int32 {
	switch icon {
	case dialog.IconWarning:
		return MessageWarning
	case dialog.IconError:
		return MessageError
	case dialog.IconQuestion:
		return MessageQuestion
	default:
		return MessageInfo
	}
}

// Button is an action button added to a dialog.
type Button struct {
	Label    string
	Response int32
}

// Buttons returns the buttons of a message dialog in the order they are
// added; GTK places the last one, the affirmative, rightmost.
func Buttons(set dialog.MessageButtons) []Button {
	ok := Button{dialog.ResultOk.Label(), ResponseOK}
	cancel := Button{dialog.ResultCancel.Label(), ResponseCancel}
	yes := Button{dialog.ResultYes.Label(), ResponseYes}
	no := Button{dialog.ResultNo.Label(), ResponseNo}

	switch set {
	case dialog.ButtonsOkCancel:
		return []Button{cancel, ok}
	case dialog.ButtonsYesNo:
		return []Button{no, yes}
	case dialog.ButtonsYesNoCancel:
		return []Button{cancel, no, yes}
	default:
		return []Button{ok}
	}
}

// MessageResult maps a dialog response to the pressed button. Responses that
// are not buttons of the set, such as closing the window, yield no result.
func MessageResult(response int32, set dialog.MessageButtons) (dialog.MessageResult, bool) {
	var r dialog.MessageResult
	switch response {
	case ResponseOK:
		r = dialog.ResultOk
	case ResponseCancel:
		r = dialog.ResultCancel
	case ResponseYes:
		r = dialog.ResultYes
	case ResponseNo:
		r = dialog.ResultNo
	default:
		return 0, false
	}
	if !set.Allows(r) {
		return 0, false
	}
	return r, true
}

// NotifyUrgency values.
const (
	UrgencyLow      int32 = 0
	UrgencyNormal   int32 = 1
	UrgencyCritical int32 = 2
)

// ExpiresNever is NOTIFY_EXPIRES_NEVER.
const ExpiresNever int32 = 0

// Notification holds the libnotify parameters of a dialog.NotifySpec.
type Notification struct {
	Summary string
	Body    string
	Icon    string
	Urgency int32
	// Timeout in milliseconds, or ExpiresNever.
	Timeout int32
}

// NotificationFor translates spec.
func NotificationFor(spec dialog.NotifySpec) Notification {
	n := Notification{
		Summary: spec.Title,
		Body:    spec.Message,
		Icon:    "dialog-information",
		Urgency: UrgencyNormal,
		Timeout: ExpiresNever,
	}
	switch spec.Icon {
	case dialog.IconWarning:
		n.Icon = "dialog-warning"
	case dialog.IconError:
		n.Icon = "dialog-error"
		n.Urgency = UrgencyCritical
	}
	if spec.Timeout > 0 {
		n.Timeout = int32(min(spec.Timeout, 1<<31-1))
	}
	return n
}
