//go:build linux || freebsd

package toolkit

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/sibikrish3000/nativedialog/internal/debug"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// AppName identifies the library to the notification server.
const AppName = "nativedialog"

var (
	notifyInit                   func(appName string) bool
	notifyNotificationNew        func(summary, body, icon string) uintptr
	notifyNotificationSetUrgency func(n uintptr, urgency int32)
	notifyNotificationSetTimeout func(n uintptr, timeout int32)
	notifyNotificationShow       func(n uintptr, err *uintptr) bool
)

var loadNotify = sync.OnceValue(func() error {
	if err := LoadGLib(); err != nil {
		return err
	}
	lib, err := Open("libnotify.so.4", "libnotify.so")
	if err != nil {
		return err
	}
	purego.RegisterLibFunc(&notifyInit, lib, "notify_init")
	purego.RegisterLibFunc(&notifyNotificationNew, lib, "notify_notification_new")
	purego.RegisterLibFunc(&notifyNotificationSetUrgency, lib, "notify_notification_set_urgency")
	purego.RegisterLibFunc(&notifyNotificationSetTimeout, lib, "notify_notification_set_timeout")
	purego.RegisterLibFunc(&notifyNotificationShow, lib, "notify_notification_show")

	var ok bool
	UI.Do(func() { ok = notifyInit(AppName) })
	if !ok {
		return fmt.Errorf("%w: notify_init failed", dialog.ErrInit)
	}
	debug.Printf("toolkit: libnotify initialized")
	return nil
})

// Notify posts a notification through libnotify. It returns once the
// notification server has accepted it.
func Notify(spec dialog.NotifySpec) error {
	if err := loadNotify(); err != nil {
		return err
	}
	n := NotificationFor(spec)

	var err error
	UI.Do(func() {
		obj := notifyNotificationNew(n.Summary, n.Body, n.Icon)
		if obj == 0 {
			err = fmt.Errorf("%w: notify_notification_new failed", dialog.ErrInit)
			return
		}
		defer gObjectUnref(obj)

		notifyNotificationSetUrgency(obj, n.Urgency)
		notifyNotificationSetTimeout(obj, n.Timeout)
		var gerr uintptr
		if !notifyNotificationShow(obj, &gerr) {
			err = TakeError(gerr)
		}
	})
	return err
}
