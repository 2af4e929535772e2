package toolkit

import (
	"math"
	"reflect"
	"sync"
	"testing"

	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

func TestThread_Do(t *testing.T) {
	th := &Thread{}

	var order []int
	for i := range 3 {
		th.Do(func() { order = append(order, i) })
	}
	if !reflect.DeepEqual(order, []int{0, 1, 2}) {
		t.Errorf("order = %v", order)
	}

	// Calls from many goroutines are serialized.
	var wg sync.WaitGroup
	counter := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			th.Do(func() { counter++ })
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}

func TestRegistry_OneShot(t *testing.T) {
	r := &Registry{}
	quits := 0
	id := r.Register(func() { quits++ })

	if r.Delivered(id) {
		t.Fatal("fresh id reports a delivery")
	}
	if !r.Deliver(id, ResponseOK) {
		t.Fatal("first delivery rejected")
	}
	if r.Deliver(id, ResponseCancel) {
		t.Error("second delivery accepted")
	}
	if quits != 1 {
		t.Errorf("onDeliver ran %d times, want 1", quits)
	}

	resp, ok := r.Release(id)
	if !ok || resp != ResponseOK {
		t.Errorf("Release() = (%d, %v), want (%d, true)", resp, ok, ResponseOK)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after release", r.Len())
	}
	if r.Deliver(id, ResponseOK) {
		t.Error("delivery to a released id accepted")
	}
}

func TestRegistry_NoDelivery(t *testing.T) {
	r := &Registry{}
	a := r.Register(nil)
	b := r.Register(nil)
	if a == b || a == 0 || b == 0 {
		t.Fatalf("ids %d and %d", a, b)
	}
	if _, ok := r.Release(a); ok {
		t.Error("Release() reports a response that never came")
	}
	if !r.Deliver(b, ResponseNo) {
		t.Error("delivery to remaining id rejected")
	}
	if _, ok := r.Release(12345); ok {
		t.Error("unknown id released")
	}
}

func TestButtons(t *testing.T) {
	tests := []struct {
		set  dialog.MessageButtons
		want []Button
	}{
		{dialog.ButtonsOk, []Button{{"OK", ResponseOK}}},
		{dialog.ButtonsOkCancel, []Button{{"Cancel", ResponseCancel}, {"OK", ResponseOK}}},
		{dialog.ButtonsYesNo, []Button{{"No", ResponseNo}, {"Yes", ResponseYes}}},
		{dialog.ButtonsYesNoCancel, []Button{{"Cancel", ResponseCancel}, {"No", ResponseNo}, {"Yes", ResponseYes}}},
	}
	for _, tt := range tests {
		if got := Buttons(tt.set); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Buttons(%v) = %v, want %v", tt.set, got, tt.want)
		}
	}
}

func TestMessageResult(t *testing.T) {
	tests := []struct {
		name     string
		response int32
		set      dialog.MessageButtons
		want     dialog.MessageResult
		ok       bool
	}{
		{"ok", ResponseOK, dialog.ButtonsOk, dialog.ResultOk, true},
		{"cancel", ResponseCancel, dialog.ButtonsOkCancel, dialog.ResultCancel, true},
		{"yes", ResponseYes, dialog.ButtonsYesNo, dialog.ResultYes, true},
		{"no", ResponseNo, dialog.ButtonsYesNoCancel, dialog.ResultNo, true},
		{"window closed", ResponseDeleteEvent, dialog.ButtonsYesNoCancel, 0, false},
		{"never answered", ResponseNone, dialog.ButtonsOk, 0, false},
		{"not in set", ResponseCancel, dialog.ButtonsYesNo, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MessageResult(tt.response, tt.set)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("MessageResult(%d) = (%v, %v), want (%v, %v)", tt.response, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMessageType(t *testing.T) {
	want := map[dialog.MessageIcon]int32{
		dialog.IconInfo:     MessageInfo,
		dialog.IconWarning:  MessageWarning,
		dialog.IconError:    MessageError,
		dialog.IconQuestion: MessageQuestion,
	}
	for icon, mt := range want {
		if got := MessageType(icon); got != mt {
			t.Errorf("MessageType(%v) = %d, want %d", icon, got, mt)
		}
	}
}

func TestNotificationFor(t *testing.T) {
	tests := []struct {
		name string
		spec dialog.NotifySpec
		want Notification
	}{
		{
			name: "persistent info",
			spec: dialog.NotifySpec{Title: "T", Message: "M"},
			want: Notification{"T", "M", "dialog-information", UrgencyNormal, ExpiresNever},
		},
		{
			name: "question uses the information icon",
			spec: dialog.NotifySpec{Icon: dialog.IconQuestion, Timeout: -5},
			want: Notification{"", "", "dialog-information", UrgencyNormal, ExpiresNever},
		},
		{
			name: "warning with timeout",
			spec: dialog.NotifySpec{Icon: dialog.IconWarning, Timeout: 1500},
			want: Notification{"", "", "dialog-warning", UrgencyNormal, 1500},
		},
		{
			name: "error is critical",
			spec: dialog.NotifySpec{Icon: dialog.IconError, Timeout: math.MaxInt},
			want: Notification{"", "", "dialog-error", UrgencyCritical, math.MaxInt32},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NotificationFor(tt.spec); got != tt.want {
				t.Errorf("NotificationFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
