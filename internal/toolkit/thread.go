// Package toolkit holds the plumbing shared by the GTK backends: the
// dedicated UI thread every toolkit call runs on, the one-shot registry that
// routes signal callbacks back to the waiting dialog, the GTK constants and
// their translation to dialog results, and the purego bindings for glib,
// gobject, gio and libnotify.
package toolkit

import (
	"runtime"
	"sync"
)

// Thread runs functions on one goroutine locked to its OS thread. GTK must
// only be called from the thread that initialized it.
type Thread struct {
	once  sync.Once
	calls chan func()
}

// UI is the thread all toolkit calls are made on.
var UI = &Thread{}

func (t *Thread) start() {
	t.calls = make(chan func())
	ready := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		close(ready)
		for fn := range t.calls {
			fn()
		}
	}()
	<-ready
}

// Do runs fn on the thread and waits for it to return. The thread is created
// on first use. fn must not call Do.
func (t *Thread) Do(fn func()) {
	t.once.Do(t.start)
	done := make(chan struct{})
	t.calls <- func() {
		defer close(done)
		fn()
	}
	<-done
}
