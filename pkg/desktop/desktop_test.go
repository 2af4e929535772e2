package desktop

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	session "github.com/sibikrish3000/nativedialog/internal/desktop"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

var unixKinds = []Kind{KindKDialog, KindZenity, KindGTK3, KindGTK4}

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func hintFrom(vars map[string]string) func() session.Hint {
	return func() session.Hint { return session.Classify(env(vars)) }
}

// onPath returns a probe that finds only the named programs and records every
// lookup.
func onPath(probed *[]string, names ...string) func(string) bool {
	return func(name string) bool {
		*probed = append(*probed, name)
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}
}

func TestChoose(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		static     Kind
		offered    []Kind
		installed  []string
		want       Kind
		wantProbes []string
	}{
		{
			name:      "override",
			env:       map[string]string{EnvBackend: "gtk4", "XDG_CURRENT_DESKTOP": "KDE"},
			offered:   unixKinds,
			installed: []string{"kdialog"},
			want:      KindGTK4,
		},
		{
			name:    "override beats build preference",
			env:     map[string]string{EnvBackend: "zenity"},
			static:  KindGTK3,
			offered: unixKinds,
			want:    KindZenity,
		},
		{
			name:    "build preference",
			env:     map[string]string{"XDG_CURRENT_DESKTOP": "KDE"},
			static:  KindGTK3,
			offered: unixKinds,
			want:    KindGTK3,
		},
		{
			name:    "platform default",
			static:  KindWin32,
			offered: []Kind{KindWin32},
			want:    KindWin32,
		},
		{
			name:       "GNOME prefers zenity",
			env:        map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"},
			offered:    unixKinds,
			installed:  []string{"zenity", "kdialog"},
			want:       KindZenity,
			wantProbes: []string{"zenity"},
		},
		{
			name:       "KDE prefers kdialog",
			env:        map[string]string{"XDG_CURRENT_DESKTOP": "KDE"},
			offered:    unixKinds,
			installed:  []string{"zenity", "kdialog"},
			want:       KindKDialog,
			wantProbes: []string{"kdialog"},
		},
		{
			name:       "KDE falls back to zenity",
			env:        map[string]string{"DESKTOP_SESSION": "plasma"},
			offered:    unixKinds,
			installed:  []string{"zenity"},
			want:       KindZenity,
			wantProbes: []string{"kdialog", "zenity"},
		},
		{
			name:       "other desktop prefers zenity",
			env:        map[string]string{"XDG_CURRENT_DESKTOP": "XFCE"},
			offered:    unixKinds,
			installed:  []string{"kdialog"},
			want:       KindKDialog,
			wantProbes: []string{"zenity", "kdialog"},
		},
		{
			name:       "GNOME session id without hint",
			env:        map[string]string{"GNOME_DESKTOP_SESSION_ID": "1"},
			offered:    unixKinds,
			installed:  []string{"zenity", "kdialog"},
			want:       KindZenity,
			wantProbes: []string{"zenity"},
		},
		{
			name:       "no hint prefers kdialog",
			offered:    unixKinds,
			installed:  []string{"zenity", "kdialog"},
			want:       KindKDialog,
			wantProbes: []string{"kdialog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var probed []string
			got, err := choose(env(tt.env), hintFrom(tt.env), onPath(&probed, tt.installed...), tt.static, tt.offered)
			if err != nil {
				t.Fatalf("choose() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("choose() = %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(probed, tt.wantProbes) {
				t.Errorf("probed %v, want %v", probed, tt.wantProbes)
			}
		})
	}
}

func TestChoose_UnknownOverride(t *testing.T) {
	vars := map[string]string{EnvBackend: "win32", "XDG_CURRENT_DESKTOP": "GNOME"}
	var probed []string
	_, err := choose(env(vars), hintFrom(vars), onPath(&probed, "zenity"), KindNone, unixKinds)
	if !errors.Is(err, dialog.ErrUnknownBackend) {
		t.Fatalf("error = %v, want ErrUnknownBackend", err)
	}
	if !strings.Contains(err.Error(), `"win32"`) {
		t.Errorf("error %q does not name the value", err)
	}
	if len(probed) != 0 {
		t.Errorf("override error fell through to probing %v", probed)
	}
}

func TestChoose_NoHelper(t *testing.T) {
	var probed []string
	_, err := choose(env(nil), hintFrom(nil), onPath(&probed), KindNone, unixKinds)
	if !errors.Is(err, dialog.ErrNoBackend) {
		t.Fatalf("error = %v, want ErrNoBackend", err)
	}
	for _, want := range []string{"kdialog", "zenity", EnvBackend} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestKindString(t *testing.T) {
	for _, k := range []Kind{KindGTK3, KindGTK4, KindKDialog, KindZenity, KindWin32, KindOSAScript} {
		got, ok := parseKind(k.String(), []Kind{KindGTK3, KindGTK4, KindKDialog, KindZenity, KindWin32, KindOSAScript})
		if !ok || got != k {
			t.Errorf("parseKind(%q) = (%v, %v)", k.String(), got, ok)
		}
		if b := newBackend(k); b == nil || b.Name() != k.String() {
			t.Errorf("newBackend(%v) has the wrong name", k)
		}
	}
	if _, ok := parseKind("GTK3", unixKinds); ok {
		t.Error("names are case sensitive")
	}
}

func stubResolution(t *testing.T, vars map[string]string) *int {
	t.Helper()
	lookups := 0
	oldGetenv, oldAvailable, oldDetect := getenv, available, detect
	getenv = func(key string) string {
		lookups++
		return vars[key]
	}
	available = func(string) bool { return false }
	detect = hintFrom(vars)
	resetResolution()
	t.Cleanup(func() {
		getenv, available, detect = oldGetenv, oldAvailable, oldDetect
		resetResolution()
	})
	return &lookups
}

func TestResolve_Memoized(t *testing.T) {
	want := platformKinds[0]
	lookups := stubResolution(t, map[string]string{EnvBackend: want.String()})

	first, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, _ := Resolve()
	if first != second {
		t.Error("Resolve() returned a different backend on the second call")
	}
	if *lookups != 1 {
		t.Errorf("environment read %d times, want 1", *lookups)
	}
	if k, err := Active(); err != nil || k != want {
		t.Errorf("Active() = (%v, %v), want %v", k, err, want)
	}
}

func TestResolve_ErrorIsSticky(t *testing.T) {
	stubResolution(t, map[string]string{EnvBackend: "no-such-backend"})

	for range 2 {
		if _, err := Resolve(); !errors.Is(err, dialog.ErrUnknownBackend) {
			t.Fatalf("Resolve() error = %v, want ErrUnknownBackend", err)
		}
	}
	if _, _, err := ShowMessage(dialog.MessageSpec{}); !errors.Is(err, dialog.ErrUnknownBackend) {
		t.Errorf("ShowMessage() error = %v", err)
	}
	if err := Notify(dialog.NotifySpec{}); !errors.Is(err, dialog.ErrUnknownBackend) {
		t.Errorf("Notify() error = %v", err)
	}
	if k, err := Active(); err == nil || k != KindNone {
		t.Errorf("Active() = (%v, %v)", k, err)
	}
}
