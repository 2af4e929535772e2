// Package desktop detects which desktop environment family the process runs
// under, so the backend resolver can prefer the matching helper program.
package desktop

import (
	"os"
	"strings"
	"sync"
)

// Family is a coarse desktop environment classification.
type Family int

const (
	// FamilyNone means no desktop hint was found in the environment.
	FamilyNone Family = iota
	// FamilyGNOME covers GNOME and derivatives that set a gnome hint.
	FamilyGNOME
	// FamilyKDE covers KDE and Plasma sessions.
	FamilyKDE
	// FamilyOther is a hint that names neither family (XFCE, sway, ...).
	FamilyOther
)

func (f Family) String() string {
	switch f {
	case FamilyGNOME:
		return "gnome"
	case FamilyKDE:
		return "kde"
	case FamilyOther:
		return "other"
	default:
		return "none"
	}
}

// Hint is the detection result.
type Hint struct {
	Family Family
	// Value is the raw hint, lower-cased. Empty when Family is FamilyNone.
	Value string
	// GNOMESession reports GNOME_DESKTOP_SESSION_ID presence, which only
	// matters when no hint is available.
	GNOMESession bool
}

var (
	detectOnce sync.Once
	detected   Hint
)

// getenv is the function used to read the environment.
// It can be overridden in tests for injection.
var getenv = defaultGetenv

func defaultGetenv(key string) string {
	return os.Getenv(key)
}

// Classify derives a Hint from an environment lookup function.
func Classify(getenv func(string) string) Hint {
	value := getenv("XDG_CURRENT_DESKTOP")
	if value == "" {
		value = getenv("DESKTOP_SESSION")
	}
	value = strings.ToLower(value)

	switch {
	case value == "":
		return Hint{Family: FamilyNone, GNOMESession: getenv("GNOME_DESKTOP_SESSION_ID") != ""}
	case strings.Contains(value, "gnome"):
		return Hint{Family: FamilyGNOME, Value: value}
	case strings.Contains(value, "kde"), strings.Contains(value, "plasma"):
		return Hint{Family: FamilyKDE, Value: value}
	default:
		return Hint{Family: FamilyOther, Value: value}
	}
}

// Detect returns the desktop hint of the current process.
// The result is cached after the first call.
func Detect() Hint {
	detectOnce.Do(func() {
		detected = Classify(getenv)
	})
	return detected
}

// PrefersKDE reports whether KDE's helper should be tried before GNOME's.
func (h Hint) PrefersKDE() bool {
	switch h.Family {
	case FamilyKDE:
		return true
	case FamilyNone:
		return !h.GNOMESession
	default:
		return false
	}
}

// resetDetection resets the detection state for testing purposes.
func resetDetection() {
	detectOnce = sync.Once{}
	detected = Hint{}
}
