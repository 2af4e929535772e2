//go:build !darwin && !windows && !gtk3 && !gtk4

package desktop

// staticPreference is KindNone: helper programs are discovered at run time.
const staticPreference = KindNone
