//go:build !darwin && !windows && gtk3 && !gtk4

package desktop

const staticPreference = KindGTK3
