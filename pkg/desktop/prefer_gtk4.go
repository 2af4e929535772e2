//go:build !darwin && !windows && gtk4

package desktop

const staticPreference = KindGTK4
