//go:build !darwin && !windows

package desktop

var platformKinds = []Kind{KindKDialog, KindZenity, KindGTK3, KindGTK4}
