package dialog

import "math"

// TimeoutSeconds rounds a millisecond timeout up to whole seconds. It reports
// false when the notification should not be dismissed automatically.
func TimeoutSeconds(ms int) (int, bool) {
	if ms <= 0 {
		return 0, false
	}
	return (ms + 999) / 1000, true
}

// CappedTimeoutSeconds is TimeoutSeconds for hosts that cannot express an
// infinite timeout: a persistent notification gets math.MaxInt32 seconds.
func CappedTimeoutSeconds(ms int) int {
	s, ok := TimeoutSeconds(ms)
	if !ok || s > math.MaxInt32 {
		return math.MaxInt32
	}
	return s
}
