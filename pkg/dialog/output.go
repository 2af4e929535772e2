package dialog

import "strings"

// SplitPaths decodes newline framed helper output into an ordered list of
// paths. Empty segments are dropped and an output without any path reports
// false, so a selection is never an empty list.
func SplitPaths(output string) ([]string, bool) {
	var paths []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths, len(paths) > 0
}

// TrimLine strips trailing line terminators from single value output.
func TrimLine(output string) string {
	return strings.TrimRight(output, "\r\n")
}
