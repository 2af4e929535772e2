package dialog

import "strings"

// AllFilesDescription labels the catch-all filter appended to every list.
const AllFilesDescription = "All Files"

// AllFiles is the catch-all filter.
var AllFiles = FileFilter{Description: AllFilesDescription, Patterns: []string{"*"}}

// WithCatchAll returns filters in order followed by the catch-all filter.
// Filters without patterns are skipped.
func WithCatchAll(filters []FileFilter) []FileFilter {
	out := make([]FileFilter, 0, len(filters)+1)
	for _, f := range filters {
		if len(f.Patterns) == 0 {
			continue
		}
		out = append(out, f)
	}
	return append(out, AllFiles)
}

// JoinPatterns joins the filter's patterns with sep.
func (f FileFilter) JoinPatterns(sep string) string {
	return strings.Join(f.Patterns, sep)
}
