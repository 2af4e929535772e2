package dialog

import (
	"os"
	"path/filepath"
)

// ComposePath joins an initial directory and file name. With only one set it
// is returned verbatim; with neither there is no initial path.
//
// The join is textual: ".." elements and repeated separators are kept, and an
// absolute file name replaces the directory.
func ComposePath(directory, fileName string) (string, bool) {
	switch {
	case directory != "" && fileName != "":
		if filepath.IsAbs(fileName) {
			return fileName, true
		}
		if os.IsPathSeparator(directory[len(directory)-1]) {
			return directory + fileName, true
		}
		return directory + string(filepath.Separator) + fileName, true
	case directory != "":
		return directory, true
	case fileName != "":
		return fileName, true
	default:
		return "", false
	}
}

// InitialDirectory returns the directory a dialog should open in: the
// directory when set, else the parent of the file name.
func (s FileDialogSpec) InitialDirectory() (string, bool) {
	if s.Directory != "" {
		return s.Directory, true
	}
	if s.FileName == "" {
		return "", false
	}
	dir := filepath.Dir(s.FileName)
	if dir == "." && !filepath.IsAbs(s.FileName) && filepath.Base(s.FileName) == s.FileName {
		return "", false
	}
	return dir, true
}

// DefaultName returns the base of the initial file name.
func (s FileDialogSpec) DefaultName() (string, bool) {
	if s.FileName == "" {
		return "", false
	}
	name := filepath.Base(s.FileName)
	if name == "." || name == string(filepath.Separator) {
		return "", false
	}
	return name, true
}
