package dialog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestComposePath(t *testing.T) {
	sep := string(filepath.Separator)
	abs := filepath.Join(os.TempDir(), "report.txt")
	tests := []struct {
		name     string
		dir      string
		file     string
		want     string
		wantPath bool
	}{
		{"both", "/tmp", "out.txt", "/tmp" + sep + "out.txt", true},
		{"parent elements kept", "a" + sep + ".." + sep + "b", "c", "a" + sep + ".." + sep + "b" + sep + "c", true},
		{"trailing separator", "dir" + sep, "out.txt", "dir" + sep + "out.txt", true},
		{"absolute file name wins", "/tmp", abs, abs, true},
		{"directory only", "/tmp", "", "/tmp", true},
		{"file only", "", "out.txt", "out.txt", true},
		{"neither", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComposePath(tt.dir, tt.file)
			if got != tt.want || ok != tt.wantPath {
				t.Errorf("ComposePath(%q, %q) = (%q, %v), want (%q, %v)", tt.dir, tt.file, got, ok, tt.want, tt.wantPath)
			}
		})
	}
}

func TestInitialDirectoryAndDefaultName(t *testing.T) {
	tests := []struct {
		name     string
		spec     FileDialogSpec
		wantDir  string
		wantName string
	}{
		{"directory wins", FileDialogSpec{Directory: "/srv", FileName: "/tmp/a.txt"}, "/srv", "a.txt"},
		{"parent of file", FileDialogSpec{FileName: filepath.Join("/tmp", "a.txt")}, filepath.Clean("/tmp"), "a.txt"},
		{"bare name", FileDialogSpec{FileName: "a.txt"}, "", "a.txt"},
		{"empty", FileDialogSpec{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, _ := tt.spec.InitialDirectory()
			if dir != tt.wantDir {
				t.Errorf("InitialDirectory() = %q, want %q", dir, tt.wantDir)
			}
			name, _ := tt.spec.DefaultName()
			if name != tt.wantName {
				t.Errorf("DefaultName() = %q, want %q", name, tt.wantName)
			}
		})
	}
}

func TestWithCatchAll(t *testing.T) {
	in := []FileFilter{
		{Description: "Images", Patterns: []string{"*.png", "*.jpg"}},
		{Description: "Empty"},
		{Description: "Text", Patterns: []string{"*.txt"}},
	}
	got := WithCatchAll(in)
	want := []FileFilter{in[0], in[2], AllFiles}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WithCatchAll() = %+v, want %+v", got, want)
	}

	if got := WithCatchAll(nil); !reflect.DeepEqual(got, []FileFilter{AllFiles}) {
		t.Errorf("WithCatchAll(nil) = %+v", got)
	}
}

func TestWideRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := RGB{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)}
		r, g, b := c.Wide()
		if got := FromWide(r, g, b); got != c {
			t.Fatalf("FromWide(Wide(%v)) = %v", c, got)
		}
	}
	if r, _, _ := (RGB{R: 255}).Wide(); r != math.MaxUint16 {
		t.Errorf("Wide(255) = %d, want %d", r, math.MaxUint16)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  RGB
		ok    bool
	}{
		{"#FF8000", RGB{255, 128, 0}, true},
		{"ff8000", RGB{255, 128, 0}, true},
		{"#ff800080", RGB{255, 128, 0}, true},
		{"  #0a0B0c\n", RGB{10, 11, 12}, true},
		{"#FF80", RGB{}, false},
		{"#FF80000", RGB{}, false},
		{"#GG8000", RGB{}, false},
		{"#FF8000ZZ", RGB{}, false},
		{"#FFé000", RGB{}, false},
		{"+F8000", RGB{}, false},
		{"", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseHex(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseHex(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  RGB
		ok    bool
	}{
		{"rgb(1,2,3)", RGB{1, 2, 3}, true},
		{"rgb( 255 , 0 , 17 )\n", RGB{255, 0, 17}, true},
		{"#010203", RGB{1, 2, 3}, true},
		{"rgb(256,0,0)", RGB{}, false},
		{"rgb(1,2)", RGB{}, false},
		{"rgb(1,2,3,4)", RGB{}, false},
		{"rgb(1,2,3", RGB{}, false},
		{"rgba(1,2,3,0.5)", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseColor(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseWideTriple(t *testing.T) {
	got, ok := ParseWideTriple("65535,32896,0\n")
	if !ok || got != (RGB{255, 128, 0}) {
		t.Errorf("ParseWideTriple = (%v, %v)", got, ok)
	}
	if _, ok := ParseWideTriple("65536,0,0"); ok {
		t.Error("expected overflow to be rejected")
	}
	if _, ok := ParseWideTriple(""); ok {
		t.Error("expected empty output to be rejected")
	}
}

func TestFromUnit(t *testing.T) {
	tests := []struct {
		r, g, b float64
		want    RGB
	}{
		{1, 0, 0.5, RGB{255, 0, 128}},
		{-0.2, 1.7, 0.2, RGB{0, 255, 51}},
		{math.NaN(), 0, 0, RGB{}},
	}
	for _, tt := range tests {
		if got := FromUnit(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("FromUnit(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
	for v := 0; v <= 255; v++ {
		c := RGB{uint8(v), uint8(v), uint8(v)}
		if got := FromUnit(c.Unit()); got != c {
			t.Fatalf("FromUnit(Unit(%v)) = %v", c, got)
		}
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{255, 8, 171}).Hex(); got != "#FF08AB" {
		t.Errorf("Hex() = %q", got)
	}
}

func TestTimeoutSeconds(t *testing.T) {
	tests := []struct {
		ms      int
		want    int
		wantSet bool
		capped  int
	}{
		{0, 0, false, math.MaxInt32},
		{-5, 0, false, math.MaxInt32},
		{1, 1, true, 1},
		{1000, 1, true, 1},
		{2500, 3, true, 3},
		{60000, 60, true, 60},
	}

	for _, tt := range tests {
		got, ok := TimeoutSeconds(tt.ms)
		if got != tt.want || ok != tt.wantSet {
			t.Errorf("TimeoutSeconds(%d) = (%d, %v), want (%d, %v)", tt.ms, got, ok, tt.want, tt.wantSet)
		}
		if c := CappedTimeoutSeconds(tt.ms); c != tt.capped {
			t.Errorf("CappedTimeoutSeconds(%d) = %d, want %d", tt.ms, c, tt.capped)
		}
	}
}

func TestButtonTables(t *testing.T) {
	tests := []struct {
		buttons   MessageButtons
		results   []MessageResult
		rejective MessageResult
	}{
		{ButtonsOk, []MessageResult{ResultOk}, ResultOk},
		{ButtonsOkCancel, []MessageResult{ResultOk, ResultCancel}, ResultCancel},
		{ButtonsYesNo, []MessageResult{ResultYes, ResultNo}, ResultNo},
		{ButtonsYesNoCancel, []MessageResult{ResultYes, ResultNo, ResultCancel}, ResultCancel},
	}

	for _, tt := range tests {
		t.Run(tt.buttons.String(), func(t *testing.T) {
			if got := tt.buttons.Results(); !reflect.DeepEqual(got, tt.results) {
				t.Errorf("Results() = %v, want %v", got, tt.results)
			}
			if got := tt.buttons.Rejective(); got != tt.rejective {
				t.Errorf("Rejective() = %v, want %v", got, tt.rejective)
			}
			if !tt.buttons.Allows(tt.buttons.Rejective()) || !tt.buttons.Allows(tt.buttons.Affirmative()) {
				t.Error("rejective and affirmative results must belong to the set")
			}
			for _, r := range tt.results {
				got, ok := tt.buttons.ResultForLabel(r.Label())
				if !ok || got != r {
					t.Errorf("ResultForLabel(%q) = (%v, %v)", r.Label(), got, ok)
				}
			}
		})
	}
}

func TestSplitPaths(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
		ok     bool
	}{
		{"trailing newline", "/a/b.txt\n/a/c.txt\n", []string{"/a/b.txt", "/a/c.txt"}, true},
		{"crlf", "/a/b.txt\r\n/a/c.txt", []string{"/a/b.txt", "/a/c.txt"}, true},
		{"blank lines", "\n/a/b.txt\n\n", []string{"/a/b.txt"}, true},
		{"empty", "", nil, false},
		{"only newlines", "\n\n", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SplitPaths(tt.output)
			if !reflect.DeepEqual(got, tt.want) || ok != tt.ok {
				t.Errorf("SplitPaths(%q) = (%q, %v), want (%q, %v)", tt.output, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestProcessError(t *testing.T) {
	inner := errors.New("exit status 5")
	err := error(&ProcessError{Program: "zenity", Code: 5, Stderr: " boom\n", Err: inner})
	if got := err.Error(); got != "dialog: zenity exited with status 5: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Error("expected ProcessError to unwrap to the exit error")
	}
	var pe *ProcessError
	if !errors.As(err, &pe) || pe.Code != 5 {
		t.Errorf("errors.As failed: %v", pe)
	}
	if !errors.Is(DecodeError("kdialog", "color", "#zz"), ErrDecode) {
		t.Error("DecodeError must wrap ErrDecode")
	}
}
