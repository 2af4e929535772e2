package zenity

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sibikrish3000/nativedialog/internal/backend/backendtest"
	"github.com/sibikrish3000/nativedialog/pkg/bridge"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

func TestBackendContract(t *testing.T) {
	backendtest.RunBackendTests(t, func(r bridge.Runner) dialog.Backend {
		return NewWithRunner(r)
	}, backendtest.Exit(1, "", ""))
}

func TestMessageArgs(t *testing.T) {
	tests := []struct {
		name string
		spec dialog.MessageSpec
		want []string
	}{
		{
			name: "ok info",
			spec: dialog.MessageSpec{Title: "T", Message: "M"},
			want: []string{"--title", "T", "--text", "M", "--info", "--ok-label", "OK"},
		},
		{
			name: "ok-cancel warning",
			spec: dialog.MessageSpec{Title: "T", Message: "M", Icon: dialog.IconWarning, Buttons: dialog.ButtonsOkCancel},
			want: []string{"--title", "T", "--text", "M", "--warning", "--ok-label", "OK", "--extra-button", "Cancel"},
		},
		{
			name: "yes-no question",
			spec: dialog.MessageSpec{Title: "T", Message: "M", Icon: dialog.IconQuestion, Buttons: dialog.ButtonsYesNo},
			want: []string{"--title", "T", "--text", "M", "--question", "--ok-label", "Yes", "--extra-button", "No"},
		},
		{
			name: "yes-no-cancel error",
			spec: dialog.MessageSpec{Title: "T", Message: "M", Icon: dialog.IconError, Buttons: dialog.ButtonsYesNoCancel},
			want: []string{"--title", "T", "--text", "M", "--error", "--ok-label", "Yes", "--extra-button", "Cancel", "--extra-button", "No"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := messageArgs(tt.spec); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("messageArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShowMessageOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		buttons dialog.MessageButtons
		reply   backendtest.Reply
		want    dialog.MessageResult
	}{
		{"ok pressed", dialog.ButtonsOkCancel, backendtest.Exit(0, "", ""), dialog.ResultOk},
		{"cancel pressed", dialog.ButtonsOkCancel, backendtest.Exit(1, "Cancel\n", ""), dialog.ResultCancel},
		{"window closed", dialog.ButtonsOkCancel, backendtest.Exit(1, "", ""), dialog.ResultCancel},
		{"foreign label", dialog.ButtonsOkCancel, backendtest.Exit(1, "No\n", ""), dialog.ResultCancel},
		{"yes pressed", dialog.ButtonsYesNo, backendtest.Exit(0, "", ""), dialog.ResultYes},
		{"no pressed", dialog.ButtonsYesNo, backendtest.Exit(1, "No\n", ""), dialog.ResultNo},
		{"yes-no closed", dialog.ButtonsYesNo, backendtest.Exit(1, "", ""), dialog.ResultNo},
		{"three buttons no", dialog.ButtonsYesNoCancel, backendtest.Exit(1, "No\n", ""), dialog.ResultNo},
		{"three buttons cancel", dialog.ButtonsYesNoCancel, backendtest.Exit(1, "Cancel\n", ""), dialog.ResultCancel},
		{"ok only closed", dialog.ButtonsOk, backendtest.Exit(1, "", ""), dialog.ResultOk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewWithRunner(backendtest.NewRunner(tt.reply))
			got, ok, err := b.ShowMessage(dialog.MessageSpec{Buttons: tt.buttons})
			if err != nil || !ok || got != tt.want {
				t.Errorf("ShowMessage() = (%v, %v, %v), want %v", got, ok, err, tt.want)
			}
		})
	}

	b := NewWithRunner(backendtest.NewRunner(backendtest.Exit(255, "", "cannot open display")))
	var pe *dialog.ProcessError
	if _, _, err := b.ShowMessage(dialog.MessageSpec{}); !errors.As(err, &pe) || pe.Code != 255 {
		t.Errorf("ShowMessage() error = %v, want ProcessError 255", err)
	}
}

func TestFileDialogs(t *testing.T) {
	filters := []dialog.FileFilter{{Description: "Images", Patterns: []string{"*.png", "*.jpg"}}}

	t.Run("pick files", func(t *testing.T) {
		r := backendtest.NewRunner(backendtest.Stdout("/a/b.txt\n/a/c.txt\n"))
		got, ok, err := NewWithRunner(r).PickFiles(dialog.FileDialogSpec{Title: "Open", Directory: "/tmp", FileName: "x.png", Filters: filters})
		if err != nil || !ok || !reflect.DeepEqual(got, []string{"/a/b.txt", "/a/c.txt"}) {
			t.Fatalf("PickFiles() = (%q, %v, %v)", got, ok, err)
		}
		want := []string{
			"--file-selection", "--title", "Open", "--filename", "/tmp" + string(filepath.Separator) + "x.png",
			"--multiple", "--separator", "\n",
			"--file-filter", "Images | *.png *.jpg",
			"--file-filter", "All Files (*) | *",
		}
		if call := r.Last(t); call.Command != "zenity" || !reflect.DeepEqual(call.Args, want) {
			t.Errorf("args = %q, want %q", call.Args, want)
		}
	})

	t.Run("pick file defaults to current directory", func(t *testing.T) {
		r := backendtest.NewRunner(backendtest.Stdout("/a/b.txt\n"))
		got, ok, err := NewWithRunner(r).PickFile(dialog.FileDialogSpec{Title: "Open"})
		if err != nil || !ok || got != "/a/b.txt" {
			t.Fatalf("PickFile() = (%q, %v, %v)", got, ok, err)
		}
		want := []string{"--file-selection", "--title", "Open", "--filename", ".", "--file-filter", "All Files (*) | *"}
		if args := r.Last(t).Args; !reflect.DeepEqual(args, want) {
			t.Errorf("args = %q, want %q", args, want)
		}
	})

	t.Run("save confirms overwrite", func(t *testing.T) {
		r := backendtest.NewRunner(backendtest.Stdout("/tmp/out.txt\n"))
		got, ok, err := NewWithRunner(r).SaveFile(dialog.FileDialogSpec{Title: "Save", FileName: "out.txt"})
		if err != nil || !ok || got != "/tmp/out.txt" {
			t.Fatalf("SaveFile() = (%q, %v, %v)", got, ok, err)
		}
		want := []string{"--file-selection", "--save", "--confirm-overwrite", "--title", "Save", "--filename", "out.txt", "--file-filter", "All Files (*) | *"}
		if args := r.Last(t).Args; !reflect.DeepEqual(args, want) {
			t.Errorf("args = %q, want %q", args, want)
		}
	})

	t.Run("folder", func(t *testing.T) {
		r := backendtest.NewRunner(backendtest.Stdout("/home/u\n"))
		got, ok, err := NewWithRunner(r).PickFolder(dialog.FolderDialogSpec{Title: "Dir"})
		if err != nil || !ok || got != "/home/u" {
			t.Fatalf("PickFolder() = (%q, %v, %v)", got, ok, err)
		}
		want := []string{"--file-selection", "--directory", "--title", "Dir", "--filename", "."}
		if args := r.Last(t).Args; !reflect.DeepEqual(args, want) {
			t.Errorf("args = %q, want %q", args, want)
		}
	})
}

func TestTextInput(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		r := backendtest.NewRunner(backendtest.Stdout("hello world\n"))
		got, ok, err := NewWithRunner(r).TextInput(dialog.TextInputSpec{Title: "T", Message: "M", Value: "v"})
		if err != nil || !ok || got != "hello world" {
			t.Fatalf("TextInput() = (%q, %v, %v)", got, ok, err)
		}
		want := []string{"--entry", "--title", "T", "--text", "M", "--entry-text", "v"}
		if args := r.Last(t).Args; !reflect.DeepEqual(args, want) {
			t.Errorf("args = %q, want %q", args, want)
		}
	})

	t.Run("confirm empty entry", func(t *testing.T) {
		r := backendtest.NewRunner(backendtest.Stdout("\n"))
		got, ok, err := NewWithRunner(r).TextInput(dialog.TextInputSpec{})
		if err != nil || !ok || got != "" {
			t.Fatalf("TextInput() = (%q, %v, %v)", got, ok, err)
		}
	})

	t.Run("password", func(t *testing.T) {
		r := backendtest.NewRunner(backendtest.Stdout("s3cret\n"))
		got, ok, err := NewWithRunner(r).TextInput(dialog.TextInputSpec{Title: "T", Message: "M", Mode: dialog.Password})
		if err != nil || !ok || got != "s3cret" {
			t.Fatalf("TextInput() = (%q, %v, %v)", got, ok, err)
		}
		want := []string{"--password", "--title", "T", "--text", "M"}
		if args := r.Last(t).Args; !reflect.DeepEqual(args, want) {
			t.Errorf("args = %q, want %q", args, want)
		}
	})

	t.Run("multi line reads the initial text from stdin", func(t *testing.T) {
		r := backendtest.NewRunner(backendtest.Stdout("line one\nline two\n"))
		b := NewWithRunner(r)

		got, ok, err := b.TextInput(dialog.TextInputSpec{Title: "T", Value: "initial\ntext", Mode: dialog.MultiLine})
		if err != nil || !ok || got != "line one\nline two\n" {
			t.Fatalf("TextInput() = (%q, %v, %v)", got, ok, err)
		}
		call := r.Last(t)
		if call.Stdin != "initial\ntext" {
			t.Errorf("stdin = %q, want the initial text", call.Stdin)
		}
		want := []string{"--text-info", "--editable", "--title", "T"}
		if !reflect.DeepEqual(call.Args, want) {
			t.Errorf("args = %q, want %q", call.Args, want)
		}
	})

	t.Run("single line has no stdin", func(t *testing.T) {
		r := backendtest.NewRunner(backendtest.Stdout("x\n"))
		if _, _, err := NewWithRunner(r).TextInput(dialog.TextInputSpec{Value: "v"}); err != nil {
			t.Fatal(err)
		}
		if s := r.Last(t).Stdin; s != "" {
			t.Errorf("stdin = %q, want none", s)
		}
	})
}

func TestPickColor(t *testing.T) {
	tests := []struct {
		output string
		want   dialog.RGB
	}{
		{"rgb(255,128,0)\n", dialog.RGB{R: 255, G: 128, B: 0}},
		{"#FF8000\n", dialog.RGB{R: 255, G: 128, B: 0}},
		{"#ff800080", dialog.RGB{R: 255, G: 128, B: 0}},
	}
	for _, tt := range tests {
		r := backendtest.NewRunner(backendtest.Stdout(tt.output))
		got, ok, err := NewWithRunner(r).PickColor(dialog.ColorSpec{Title: "C", Value: dialog.RGB{R: 1, G: 2, B: 3}})
		if err != nil || !ok || got != tt.want {
			t.Errorf("PickColor(%q) = (%v, %v, %v), want %v", tt.output, got, ok, err, tt.want)
		}
		want := []string{"--color-selection", "--title", "C", "--color", "#010203"}
		if args := r.Last(t).Args; !reflect.DeepEqual(args, want) {
			t.Errorf("args = %q, want %q", args, want)
		}
	}

	r := backendtest.NewRunner(backendtest.Stdout("not a color\n"))
	if _, _, err := NewWithRunner(r).PickColor(dialog.ColorSpec{}); !errors.Is(err, dialog.ErrDecode) {
		t.Errorf("PickColor() error = %v, want ErrDecode", err)
	}
}

func TestNotifyArgs(t *testing.T) {
	tests := []struct {
		name string
		spec dialog.NotifySpec
		want []string
	}{
		{
			name: "persistent",
			spec: dialog.NotifySpec{Title: "T", Message: "M"},
			want: []string{"--notification", "--icon", "dialog-information", "--text", "T\nM"},
		},
		{
			name: "rounded timeout",
			spec: dialog.NotifySpec{Title: "T", Message: "M", Icon: dialog.IconError, Timeout: 2500},
			want: []string{"--notification", "--icon", "dialog-error", "--text", "T\nM", "--timeout=3"},
		},
		{
			name: "question uses information icon",
			spec: dialog.NotifySpec{Icon: dialog.IconQuestion, Timeout: -1},
			want: []string{"--notification", "--icon", "dialog-information", "--text", "\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := notifyArgs(tt.spec); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("notifyArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}
