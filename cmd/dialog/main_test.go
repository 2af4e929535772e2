package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// fakeBackend records the last request and answers from its fields.
type fakeBackend struct {
	ok      bool
	paths   []string
	text    string
	color   dialog.RGB
	result  dialog.MessageResult
	err     error
	request any
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) ShowMessage(spec dialog.MessageSpec) (dialog.MessageResult, bool, error) {
	f.request = spec
	return f.result, f.ok, f.err
}

func (f *fakeBackend) PickFile(spec dialog.FileDialogSpec) (string, bool, error) {
	f.request = spec
	if !f.ok {
		return "", false, f.err
	}
	return f.paths[0], true, f.err
}

func (f *fakeBackend) PickFiles(spec dialog.FileDialogSpec) ([]string, bool, error) {
	f.request = spec
	return f.paths, f.ok, f.err
}

func (f *fakeBackend) SaveFile(spec dialog.FileDialogSpec) (string, bool, error) {
	return f.PickFile(spec)
}

func (f *fakeBackend) PickFolder(spec dialog.FolderDialogSpec) (string, bool, error) {
	f.request = spec
	if !f.ok {
		return "", false, f.err
	}
	return f.paths[0], true, f.err
}

func (f *fakeBackend) TextInput(spec dialog.TextInputSpec) (string, bool, error) {
	f.request = spec
	return f.text, f.ok, f.err
}

func (f *fakeBackend) PickColor(spec dialog.ColorSpec) (dialog.RGB, bool, error) {
	f.request = spec
	return f.color, f.ok, f.err
}

func (f *fakeBackend) Notify(spec dialog.NotifySpec) error {
	f.request = spec
	return f.err
}

func runWith(t *testing.T, b *fakeBackend, tty bool, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	resolve := func() (dialog.Backend, error) { return b, nil }
	code = run(args, &out, &errOut, tty, resolve)
	return code, out.String(), errOut.String()
}

func TestRun_Operations(t *testing.T) {
	tests := []struct {
		name        string
		backend     fakeBackend
		tty         bool
		args        []string
		wantCode    int
		wantStdout  string
		wantRequest any
	}{
		{
			name:       "message",
			backend:    fakeBackend{ok: true, result: dialog.ResultYes},
			args:       []string{"-title", "Confirm", "-message", "Sure?", "-icon", "question", "-buttons", "yes-no", "message"},
			wantStdout: "yes\n",
			wantRequest: dialog.MessageSpec{
				Title: "Confirm", Message: "Sure?", Icon: dialog.IconQuestion, Buttons: dialog.ButtonsYesNo,
			},
		},
		{
			name:        "message dismissed",
			backend:     fakeBackend{},
			args:        []string{"message"},
			wantCode:    exitDismissed,
			wantRequest: dialog.MessageSpec{},
		},
		{
			name:       "open multiple with filters",
			backend:    fakeBackend{ok: true, paths: []string{"/a.png", "/b.jpg"}},
			args:       []string{"-dir", "/pics", "-filter", "Images:*.png;*.jpg", "-filter", "Text:*.txt", "open-multiple"},
			wantStdout: "/a.png\n/b.jpg\n",
			wantRequest: dialog.FileDialogSpec{
				Directory: "/pics",
				Filters: []dialog.FileFilter{
					{Description: "Images", Patterns: []string{"*.png", "*.jpg"}},
					{Description: "Text", Patterns: []string{"*.txt"}},
				},
			},
		},
		{
			name:        "open multiple on a terminal",
			backend:     fakeBackend{ok: true, paths: []string{"/a", "/b"}},
			tty:         true,
			args:        []string{"open-multiple"},
			wantStdout:  "Selected (2):\n  /a\n  /b\n",
			wantRequest: dialog.FileDialogSpec{},
		},
		{
			name:        "save",
			backend:     fakeBackend{ok: true, paths: []string{"/tmp/out.txt"}},
			args:        []string{"-dir", "/tmp", "-name", "out.txt", "save"},
			wantStdout:  "/tmp/out.txt\n",
			wantRequest: dialog.FileDialogSpec{Directory: "/tmp", FileName: "out.txt"},
		},
		{
			name:        "folder",
			backend:     fakeBackend{ok: true, paths: []string{"/home"}},
			args:        []string{"-dir", "/", "folder"},
			wantStdout:  "/home\n",
			wantRequest: dialog.FolderDialogSpec{Directory: "/"},
		},
		{
			name:        "multi-line input is verbatim",
			backend:     fakeBackend{ok: true, text: "one\ntwo"},
			args:        []string{"-mode", "multi-line", "-value", "seed", "input"},
			wantStdout:  "one\ntwo",
			wantRequest: dialog.TextInputSpec{Value: "seed", Mode: dialog.MultiLine},
		},
		{
			name:        "color by name",
			backend:     fakeBackend{ok: true, color: dialog.RGB{R: 1, G: 2, B: 3}},
			args:        []string{"-color", "Tomato", "color"},
			wantStdout:  "#010203\n",
			wantRequest: dialog.ColorSpec{Value: dialog.RGB{R: 255, G: 99, B: 71}},
		},
		{
			name:        "color on a terminal",
			backend:     fakeBackend{ok: true, color: dialog.RGB{R: 255}},
			tty:         true,
			args:        []string{"-color", "#00ff00", "color"},
			wantStdout:  "Color: #FF0000 rgb(255, 0, 0)\n",
			wantRequest: dialog.ColorSpec{Value: dialog.RGB{G: 255}},
		},
		{
			name:        "notify",
			backend:     fakeBackend{},
			args:        []string{"-message", "done", "-icon", "warning", "-timeout", "2.5s", "notify"},
			wantRequest: dialog.NotifySpec{Message: "done", Icon: dialog.IconWarning, Timeout: 2500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.backend
			code, stdout, stderr := runWith(t, &b, tt.tty, tt.args...)
			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
			if !reflect.DeepEqual(b.request, tt.wantRequest) {
				t.Errorf("request = %#v, want %#v", b.request, tt.wantRequest)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no operation", nil},
		{"unknown operation", []string{"explode"}},
		{"bad icon", []string{"-icon", "skull", "message"}},
		{"bad buttons", []string{"-buttons", "maybe", "message"}},
		{"bad mode", []string{"-mode", "secret", "input"}},
		{"bad color", []string{"-color", "notacolor", "color"}},
		{"bad timeout", []string{"-timeout", "soon", "notify"}},
		{"bad filter", []string{"-filter", "nopatterns", "open"}},
		{"missing request", []string{"-request", "/nonexistent/request.toml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBackend{ok: true}
			if code, _, _ := runWith(t, b, false, tt.args...); code != exitError {
				t.Errorf("exit code = %d, want %d", code, exitError)
			}
			if b.request != nil {
				t.Errorf("backend was called with %#v", b.request)
			}
		})
	}
}

func TestRun_BackendError(t *testing.T) {
	b := &fakeBackend{err: dialog.ErrInit}
	code, _, stderr := runWith(t, b, false, "notify")
	if code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
	if !bytes.Contains([]byte(stderr), []byte("[dialog] Error:")) {
		t.Errorf("stderr = %q", stderr)
	}

	var out, errOut bytes.Buffer
	resolve := func() (dialog.Backend, error) { return nil, dialog.ErrNoBackend }
	if code := run([]string{"message"}, &out, &errOut, false, resolve); code != exitError {
		t.Errorf("exit code = %d with no backend", code)
	}
}

func TestRun_RequestDocument(t *testing.T) {
	dir := t.TempDir()
	docs := map[string]string{
		"req.toml": `operation = "open"
title = "Pick"
directory = "/srv"

[[filters]]
description = "Logs"
patterns = ["*.log"]
`,
		"req.yaml": `operation: open
title: Pick
directory: /srv
filters:
  - description: Logs
    patterns: ["*.log"]
`,
	}
	want := dialog.FileDialogSpec{
		Title:     "Pick",
		Directory: "/srv",
		Filters:   []dialog.FileFilter{{Description: "Logs", Patterns: []string{"*.log"}}},
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
				t.Fatal(err)
			}
			b := &fakeBackend{ok: true, paths: []string{"/srv/a.log"}}
			code, stdout, stderr := runWith(t, b, false, "-request", path)
			if code != exitAnswered {
				t.Fatalf("exit code = %d (stderr: %s)", code, stderr)
			}
			if stdout != "/srv/a.log\n" {
				t.Errorf("stdout = %q", stdout)
			}
			if !reflect.DeepEqual(b.request, want) {
				t.Errorf("request = %#v, want %#v", b.request, want)
			}
		})
	}
}

func TestRun_FlagsOverrideDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yml")
	doc := "operation: message\ntitle: From file\nmessage: hello\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	b := &fakeBackend{ok: true}
	if code, _, _ := runWith(t, b, false, "-request", path, "-title", "From flag"); code != exitAnswered {
		t.Fatalf("exit code = %d", code)
	}
	want := dialog.MessageSpec{Title: "From flag", Message: "hello"}
	if !reflect.DeepEqual(b.request, want) {
		t.Errorf("request = %#v, want %#v", b.request, want)
	}
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"1500", 1500},
		{"-1", -1},
		{"2s", 2000},
		{"1m", 60000},
	}
	for _, tt := range tests {
		got, err := parseTimeout(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseTimeout(%q) = (%d, %v), want %d", tt.in, got, err, tt.want)
		}
	}
}

func TestLoadRequest_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadRequest(path); err == nil {
		t.Error("loadRequest() accepted a .json document")
	}
}
