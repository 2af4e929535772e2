package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// filterDoc is one file filter of a request document.
type filterDoc struct {
	Description string   `toml:"description" yaml:"description"`
	Patterns    []string `toml:"patterns" yaml:"patterns"`
}

// request holds every field an operation may use. It is filled from an
// optional request document and then from the command line, flags winning.
type request struct {
	Operation string      `toml:"operation" yaml:"operation"`
	Title     string      `toml:"title" yaml:"title"`
	Message   string      `toml:"message" yaml:"message"`
	Icon      string      `toml:"icon" yaml:"icon"`
	Buttons   string      `toml:"buttons" yaml:"buttons"`
	Directory string      `toml:"directory" yaml:"directory"`
	FileName  string      `toml:"file_name" yaml:"file_name"`
	Filters   []filterDoc `toml:"filters" yaml:"filters"`
	Value     string      `toml:"value" yaml:"value"`
	Mode      string      `toml:"mode" yaml:"mode"`
	Color     string      `toml:"color" yaml:"color"`
	Timeout   string      `toml:"timeout" yaml:"timeout"`
}

// loadRequest reads a .toml, .yaml or .yml request document.
func loadRequest(path string) (request, error) {
	var req request
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &req)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &req)
	default:
		return req, fmt.Errorf("unsupported request format %q (use .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return req, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return req, nil
}

// filterFlags collects repeatable -filter "Desc:*.a;*.b" flags.
type filterFlags []filterDoc

func (f *filterFlags) String() string {
	parts := make([]string, len(*f))
	for i, d := range *f {
		parts[i] = d.Description + ":" + strings.Join(d.Patterns, ";")
	}
	return strings.Join(parts, ", ")
}

func (f *filterFlags) Set(val string) error {
	desc, patterns, ok := strings.Cut(val, ":")
	if !ok || desc == "" || patterns == "" {
		return fmt.Errorf("invalid filter %q, expected DESC:PATTERN[;PATTERN...]", val)
	}
	*f = append(*f, filterDoc{Description: desc, Patterns: strings.Split(patterns, ";")})
	return nil
}

// overlay copies every flag set on the command line into req.
func overlay(req *request, fs *flag.FlagSet, filters filterFlags) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "title":
			req.Title = v
		case "message":
			req.Message = v
		case "icon":
			req.Icon = v
		case "buttons":
			req.Buttons = v
		case "dir":
			req.Directory = v
		case "name":
			req.FileName = v
		case "filter":
			req.Filters = filters
		case "value":
			req.Value = v
		case "mode":
			req.Mode = v
		case "color":
			req.Color = v
		case "timeout":
			req.Timeout = v
		}
	})
}

func parseIcon(s string) (dialog.MessageIcon, error) {
	if s == "" {
		return dialog.IconInfo, nil
	}
	for _, i := range []dialog.MessageIcon{dialog.IconInfo, dialog.IconWarning, dialog.IconError, dialog.IconQuestion} {
		if strings.EqualFold(s, i.String()) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown icon %q (info, warning, error, question)", s)
}

func parseButtons(s string) (dialog.MessageButtons, error) {
	if s == "" {
		return dialog.ButtonsOk, nil
	}
	for _, b := range []dialog.MessageButtons{dialog.ButtonsOk, dialog.ButtonsOkCancel, dialog.ButtonsYesNo, dialog.ButtonsYesNoCancel} {
		if strings.EqualFold(s, b.String()) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown buttons %q (ok, ok-cancel, yes-no, yes-no-cancel)", s)
}

func parseMode(s string) (dialog.TextInputMode, error) {
	if s == "" {
		return dialog.SingleLine, nil
	}
	for _, m := range []dialog.TextInputMode{dialog.SingleLine, dialog.MultiLine, dialog.Password} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (single-line, multi-line, password)", s)
}

// parseColor accepts a CSS color name, #RRGGBB or rgb(r,g,b).
func parseColor(s string) (dialog.RGB, error) {
	if s == "" {
		return dialog.RGB{}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]; ok {
		return dialog.RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	if c, ok := dialog.ParseColor(s); ok {
		return c, nil
	}
	return dialog.RGB{}, fmt.Errorf("invalid color %q", s)
}

// parseTimeout accepts a duration ("5s") or plain milliseconds.
func parseTimeout(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if ms, err := strconv.Atoi(s); err == nil {
		return ms, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	return int(d.Milliseconds()), nil
}

func (r request) fileSpec() dialog.FileDialogSpec {
	spec := dialog.FileDialogSpec{Title: r.Title, Directory: r.Directory, FileName: r.FileName}
	for _, f := range r.Filters {
		spec.Filters = append(spec.Filters, dialog.FileFilter{Description: f.Description, Patterns: f.Patterns})
	}
	return spec
}
