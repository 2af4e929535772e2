// dialog shows native desktop dialogs from the command line, one dialog per
// invocation, and prints the answer to stdout.
//
// Usage:
//
//	dialog [flags] <operation>
//	dialog -request file.toml
//
// Operations:
//
//	message        Message box; prints the pressed button
//	open           Pick one file
//	open-multiple  Pick one or more files, one path per line
//	save           Pick a path to save to
//	folder         Pick a directory
//	input          Ask for text
//	color          Pick a color; prints #RRGGBB
//	notify         Show a notification and return immediately
//
// Exit status is 0 with an answer, 1 when the dialog was dismissed and 2 on
// errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/sibikrish3000/nativedialog/pkg/bridge"
	"github.com/sibikrish3000/nativedialog/pkg/desktop"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// Build-time variables, injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitAnswered  = 0
	exitDismissed = 1
	exitError     = 2
)

func main() {
	tty := bridge.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, tty, desktop.Resolve))
}

// run executes one invocation. resolve yields the backend once the request
// is valid; tty selects labelled output for a human reader.
func run(args []string, stdout, stderr io.Writer, tty bool, resolve func() (dialog.Backend, error)) int {
	fs := flag.NewFlagSet("dialog", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		filters     filterFlags
		requestPath string
		backend     string
		verbose     bool
		showVersion bool
	)
	fs.String("title", "", "Dialog title")
	fs.String("message", "", "Message or prompt text")
	fs.String("icon", "", "Icon: info, warning, error, question")
	fs.String("buttons", "", "Buttons: ok, ok-cancel, yes-no, yes-no-cancel")
	fs.String("dir", "", "Initial directory")
	fs.String("name", "", "Initial file name")
	fs.Var(&filters, "filter", "File filter as DESC:PATTERN[;PATTERN...] (repeatable)")
	fs.String("value", "", "Initial text")
	fs.String("mode", "", "Text mode: single-line, multi-line, password")
	fs.String("color", "", "Initial color: name, #RRGGBB or rgb(r,g,b)")
	fs.String("timeout", "", "Notification timeout (e.g. 5s or 5000)")
	fs.StringVar(&requestPath, "request", "", "Read the request from a .toml or .yaml document")
	fs.StringVar(&backend, "backend", "", "Backend override (sets "+desktop.EnvBackend+")")
	fs.BoolVar(&verbose, "v", false, "Log backend selection and helper invocations to stderr")
	fs.BoolVar(&showVersion, "version", false, "Print version information and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dialog [flags] <message|open|open-multiple|save|folder|input|color|notify>\n")
		fmt.Fprintf(stderr, "       dialog -request file.toml\n\n")
		fmt.Fprintf(stderr, "Show a native desktop dialog and print the answer.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  dialog -title Confirm -message 'Delete it?' -buttons yes-no -icon question message\n")
		fmt.Fprintf(stderr, "  dialog -filter 'Images:*.png;*.jpg' -dir ~/Pictures open-multiple\n")
		fmt.Fprintf(stderr, "  dialog -mode password -message 'Passphrase' input\n")
		fmt.Fprintf(stderr, "  dialog -color tomato color\n")
		fmt.Fprintf(stderr, "  dialog -backend zenity -timeout 5s -message 'Build finished' notify\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitAnswered
		}
		return exitError
	}

	if showVersion {
		fmt.Fprintf(stdout, "dialog %s\n  commit: %s\n  built:  %s\n  go:     %s\n", version, commit, date, runtime.Version())
		return exitAnswered
	}
	if verbose {
		desktop.SetLogger(log.New(stderr, "[dialog] ", 0))
	}

	var req request
	if requestPath != "" {
		var err error
		if req, err = loadRequest(requestPath); err != nil {
			fmt.Fprintf(stderr, "[dialog] Error: %v\n", err)
			return exitError
		}
	}
	overlay(&req, fs, filters)
	if fs.NArg() > 0 {
		req.Operation = fs.Arg(0)
	}
	if req.Operation == "" {
		fmt.Fprintln(stderr, "Error: no operation specified.")
		fmt.Fprintln(stderr, "Run 'dialog -help' for usage.")
		return exitError
	}

	if backend != "" {
		os.Setenv(desktop.EnvBackend, backend)
	}

	out := printer{w: stdout, tty: tty}
	ok, err := dispatch(req, resolve, out)
	switch {
	case err != nil:
		fmt.Fprintf(stderr, "[dialog] Error: %v\n", err)
		return exitError
	case !ok:
		if tty {
			fmt.Fprintln(stderr, "[dialog] Dismissed without an answer")
		}
		return exitDismissed
	default:
		return exitAnswered
	}
}

// dispatch validates req, resolves the backend and runs the operation.
func dispatch(req request, resolve func() (dialog.Backend, error), out printer) (bool, error) {
	icon, err := parseIcon(req.Icon)
	if err != nil {
		return false, err
	}
	buttons, err := parseButtons(req.Buttons)
	if err != nil {
		return false, err
	}
	mode, err := parseMode(req.Mode)
	if err != nil {
		return false, err
	}
	color, err := parseColor(req.Color)
	if err != nil {
		return false, err
	}
	timeout, err := parseTimeout(req.Timeout)
	if err != nil {
		return false, err
	}

	op := strings.ToLower(req.Operation)
	switch op {
	case "message", "open", "open-multiple", "save", "folder", "input", "color", "notify":
	default:
		return false, fmt.Errorf("unknown operation %q", req.Operation)
	}

	b, err := resolve()
	if err != nil {
		return false, err
	}

	switch op {
	case "message":
		r, ok, err := b.ShowMessage(dialog.MessageSpec{Title: req.Title, Message: req.Message, Icon: icon, Buttons: buttons})
		if ok {
			out.line("Pressed", r.String())
		}
		return ok, err
	case "open":
		path, ok, err := b.PickFile(req.fileSpec())
		if ok {
			out.line("Selected", path)
		}
		return ok, err
	case "open-multiple":
		paths, ok, err := b.PickFiles(req.fileSpec())
		if ok {
			out.lines("Selected", paths)
		}
		return ok, err
	case "save":
		path, ok, err := b.SaveFile(req.fileSpec())
		if ok {
			out.line("Save to", path)
		}
		return ok, err
	case "folder":
		path, ok, err := b.PickFolder(dialog.FolderDialogSpec{Title: req.Title, Directory: req.Directory})
		if ok {
			out.line("Folder", path)
		}
		return ok, err
	case "input":
		text, ok, err := b.TextInput(dialog.TextInputSpec{Title: req.Title, Message: req.Message, Value: req.Value, Mode: mode})
		if ok {
			out.text(text)
		}
		return ok, err
	case "color":
		c, ok, err := b.PickColor(dialog.ColorSpec{Title: req.Title, Value: color})
		if ok {
			out.color(c)
		}
		return ok, err
	default:
		err := b.Notify(dialog.NotifySpec{Title: req.Title, Message: req.Message, Icon: icon, Timeout: timeout})
		return err == nil, err
	}
}
