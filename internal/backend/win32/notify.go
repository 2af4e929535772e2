package win32

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sibikrish3000/nativedialog/pkg/bridge"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// HTAHost shows notification documents.
const HTAHost = "mshta.exe"

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func htmlEscape(s string) string {
	return htmlReplacer.Replace(s)
}

func iconLabel(icon dialog.MessageIcon) string {
	switch icon {
	case dialog.IconWarning:
		return "Warning"
	case dialog.IconError:
		return "Error"
	case dialog.IconQuestion:
		return "Question"
	default:
		return "Info"
	}
}

// vbString quotes s as a VBScript string literal.
func vbString(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// HTADocument renders the notification shown from path. The document
// deletes its own file once loaded and closes itself after the timeout when
// one is set.
func HTADocument(spec dialog.NotifySpec, path string) string {
	message := htmlEscape(spec.Message)
	message = strings.ReplaceAll(message, "\n", "<br>")
	message = strings.ReplaceAll(message, "\t", "&nbsp;&nbsp;&nbsp;&nbsp;")

	var onLoad strings.Builder
	onLoad.WriteString("Sub Window_onLoad\n")
	onLoad.WriteString("\tOn Error Resume Next\n")
	fmt.Fprintf(&onLoad, "\tCreateObject(\"Scripting.FileSystemObject\").DeleteFile %s, True\n", vbString(path))
	if spec.Timeout > 0 {
		fmt.Fprintf(&onLoad, "\tidTimer = window.setTimeout(\"window.Close\", %d, \"VBScript\")\n", spec.Timeout)
	}
	onLoad.WriteString("End Sub")

	return fmt.Sprintf(`<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<HTA:APPLICATION
	SysMenu = "no"
	ID = "nativedialogHTA"
	APPLICATIONNAME = "nativedialog_notify"
	MINIMIZEBUTTON = "no"
	MAXIMIZEBUTTON = "no"
	BORDER = "dialog"
	SCROLL = "no"
	SINGLEINSTANCE = "yes"
	WINDOWSTATE = "hidden">
<script language="VBScript">
intWidth = Screen.Width/4
intHeight = Screen.Height/10
ResizeTo intWidth, intHeight
MoveTo Screen.Width * .7, Screen.Height * .8
%s
</script>
</head>
<body style="background-color:#EEEEEE; font-family:Arial; margin:12px;">
<div><strong>%s</strong></div>
<div>%s</div>
</body>
</html>
`, htmlEscape(spec.Title), onLoad.String(), iconLabel(spec.Icon), message)
}

// Notify writes the document to a uniquely named file and shows it with a
// detached mshta.exe.
func (b *Backend) Notify(spec dialog.NotifySpec) error {
	name := fmt.Sprintf("nativedialog-notify-%d-%d.hta", os.Getpid(), time.Now().UnixNano())
	path := filepath.Join(b.tempDir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create notification file: %w", err)
	}
	_, err = f.WriteString(HTADocument(spec, path))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write notification file: %w", err)
	}

	if err := b.runner.Start(bridge.CommandConfig{Command: HTAHost, Args: []string{path}}); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
