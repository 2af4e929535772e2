package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// printer writes answers either labelled for a terminal or bare for scripts.
type printer struct {
	w   io.Writer
	tty bool
}

func (p printer) line(label, value string) {
	if p.tty {
		fmt.Fprintf(p.w, "%s: %s\n", label, value)
		return
	}
	fmt.Fprintln(p.w, value)
}

func (p printer) lines(label string, values []string) {
	if p.tty {
		fmt.Fprintf(p.w, "%s (%d):\n", label, len(values))
		for _, v := range values {
			fmt.Fprintf(p.w, "  %s\n", v)
		}
		return
	}
	for _, v := range values {
		fmt.Fprintln(p.w, v)
	}
}

// text writes input verbatim for scripts so multi-line answers survive
// unchanged.
func (p printer) text(s string) {
	if !p.tty {
		io.WriteString(p.w, s)
		return
	}
	if strings.HasSuffix(s, "\n") {
		fmt.Fprint(p.w, s)
	} else {
		fmt.Fprintln(p.w, s)
	}
}

func (p printer) color(c dialog.RGB) {
	if p.tty {
		fmt.Fprintf(p.w, "Color: %s rgb(%d, %d, %d)\n", c.Hex(), c.R, c.G, c.B)
		return
	}
	fmt.Fprintln(p.w, c.Hex())
}
