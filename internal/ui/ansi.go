// Package ui renders themed notices and framed panels for the line session.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

// Printer writes themed output to one stream.
type Printer struct {
	w     io.Writer
	theme Theme
	color bool
}

// ColorMode decides whether escape codes are emitted.
type ColorMode int

const (
	ColorAuto ColorMode = iota // only when w is a terminal
	ColorAlways
	ColorNever
)

// NewPrinter binds a theme to w.
func NewPrinter(w io.Writer, theme Theme, mode ColorMode) *Printer {
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorAuto:
		color = IsTTY(w)
	}
	if theme.Plain {
		color = false
	}
	return &Printer{w: w, theme: theme, color: color}
}

// Theme returns the printer's theme.
func (p *Printer) Theme() Theme { return p.theme }

// C wraps s in color when the printer emits color.
func (p *Printer) C(color, s string) string {
	if !p.color || color == "" {
		return s
	}
	return color + s + reset
}

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.w, p.C(p.theme.Success, p.theme.SymDone+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.w, p.C(p.theme.Error, p.theme.SymFail+" "+msg))
}

// Hint prints a muted follow-up line.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.w, p.C(p.theme.Muted, msg))
}

// Print writes s without a newline.
func (p *Printer) Print(s string) {
	fmt.Fprint(p.w, s)
}

// Println writes a raw line.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.w, s)
}

// IsTTY reports whether w is an *os.File attached to a terminal.
func IsTTY(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
