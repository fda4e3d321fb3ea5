package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// VisibleWidth is the terminal cell width of s, ignoring escape codes.
func VisibleWidth(s string) int { return runewidth.StringWidth(stripANSI(s)) }

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Pad right-pads s with spaces to width visible cells.
func Pad(s string, width int) string {
	if vis := VisibleWidth(s); vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	return s
}

// Truncate shortens s to at most width cells, marking the cut with "...".
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}

// Panel draws a framed box around lines.
func (p *Printer) Panel(lines []string) {
	t := p.theme
	maxw := 0
	for _, ln := range lines {
		if w := VisibleWidth(ln); w > maxw {
			maxw = w
		}
	}
	fmt.Fprintln(p.w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(p.w, t.V+" "+Pad(ln, maxw)+" "+t.V)
	}
	fmt.Fprintln(p.w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}
