// Package export renders the task table to a printable PDF report.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/idilsaglam/tada/internal/tasklist"
)

// DefaultFileName is used when no report path is given.
const DefaultFileName = "tasks.pdf"

// Report describes one PDF export.
type Report struct {
	Title     string
	Generated time.Time
	Rows      []tasklist.Row
}

var columns = []struct {
	title string
	width float64
	align string
}{
	{"Task", 110, "L"},
	{"Deadline", 40, "C"},
	{"Completed", 30, "C"},
}

// Write renders r as a PDF document to w.
func Write(w io.Writer, r Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, true)
	pdf.SetCreator("tada", true)
	if !r.Generated.IsZero() {
		pdf.SetCreationDate(r.Generated)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr(r.Title))
	pdf.Ln(10)
	if !r.Generated.IsZero() {
		pdf.SetFont("Arial", "", 9)
		pdf.Cell(40, 6, "Generated "+r.Generated.Format("2006-01-02 15:04"))
		pdf.Ln(8)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range columns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	if len(r.Rows) == 0 {
		pdf.CellFormat(columns[0].width+columns[1].width+columns[2].width, 7, "no tasks", "1", 1, "C", false, 0, "")
	}
	for _, row := range r.Rows {
		cells := []string{row.Description, row.Deadline, row.Completed}
		for i, c := range columns {
			text := fit(pdf, tr, cells[i], c.width-2)
			pdf.CellFormat(c.width, 7, text, "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// fit translates s for the core font and cuts it until it fits in width,
// marking the cut with "...".
func fit(pdf *gofpdf.Fpdf, tr func(string) string, s string, width float64) string {
	if out := tr(s); pdf.GetStringWidth(out) <= width {
		return out
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(tr(string(r))+"...") > width {
		r = r[:len(r)-1]
	}
	return tr(string(r)) + "..."
}

// ResolvePath picks the output file: path if set, else DefaultFileName in dir,
// else DefaultFileName in the working directory.
func ResolvePath(path, dir string) (string, error) {
	if path != "" {
		return path, nil
	}
	if dir != "" {
		return filepath.Join(dir, DefaultFileName), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// WriteFile renders r and writes it to path, creating parent directories.
func WriteFile(path string, r Report) error {
	if path == "" {
		return errors.New("empty report path")
	}
	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
