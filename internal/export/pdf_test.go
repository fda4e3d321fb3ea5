package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/tada/internal/tasklist"
)

func sampleReport() Report {
	return Report{
		Title:     "Todo List",
		Generated: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
		Rows: []tasklist.Row{
			{Description: "Write report", Deadline: "2025-03-10", Completed: "Yes"},
			{Description: strings.Repeat("very long description ", 20), Deadline: "2025-04-15", Completed: "No"},
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Report{Title: "Empty"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty output")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.pdf")
	if err := WriteFile(path, sampleReport()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Error("file is not a PDF")
	}
	if err := WriteFile("", sampleReport()); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestResolvePath(t *testing.T) {
	if got, _ := ResolvePath("x.pdf", "/reports"); got != "x.pdf" {
		t.Errorf("explicit path: got %q", got)
	}
	if got, _ := ResolvePath("", "/reports"); got != filepath.Join("/reports", DefaultFileName) {
		t.Errorf("dir: got %q", got)
	}
	dir := t.TempDir()
	t.Chdir(dir)
	got, err := ResolvePath("", "")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != DefaultFileName {
		t.Errorf("working dir: got %q", got)
	}
}
