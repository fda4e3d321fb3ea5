package model

import (
	"strings"
	"time"
)

// DateLayout is the only accepted deadline format (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// Task is the domain model for one todo entry.
type Task struct {
	Description string
	Deadline    time.Time
	Completed   bool
}

// ParseDeadline parses text in DateLayout. Surrounding whitespace is ignored.
// The result is midnight UTC of that date.
func ParseDeadline(text string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(text))
}

// FormatDeadline renders d back in DateLayout.
func FormatDeadline(d time.Time) string {
	return d.Format(DateLayout)
}

// CompletedLabel is the table label for the completion flag.
func CompletedLabel(done bool) string {
	if done {
		return "Yes"
	}
	return "No"
}
