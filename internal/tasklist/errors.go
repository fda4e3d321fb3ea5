package tasklist

import (
	"errors"
	"fmt"
)

// Reason tags why an operation was refused.
type Reason int

const (
	EmptyInput Reason = iota + 1
	InvalidDate
	NoSelection
	OutOfRange
)

func (r Reason) String() string {
	switch r {
	case EmptyInput:
		return "EMPTY_INPUT"
	case InvalidDate:
		return "INVALID_DATE"
	case NoSelection:
		return "NO_SELECTION"
	case OutOfRange:
		return "OUT_OF_RANGE"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrEmptyInput  = errors.New("empty input")
	ErrInvalidDate = errors.New("invalid date")
	ErrNoSelection = errors.New("no selection")
	ErrOutOfRange  = errors.New("index out of range")

	// ErrUpdateAbandoned is returned by UpdateAt when a new value was withheld.
	ErrUpdateAbandoned = errors.New("update abandoned")
)

// ValidationError reports input that failed EMPTY_INPUT or INVALID_DATE checks.
type ValidationError struct {
	Reason Reason
	Input  string // offending deadline text, set for InvalidDate
	Err    error  // parse error, set for InvalidDate
}

func (e *ValidationError) Error() string {
	if e.Reason == InvalidDate {
		return fmt.Sprintf("%s: %q is not a yyyy-MM-dd date", e.Reason, e.Input)
	}
	return fmt.Sprintf("%s: description and deadline are required", e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	switch e.Reason {
	case EmptyInput:
		return target == ErrEmptyInput
	case InvalidDate:
		return target == ErrInvalidDate
	}
	return false
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IndexError reports a selection that does not name a task.
type IndexError struct {
	Reason Reason
	Index  int // requested index, meaningful for OutOfRange
	Len    int // list length at the time of the call
}

func (e *IndexError) Error() string {
	if e.Reason == NoSelection {
		return fmt.Sprintf("%s: no task selected", e.Reason)
	}
	return fmt.Sprintf("%s: index %d not in [0, %d)", e.Reason, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	switch e.Reason {
	case NoSelection:
		return target == ErrNoSelection
	case OutOfRange:
		return target == ErrOutOfRange
	}
	return false
}
