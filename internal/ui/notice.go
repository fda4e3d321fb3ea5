package ui

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/tada/internal/tasklist"
)

// Notice is the message shown to the user for a refused action
// ("add", "remove", "update", "toggle completion").
func Notice(action string, err error) string {
	var ve *tasklist.ValidationError
	var ie *tasklist.IndexError
	switch {
	case errors.As(err, &ve) && ve.Reason == tasklist.InvalidDate:
		return "Invalid date format. Please use yyyy-MM-dd."
	case errors.As(err, &ve):
		return "Please enter both task and deadline."
	case errors.As(err, &ie) && ie.Reason == tasklist.NoSelection:
		return "Please select a task to " + action + "."
	case errors.As(err, &ie):
		return fmt.Sprintf("index out of range: have %d, got %d", ie.Len, ie.Index+1)
	}
	return action + ": " + err.Error()
}
