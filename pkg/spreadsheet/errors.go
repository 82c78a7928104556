package spreadsheet

import (
	"errors"
	"fmt"
)

var ErrEmptyFile = errors.New("file is empty")

// FormatError reports an upload that cannot be read as a table.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	switch {
	case e.Reason != "" && e.Err != nil:
		return fmt.Sprintf("invalid spreadsheet: %s: %v", e.Reason, e.Err)
	case e.Err != nil:
		return "invalid spreadsheet: " + e.Err.Error()
	default:
		return "invalid spreadsheet: " + e.Reason
	}
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatError(reason string, err error) error {
	return &FormatError{Reason: reason, Err: err}
}
