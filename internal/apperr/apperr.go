// Package apperr defines the error type shared by avail's packages
package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a contract violation by the caller, such as a
// time outside the grid or an unknown selection scheme.
var ErrInvalidArgument = errors.New("invalid argument")

// Error is an application error with an optional cause. Package-level
// templates are declared with a format string in Message and instantiated
// with Fmt.
type Error struct {
	Cause   error
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error with err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
	}
}
