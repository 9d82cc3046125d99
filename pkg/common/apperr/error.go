package apperr

import (
	"github.com/pkg/errors"
)

// CodeUnknown is reported by CodeOf for errors that carry no AppError.
const CodeUnknown = 0

// AppError is a recoverable application error with a stable code and a
// user-facing message. The cause stays reachable through errors.Is / errors.As.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// Error returns the message followed by the cause, if any.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError.
func New(code int, msg string, cause error) *AppError {
	return &AppError{Code: code, Message: msg, Err: cause}
}

// Wrap wraps err with a code and message. Returns nil if err is nil.
func Wrap(err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, err)
}

// CodeOf returns the code of the first AppError in err's chain, or CodeUnknown.
func CodeOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}
