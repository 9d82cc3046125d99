package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgPlayFailed    = "cannot play"
	MsgReserveFailed = "cannot reserve"
	MsgUseFailed     = "cannot use reserved piece"
	MsgSwapFailed    = "cannot swap"
	MsgLoadFailed    = "failed to load"
	MsgInvalid       = "is invalid"
)

// MapError wraps an error with a standardized "<component> <msg>" message.
func MapError(component string, err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", component, msg)
	return Wrap(err, code, formattedMsg)
}

// NewError creates a new AppError with standardized message format
func NewError(component string, code int, msg string, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", component, msg)
	return New(code, formattedMsg, cause)
}
