package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// Invalid builds an InvalidInput exception with a request-specific message.
func Invalid(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsHard reports whether err belongs to the hard-error taxonomy rather than
// being an unexpected infrastructure failure.
func IsHard(err error) bool {
	var appErr *Exception
	return errors.As(err, &appErr)
}
