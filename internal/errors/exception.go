package errors

import (
	"errors"
	"net/http"
)

// Exception is an error that knows how it should be reported to a client.
// Detail, when set, replaces Message in the response body.
type Exception struct {
	Message    string
	StatusCode int
	Detail     any
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity
	}

	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Detail returns the value rendered under "detail" in error responses.
func Detail(err error) any {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}

	var appErr *Exception
	if errors.As(err, &appErr) {
		if appErr.Detail != nil {
			return appErr.Detail
		}
		return appErr.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}
