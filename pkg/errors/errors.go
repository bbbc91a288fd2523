package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrBadRequest     = errors.New("invalid request")
	ErrCodeTaken      = errors.New("code already in use")
	ErrInternalServer = errors.New("internal server error")
)

// HttpError carries the HTTP status together with a user-facing message.
// The wrapped Err and Details are for logs only and never leave the server.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details ...map[string]interface{}) *HttpError {
	httpErr := &HttpError{Code: code, Message: message, Err: err}
	if len(details) > 0 {
		httpErr.Details = details[0]
	}
	return httpErr
}
