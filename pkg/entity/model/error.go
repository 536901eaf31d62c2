package model

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Error codes
const (
	DBError             = "DB_ERROR"
	NotFoundError       = "NOT_FOUND_ERROR"
	InvalidParamError   = "INVALID_PARAM_ERROR"
	InternalServerError = "INTERNAL_SERVER_ERROR"
)

// Error is an application error that knows its HTTP status.
type Error struct {
	Code    string
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(code string, status int, message string, cause error) *Error {
	if cause == nil {
		cause = errors.New(message)
	} else {
		cause = errors.WithStack(cause)
	}
	return &Error{
		Code:    code,
		Status:  status,
		Message: message,
		cause:   cause,
	}
}

// NewDBError returns an error raised by the datastore.
func NewDBError(e error) error {
	return newError(DBError, http.StatusInternalServerError, e.Error(), e)
}

// NewNotFoundError returns an error for a missing record.
func NewNotFoundError(e error) error {
	message := "record not found"
	if e != nil {
		message = e.Error()
	}
	return newError(NotFoundError, http.StatusNotFound, message, e)
}

// NewInvalidParamError returns an error for a malformed request parameter.
func NewInvalidParamError(e error, param any) error {
	message := fmt.Sprintf("invalid param: %v", param)
	return newError(InvalidParamError, http.StatusBadRequest, message, e)
}

// NewTodoNotFoundError returns the not found error for a todo id.
func NewTodoNotFoundError(id int64) error {
	return NewNotFoundError(fmt.Errorf("could not find todo '%d'.", id))
}

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNotFoundError reports whether err is a not found error.
func IsNotFoundError(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == NotFoundError
}
