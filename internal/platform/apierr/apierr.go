// Package apierr pairs an HTTP status and a stable machine-readable code
// with the underlying error, so handlers can map service failures to
// responses without matching on message strings.
package apierr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// NotFound is the common missing-record case.
func NotFound(code string, err error) *Error {
	return New(http.StatusNotFound, code, err)
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err != nil:
		return e.Err.Error()
	case e.Code != "":
		return e.Code
	default:
		return fmt.Sprintf("http %d", e.Status)
	}
}

func (e *Error) Unwrap() error { return e.Err }
