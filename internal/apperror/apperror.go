// Package apperror defines the typed application error that separates
// anticipated (operational) failures from defects.
package apperror

import (
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"strings"
)

// HTTPCode is one of the status codes the service responds with.
type HTTPCode int

const (
	StatusOK                  HTTPCode = 200
	StatusCreated             HTTPCode = 201
	StatusNoContent           HTTPCode = 204
	StatusBadRequest          HTTPCode = 400
	StatusUnauthorized        HTTPCode = 401
	StatusForbidden           HTTPCode = 403
	StatusNotFound            HTTPCode = 404
	StatusConflict            HTTPCode = 409
	StatusInternalServerError HTTPCode = 500
	StatusServiceUnavailable  HTTPCode = 503
)

var knownStatuses = map[HTTPCode]struct{}{
	StatusOK:                  {},
	StatusCreated:             {},
	StatusNoContent:           {},
	StatusBadRequest:          {},
	StatusUnauthorized:        {},
	StatusForbidden:           {},
	StatusNotFound:            {},
	StatusConflict:            {},
	StatusInternalServerError: {},
	StatusServiceUnavailable:  {},
}

// IsKnownStatus reports whether code belongs to the recognised set.
func IsKnownStatus(code HTTPCode) bool {
	_, ok := knownStatuses[code]
	return ok
}

// IsErrorStatus reports whether code is a registered 4xx or 5xx status.
func IsErrorStatus(code HTTPCode) bool {
	return code >= 400 && code <= 599 && http.StatusText(int(code)) != ""
}

const (
	NameResourceNotFound    = "RESOURCE_NOT_FOUND"
	NameValidation          = "VALIDATION_ERROR"
	NameInternalServerError = "INTERNAL_SERVER_ERROR"
	NameHTTPException       = "HTTP_EXCEPTION"
)

const maxStackDepth = 32

// Error is immutable once constructed.
type Error struct {
	name        string
	status      HTTPCode
	message     string
	operational bool
	stack       []uintptr
}

// New does not validate status. The response boundary falls back to 500 for
// anything IsErrorStatus rejects.
func New(name string, status HTTPCode, message string, operational bool) *Error {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	return &Error{
		name:        name,
		status:      status,
		message:     message,
		operational: operational,
		stack:       pcs[:n],
	}
}

func NotFound(message string) *Error {
	return New(NameResourceNotFound, StatusNotFound, message, true)
}

func Validation(message string) *Error {
	return New(NameValidation, StatusBadRequest, message, true)
}

func Internal(message string) *Error {
	return New(NameInternalServerError, StatusInternalServerError, message, false)
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.name + ": " + e.message
}

func (e *Error) Name() string        { return e.name }
func (e *Error) Status() HTTPCode    { return e.status }
func (e *Error) Message() string     { return e.message }
func (e *Error) IsOperational() bool { return e.operational }

// Stack renders the call stack captured by New, one frame per line.
func (e *Error) Stack() string {
	if len(e.stack) == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(e.stack)
	for {
		frame, more := frames.Next()
		b.WriteString(frame.Function)
		b.WriteString("\n\t")
		b.WriteString(frame.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(frame.Line))
		if !more {
			break
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// As unwraps err looking for an application error. A typed nil *Error in
// the chain does not count.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr != nil {
		return appErr, true
	}
	return nil, false
}

type Classification struct {
	IsApplicationError bool
	IsOperational      bool
}

func Classify(err error) Classification {
	appErr, ok := As(err)
	if !ok {
		return Classification{}
	}
	return Classification{IsApplicationError: true, IsOperational: appErr.operational}
}
