// Package errors is the coded error type every layer returns and the API maps to status
// import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine readable error class; values are on the wire, append only
type ErrorCode uint16

// Codes in wire order
const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	ErrorCodeUnavailable
	ErrorCodeConflict
	ErrorCodeInvalidArgument
	ErrorCodeValidation
	ErrorCodeJSON
	ErrorCodeNotFound
	ErrorCodeDuplicateKey
	ErrorCodeDB
)

var statusByCode = map[ErrorCode]int{
	ErrorCodeUnavailable:     http.StatusServiceUnavailable,
	ErrorCodeConflict:        http.StatusConflict,
	ErrorCodeDuplicateKey:    http.StatusConflict,
	ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
	ErrorCodeValidation:      http.StatusBadRequest,
	ErrorCodeJSON:            http.StatusBadRequest,
	ErrorCodeNotFound:        http.StatusNotFound,
}

// HTTPStatusCode maps a code to its status, 500 for anything unmapped
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := statusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// InternalMessage replaces the text of any error that is not ours
const InternalMessage = "internal error"

// Error carries a code, a client safe message, an optional field and the cause
type Error struct {
	code  ErrorCode
	msg   string
	field string
	cause error
}

// Wire is the serializable form of an error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.cause }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending input field, "" when none
func (e *Error) Field() string { return e.field }

// New builds an error with a fixed message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf builds an error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap keeps cause for logs and errors.Is while msg is what clients see
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// NotFoundf is Newf with ErrorCodeNotFound
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// JSONErrf is Newf with ErrorCodeJSON
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf is Newf with ErrorCodePanic
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WithField returns a copy of err naming field; foreign errors come back unchanged
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// CodeOf classifies any error
// ours carry their code, postgres errors map by SQLSTATE, the rest are unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	if c, ok := postgresCode(err); ok {
		return c
	}
	return ErrorCodeUnknown
}

// HTTPStatus is HTTPStatusCode(CodeOf(err))
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WireFrom renders err for clients, the zero Wire for nil
// foreign messages never leave the process, not even postgres ones
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	if c, ok := postgresCode(err); ok {
		return Wire{Code: c, Message: publicPostgresMessage(c), Field: postgresField(err)}
	}
	return Wire{Code: ErrorCodeUnknown, Message: InternalMessage}
}
