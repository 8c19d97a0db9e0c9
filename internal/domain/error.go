package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes. envelope.StatusFor decides the HTTP status of each.
const (
	EINVALID      = "invalid"
	ENOTFOUND     = "not_found"
	ECONFLICT     = "conflict"
	EUNAUTHORIZED = "unauthorized"
	EFORBIDDEN    = "forbidden"
	ETOOLARGE     = "too_large"
	ERATELIMIT    = "rate_limit"
	EUNAVAILABLE  = "unavailable" // an upstream or the request deadline gave out
	EGONE         = "gone"
	ENOTIMPL      = "not_implemented"
	EINTERNAL     = "internal"
)

const internalMessage = "An internal error occurred. Please try again later."

// Error is a failure the API can explain to its caller. Message is client
// safe; Op and Err only reach the logs.
type Error struct {
	Code    string
	Message string
	Op      string // e.g. "cart.add"
	Err     error
}

func (e *Error) Error() string {
	parts := make([]string, 0, 3)
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	parts = append(parts, e.Message)
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error { return e.Err }

func asError(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// ErrorCode is "" for nil and EINTERNAL for anything that is not an *Error.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := asError(err); ok {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns what the client may read. Internal failures of any
// kind share one generic message.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := asError(err); ok && e.Code != EINTERNAL {
		return e.Message
	}
	return internalMessage
}

// ErrorOp returns the failing operation for logging, or "".
func ErrorOp(err error) string {
	if e, ok := asError(err); ok {
		return e.Op
	}
	return ""
}

// IsCode reports whether err carries code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}

// Errorf builds an *Error with a formatted message.
func Errorf(code, op, format string, args ...any) error {
	return &Error{Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

// WrapError attaches code, op and message to err. A nil err stays nil.
func WrapError(err error, code, op, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Op: op, Message: message, Err: err}
}

func NotFound(op, format string, args ...any) error { return Errorf(ENOTFOUND, op, format, args...) }
func Invalid(op, format string, args ...any) error  { return Errorf(EINVALID, op, format, args...) }
func Conflict(op, format string, args ...any) error { return Errorf(ECONFLICT, op, format, args...) }

func Unauthorized(op, message string) error {
	return &Error{Code: EUNAUTHORIZED, Op: op, Message: message}
}

func Forbidden(op, message string) error {
	return &Error{Code: EFORBIDDEN, Op: op, Message: message}
}

// Internal wraps an unexpected failure. Clients never see message.
func Internal(err error, op, message string) error {
	return &Error{Code: EINTERNAL, Op: op, Message: message, Err: err}
}

// ValidationError holds per-field failures of a request body, keyed by the
// JSON path of the field ("address.city").
type ValidationError struct {
	Op     string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var msg string
	if len(e.Fields) == 1 {
		for field, m := range e.Fields {
			msg = field + ": " + m
		}
	} else {
		msg = fmt.Sprintf("validation failed for %d fields", len(e.Fields))
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

// NewValidationError starts a ValidationError with one field.
func NewValidationError(op, field, message string) error {
	return &ValidationError{Op: op, Fields: map[string]string{field: message}}
}

// AddFieldError records a field failure on err, or starts a new
// ValidationError when err is not one. A field keeps its first message.
func AddFieldError(err error, field, message string) error {
	var ve *ValidationError
	if err == nil || !errors.As(err, &ve) {
		return &ValidationError{Fields: map[string]string{field: message}}
	}
	if _, seen := ve.Fields[field]; !seen {
		ve.Fields[field] = message
	}
	return ve
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GetValidationFields returns nil unless err is a ValidationError.
func GetValidationFields(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
