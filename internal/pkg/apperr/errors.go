package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeVendorAuth      = "VENDOR_AUTH_FAILED"
	CodeVendorFetch     = "VENDOR_FETCH_FAILED"
	CodeMalformedRecord = "MALFORMED_RECORD"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrVendorAuth is returned when logging in to the vendor platform fails.
	// Surfacing it aborts the whole sync run; nothing is persisted.
	ErrVendorAuth = New(fiber.StatusUnauthorized, CodeVendorAuth, "failed to authenticate against the vendor platform")

	// ErrVendorFetch is returned when listing activities or fetching lap detail
	// fails at the batch level. Like ErrVendorAuth it aborts the whole run.
	ErrVendorFetch = New(fiber.StatusBadGateway, CodeVendorFetch, "failed to fetch data from the vendor platform")

	// ErrMalformedRecord marks a single vendor record that cannot be
	// transformed. It never crosses the service boundary: the orchestrator
	// logs it and skips the record.
	ErrMalformedRecord = New(fiber.StatusUnprocessableEntity, CodeMalformedRecord, "vendor record is missing required fields or carries unparsable values")
)

type Extras map[string]interface{}

type Error struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e Error) Msg(format string, parts ...interface{}) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *Error {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Is matches by error code so errors.Is keeps working on copies customized
// via Msg or WithExtras.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.ErrorCode == t.ErrorCode
}
