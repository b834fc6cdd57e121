package pxfuri

import (
	"errors"
	"fmt"
)

// PxfUriError represents a locator syntax error
type PxfUriError struct {
	Code     int
	SQLState string
	Severity string
	// Message is fully formatted and quotes the raw locator
	Message string
}

func (e *PxfUriError) Error() string {
	return e.Message
}

// Error codes for locator parsing and validation
const (
	ErrorInvalidUri          = 1
	ErrorUnsupportedProtocol = 2
	ErrorMissingOptions      = 3
	ErrorMissingHost         = 4
	ErrorMissingPort         = 5
	ErrorMissingEqual        = 6
	ErrorDuplicateEqual      = 7
	ErrorMissingKey          = 8
	ErrorMissingValue        = 9
	ErrorDuplicateOptions    = 10
	ErrorMissingCoreOptions  = 11
)

const (
	// SQLStateSyntaxError is the SQLSTATE attached to every locator error
	SQLStateSyntaxError = "42601"
	// SeverityError aborts the current operation
	SeverityError = "ERROR"
)

// optionError is a tokenizer failure before it is tied to a locator
type optionError struct {
	code   int
	detail string
}

func (e *optionError) Error() string {
	return e.detail
}

// newError formats "Invalid URI <raw>" with an optional detail suffix
func newError(code int, raw, detail string) *PxfUriError {
	message := fmt.Sprintf("Invalid URI %s", raw)
	if detail != "" {
		message = fmt.Sprintf("%s: %s", message, detail)
	}
	return &PxfUriError{
		Code:     code,
		SQLState: SQLStateSyntaxError,
		Severity: SeverityError,
		Message:  message,
	}
}

func wrapOptionError(raw string, err error) *PxfUriError {
	var optErr *optionError
	if errors.As(err, &optErr) {
		return newError(optErr.code, raw, optErr.detail)
	}
	return newError(ErrorInvalidUri, raw, err.Error())
}

// IsSyntaxError reports whether err is, or wraps, a locator syntax error
func IsSyntaxError(err error) bool {
	var uriErr *PxfUriError
	return errors.As(err, &uriErr) && uriErr.SQLState == SQLStateSyntaxError
}

// ErrorCode returns the code of a locator error, or 0 if err is not one
func ErrorCode(err error) int {
	var uriErr *PxfUriError
	if errors.As(err, &uriErr) {
		return uriErr.Code
	}
	return 0
}
