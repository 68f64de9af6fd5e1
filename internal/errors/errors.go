// Package errors defines the structured error every statdeck command returns.
// Each error carries a category code, a one-line message and an optional
// suggestion telling the user what to do next.
package errors

import (
	"errors"
	"strings"
)

// Categories. The CLI maps them to the machine-readable codes in --json output.
const (
	ErrConfig = "CONFIG"
	ErrFormat = "FORMAT"
	ErrInput  = "INPUT"
	ErrRender = "RENDER"
)

// Error prints as
//
//	✗ <message>
//
//	  <cause>
//
//	  <suggestion>
//
// with the cause and suggestion blocks left out when empty.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New returns an error with no underlying cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// WrapWithCode attaches a message and suggestion to err.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("✗ " + e.Message + "\n")
	for _, detail := range []string{e.causeText(), e.Suggestion} {
		if detail != "" {
			b.WriteString("\n  " + detail + "\n")
		}
	}
	return b.String()
}

func (e *Error) causeText() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// From finds the first *Error in err's chain.
func From(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// IsCode reports whether err's chain holds an *Error in category code.
func IsCode(err error, code string) bool {
	e, ok := From(err)
	return ok && e.Code == code
}
