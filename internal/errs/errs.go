package errs

import (
	"errors"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Code is an application error code.
type Code string

const (
	// Timeout covers every "the thing never became ready" failure: an
	// element that never appeared, a navigation that never settled. A dead
	// site and a wrong selector surface identically under this code.
	Timeout    Code = "timeout"
	Navigation Code = "navigation"
	NotFound   Code = "not_found"
	Engine     Code = "engine"
	Internal   Code = "internal"
)

// Error is a coded application error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a coded error with message.
func New(code Code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a coded error with message and cause.
func Wrap(code Code, message string, cause error) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// CodeOf returns the error code, defaulting to internal.
func CodeOf(err error) Code {
	if err == nil {
		return Internal
	}
	var coded *Error
	if errors.As(err, &coded) {
		if coded.Code == "" {
			return Internal
		}
		return coded.Code
	}
	return Internal
}

// IsTimeout reports whether err is a timeout, either our coded form or
// the automation engine's own timeout error.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if CodeOf(err) == Timeout {
		return true
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return true
	}
	// Older driver versions report timeouts by message only.
	msg := err.Error()
	return strings.Contains(msg, "Timeout") && strings.Contains(msg, "exceeded")
}

// FromEngine classifies an automation-engine error under our codes.
func FromEngine(message string, cause error) error {
	if cause == nil {
		return nil
	}
	code := Engine
	if IsTimeout(cause) {
		code = Timeout
	}
	return Wrap(code, message, cause)
}
