// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for nshring.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrZeroCapacity            = fmt.Errorf("capacity must be positive")
	ErrOutOfRange              = fmt.Errorf("index out of range")
	ErrConcurrentModification  = fmt.Errorf("buffer modified during iteration")
	ErrCommandNotFound         = fmt.Errorf("command not found")
	ErrEmptyCommand            = fmt.Errorf("empty command")
	ErrInvalidArgument         = fmt.Errorf("invalid argument")
	ErrHistoryEntryUnavailable = fmt.Errorf("history entry unavailable")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeZeroCapacity
	ErrCodeOutOfRange
	ErrCodeNotFound
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel the error was built from, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WrapError creates a structured error around a sentinel.
func WrapError(code ErrorCode, err error) *Error {
	e := NewError(code, err.Error())
	e.Err = err
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
