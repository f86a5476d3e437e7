// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the hioload-pkt library.

package api

import "fmt"

// Common errors used across the library. Every error is returned to the
// immediate caller; no path retries internally and none is process-fatal.
var (
	ErrPoolExhausted          = fmt.Errorf("mempool exhausted")
	ErrBufferReleased         = fmt.Errorf("buffer already released")
	ErrInsufficientHeadroom   = fmt.Errorf("insufficient headroom")
	ErrInsufficientTailroom   = fmt.Errorf("insufficient tailroom")
	ErrInvalidLength          = fmt.Errorf("length exceeds data length")
	ErrTooManySegments        = fmt.Errorf("too many chained segments")
	ErrPortNotAttached        = fmt.Errorf("port not attached")
	ErrPortTableFull          = fmt.Errorf("port table full")
	ErrInvalidArgument        = fmt.Errorf("invalid argument")
	ErrNotSupported           = fmt.Errorf("operation not supported")
	ErrLcoreAlreadyRegistered = fmt.Errorf("lcore already registered")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodePoolExhausted
	ErrCodeBufferReleased
	ErrCodeInsufficientHeadroom
	ErrCodeInsufficientTailroom
	ErrCodeInvalidLength
	ErrCodeTooManySegments
	ErrCodePortNotAttached
	ErrCodeInvalidArgument
	ErrCodeNotSupported
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code back to its sentinel, so errors.Is matches the
// structured form against the package-level errors.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodePoolExhausted:
		return ErrPoolExhausted
	case ErrCodeBufferReleased:
		return ErrBufferReleased
	case ErrCodeInsufficientHeadroom:
		return ErrInsufficientHeadroom
	case ErrCodeInsufficientTailroom:
		return ErrInsufficientTailroom
	case ErrCodeInvalidLength:
		return ErrInvalidLength
	case ErrCodeTooManySegments:
		return ErrTooManySegments
	case ErrCodePortNotAttached:
		return ErrPortNotAttached
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeNotSupported:
		return ErrNotSupported
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
