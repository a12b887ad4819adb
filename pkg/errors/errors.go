// Package errors provides structured error types for kruskalviz.
//
// The core packages (dsu, kruskal, animator) report failures with plain
// sentinel errors. Everything that faces a user (the point-file loader, the
// configuration layer, the CLI) uses the coded [Error] defined here so that
// output can be consistent and machine-readable.
//
// # Error Codes
//
//   - INVALID_*: input or configuration rejected before any work starts
//   - MALFORMED_INPUT: a point file could not be parsed
//   - INSUFFICIENT_VERTICES: a vertex source produced nothing to draw
//   - FILE_NOT_FOUND: a referenced file does not exist
//   - UNSUPPORTED: a request the current run cannot honour
//   - INTERNAL_ERROR: a broken invariant
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedInput, "line %d: expected x,y", n)
//	if errors.Is(err, errors.ErrCodeMalformedInput) {
//	    // report the bad line
//	}
//
//	// Attach a code to a sentinel from a core package
//	err = errors.Classify(kruskal.ErrInsufficientVertices)
package errors

import (
	"errors"
	"fmt"

	"github.com/derian-c/MATH478-FinalProject/pkg/animator"
	"github.com/derian-c/MATH478-FinalProject/pkg/dsu"
	"github.com/derian-c/MATH478-FinalProject/pkg/kruskal"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidVertex  Code = "INVALID_VERTEX"
	ErrCodeMalformedInput Code = "MALFORMED_INPUT"

	// Vertex source errors
	ErrCodeInsufficientVertices Code = "INSUFFICIENT_VERTICES"
	ErrCodeFileNotFound         Code = "FILE_NOT_FOUND"

	// Run errors
	ErrCodeUnsupported Code = "UNSUPPORTED"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// sentinelCodes maps core sentinels onto codes.
var sentinelCodes = []struct {
	err  error
	code Code
	msg  string
}{
	{kruskal.ErrInsufficientVertices, ErrCodeInsufficientVertices, "no vertices to connect"},
	{kruskal.ErrDuplicateVertex, ErrCodeInvalidVertex, "vertex set has duplicate IDs"},
	{kruskal.ErrNonFinitePosition, ErrCodeInvalidVertex, "vertex position is not a finite number"},
	{dsu.ErrInvalidVertex, ErrCodeInternal, "union-find used an unregistered vertex"},
	{dsu.ErrDuplicateVertex, ErrCodeInternal, "union-find registered a vertex twice"},
	{animator.ErrInvalidFramesPerEdge, ErrCodeInvalidConfig, "frames per edge must be between 1 and 3600"},
}

// Classify attaches a code to err. Errors that already carry a code are
// returned unchanged; known core sentinels get their matching code; anything
// else is returned as is. Nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	for _, s := range sentinelCodes {
		if errors.Is(err, s.err) {
			return Wrap(s.code, err, "%s", s.msg)
		}
	}
	return err
}
