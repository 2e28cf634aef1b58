package scriptgen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for model construction and rendering.
var (
	// ErrUnresolvedReference is returned when rendering reaches a symbolic
	// reference whose declaring element was never added to the script.
	ErrUnresolvedReference = errors.New("scriptgen: unresolved element reference")

	// ErrInvalidLiteral is returned when an expression value has a shape
	// the renderer does not support.
	ErrInvalidLiteral = errors.New("scriptgen: invalid literal value")
)

// UnresolvedReferenceError reports a symbolic reference that does not
// resolve to a declared container element.
type UnresolvedReferenceError struct {
	handle string // opaque symbol handle, for diagnostics
}

// Error returns the error string.
func (e *UnresolvedReferenceError) Error() string {
	if e.handle != "" {
		return fmt.Sprintf("scriptgen: reference %s does not resolve to a declared element", e.handle)
	}
	return "scriptgen: reference does not resolve to a declared element"
}

// Is reports whether the target error matches UnresolvedReferenceError.
// This allows errors.Is(err, ErrUnresolvedReference) to return true.
func (e *UnresolvedReferenceError) Is(err error) bool {
	return err == ErrUnresolvedReference
}

// Handle returns the unresolved symbol handle.
func (e *UnresolvedReferenceError) Handle() string {
	return e.handle
}

// NewUnresolvedReferenceError returns a new UnresolvedReferenceError for the
// given symbol handle.
func NewUnresolvedReferenceError(handle string) *UnresolvedReferenceError {
	return &UnresolvedReferenceError{handle: handle}
}

// IsUnresolvedReference returns true if the error is an UnresolvedReferenceError.
func IsUnresolvedReference(err error) bool {
	if err == nil {
		return false
	}
	var e *UnresolvedReferenceError
	return errors.As(err, &e) || errors.Is(err, ErrUnresolvedReference)
}

// InvalidLiteralError reports an expression value of an unsupported shape.
// Context carries enough of the offending statement (target or comment) to
// locate the builder call that produced it.
type InvalidLiteralError struct {
	context string
	value   any
}

// Error returns the error string.
func (e *InvalidLiteralError) Error() string {
	if e.context != "" {
		return fmt.Sprintf("scriptgen: unsupported literal value %v (%T) in %s", e.value, e.value, e.context)
	}
	return fmt.Sprintf("scriptgen: unsupported literal value %v (%T)", e.value, e.value)
}

// Is reports whether the target error matches InvalidLiteralError.
func (e *InvalidLiteralError) Is(err error) bool {
	return err == ErrInvalidLiteral
}

// Context returns the statement context the invalid value was used in.
func (e *InvalidLiteralError) Context() string {
	return e.context
}

// Value returns the offending value.
func (e *InvalidLiteralError) Value() any {
	return e.value
}

// NewInvalidLiteralError returns a new InvalidLiteralError for the given
// value, attributed to the given statement context.
func NewInvalidLiteralError(context string, value any) *InvalidLiteralError {
	return &InvalidLiteralError{context: context, value: value}
}

// IsInvalidLiteral returns true if the error is an InvalidLiteralError.
func IsInvalidLiteral(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidLiteralError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidLiteral)
}
