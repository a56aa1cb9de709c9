package domain

import "fmt"

// ValidationError indicates the caller supplied an unusable request.
type ValidationError struct {
	Message string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError indicates the directions provider could not be reached or
// answered with a failure.
type UpstreamError struct {
	Message string
	Cause   error
}

// NewUpstreamError wraps cause with a caller-facing message.
func NewUpstreamError(message string, cause error) *UpstreamError {
	return &UpstreamError{Message: message, Cause: cause}
}

func (e *UpstreamError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
