// internal/domain/entity/errors.go
package entity

import "fmt"

// ValidationError means the caller-supplied query is unusable. It is
// raised by the HTTP layer before the pipeline runs, never inside it.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a validation error
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// AuthError means the client-credentials exchange failed or returned no
// usable token. Fatal to the current request, never retried.
type AuthError struct {
	Msg string
	Err error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates an auth error wrapping an optional cause
func NewAuthError(msg string, err error) *AuthError {
	return &AuthError{Msg: msg, Err: err}
}

// UpstreamError means the offer-search endpoint rejected the request,
// returned an explicit error payload, or sent a shape the mapper cannot
// use. Fatal to the current request, never retried.
type UpstreamError struct {
	Msg string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates an upstream error wrapping an optional cause
func NewUpstreamError(msg string, err error) *UpstreamError {
	return &UpstreamError{Msg: msg, Err: err}
}
