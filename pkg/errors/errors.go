package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NewValidationError creates a new validation error.
func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Messages: messages}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// NewHTTPError returns a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: code}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewAuthenticationError returns an AuthenticationError carrying msg as its response body.
func NewAuthenticationError(msg string) *AuthenticationError {
	return &AuthenticationError{Message: msg}
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// NewBackendError wraps err. The message is what callers see in the 500 body.
func NewBackendError(msg string, err error) *BackendError {
	return &BackendError{Message: msg, Err: err}
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsAuthenticationError reports whether err is, or wraps, an AuthenticationError.
func IsAuthenticationError(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

// IsBackendError reports whether err is, or wraps, a BackendError.
func IsBackendError(err error) bool {
	var target *BackendError
	return errors.As(err, &target)
}
