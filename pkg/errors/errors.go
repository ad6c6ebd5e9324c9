package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError represents malformed or missing input. It may carry
// several messages, one per failing field.
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a new validation error
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages, ", "))
}

// StatusCode returns the HTTP status for this error
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// ErrorMessages returns the messages reported to the caller
func (e *ValidationError) ErrorMessages() []string {
	if len(e.Messages) == 0 {
		return []string{"validation failed"}
	}
	return e.Messages
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// StatusCode returns the HTTP status for this error
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// ErrorMessages returns the messages reported to the caller
func (e *NotFoundError) ErrorMessages() []string {
	return []string{e.Error()}
}

// UniquenessError represents a duplicate natural key
type UniquenessError struct {
	Resource string
	Message  string
}

// NewUniquenessError creates a new uniqueness error
func NewUniquenessError(resource, message string) *UniquenessError {
	return &UniquenessError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *UniquenessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// StatusCode returns the HTTP status for this error
func (e *UniquenessError) StatusCode() int {
	return http.StatusBadRequest
}

// ErrorMessages returns the messages reported to the caller
func (e *UniquenessError) ErrorMessages() []string {
	return []string{e.Error()}
}

// ReferentialIntegrityError represents a foreign key that does not
// resolve, or a row that is still referenced.
type ReferentialIntegrityError struct {
	Reference string
	Message   string
}

// NewReferentialIntegrityError creates a new referential integrity error
func NewReferentialIntegrityError(reference, message string) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{
		Reference: reference,
		Message:   message,
	}
}

// Error implements the error interface
func (e *ReferentialIntegrityError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is invalid", e.Reference)
}

// StatusCode returns the HTTP status for this error
func (e *ReferentialIntegrityError) StatusCode() int {
	return http.StatusBadRequest
}

// ErrorMessages returns the messages reported to the caller
func (e *ReferentialIntegrityError) ErrorMessages() []string {
	return []string{e.Error()}
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for this error
func (e *InternalError) StatusCode() int {
	return http.StatusInternalServerError
}

// ErrorMessages returns the messages reported to the caller
func (e *InternalError) ErrorMessages() []string {
	return []string{e.Error()}
}

// Classified is implemented by every error in this package
type Classified interface {
	error
	StatusCode() int
	ErrorMessages() []string
}

// Classify returns the classified error in err's chain. Anything that is
// not one of ours is treated as an internal fault.
func Classify(err error) Classified {
	if err == nil {
		return nil
	}
	var c Classified
	if errors.As(err, &c) {
		return c
	}
	return NewInternalError("internal error", err)
}

// StatusCode returns the HTTP status code for an error
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return Classify(err).StatusCode()
}

// Messages returns the caller-facing messages for an error
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	return Classify(err).ErrorMessages()
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
