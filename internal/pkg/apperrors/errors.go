package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// ErrUserNotFound wraps ErrResourceNotFound like the record errors below
var ErrUserNotFound = fmt.Errorf("%w: user", ErrResourceNotFound)

// Record errors. Each wraps ErrResourceNotFound so a single errors.Is
// check can route all of them to a 404.
var (
	ErrProfileNotFound    = fmt.Errorf("%w: profile", ErrResourceNotFound)
	ErrCourseNotFound     = fmt.Errorf("%w: course", ErrResourceNotFound)
	ErrAssignmentNotFound = fmt.Errorf("%w: assignment", ErrResourceNotFound)
	ErrProjectNotFound    = fmt.Errorf("%w: project", ErrResourceNotFound)
	ErrInternshipNotFound = fmt.Errorf("%w: internship", ErrResourceNotFound)
	ErrAttendanceNotFound = fmt.Errorf("%w: attendance record", ErrResourceNotFound)
)

// Export errors
var (
	ErrSnapshotFetchFailed = errors.New("failed to fetch export snapshot")
	ErrRenderFailed        = errors.New("failed to render export document")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}
