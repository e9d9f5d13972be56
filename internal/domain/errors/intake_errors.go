package errors

import (
	"fmt"
	"strings"

	pkgErrors "github.com/winning-appliances/service-automation/pkg/errors"
)

// IntakeError represents failures of request intake and reply processing
type IntakeError struct {
	Type    string
	Message string
	Fields  []string
	Email   string
	Cause   error
}

func (e *IntakeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Type, e.Message)
	if len(e.Fields) > 0 {
		fmt.Fprintf(&b, " (fields: %s)", strings.Join(e.Fields, ", "))
	}
	if e.Email != "" {
		fmt.Fprintf(&b, " (email: %s)", e.Email)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, " - %v", e.Cause)
	}
	return b.String()
}

func (e *IntakeError) Unwrap() error {
	return e.Cause
}

// Code maps the error type onto the shared error codes.
func (e *IntakeError) Code() string {
	switch e.Type {
	case ErrTypeValidationFailed:
		return pkgErrors.ErrInvalidArgument
	case ErrTypePendingRequestNotFound:
		return pkgErrors.ErrNotFound
	case ErrTypeExternalLookupFailed:
		return pkgErrors.ErrUnavailable
	default:
		return pkgErrors.ErrInternal
	}
}

// Intake error types
const (
	ErrTypeValidationFailed       = "VALIDATION_FAILED"
	ErrTypePendingRequestNotFound = "PENDING_REQUEST_NOT_FOUND"
	ErrTypeExternalLookupFailed   = "EXTERNAL_LOOKUP_FAILED"
	ErrTypePersistenceFailed      = "PERSISTENCE_FAILED"
)

// NewMissingFieldsError reports required fields that could not be resolved.
func NewMissingFieldsError(message string, fields ...string) *IntakeError {
	return &IntakeError{
		Type:    ErrTypeValidationFailed,
		Message: message,
		Fields:  fields,
	}
}

func NewPendingRequestNotFoundError(email string) *IntakeError {
	return &IntakeError{
		Type:    ErrTypePendingRequestNotFound,
		Message: fmt.Sprintf("no pending service request found for %s", email),
		Email:   email,
	}
}

func NewExternalLookupError(message string, cause error) *IntakeError {
	return &IntakeError{
		Type:    ErrTypeExternalLookupFailed,
		Message: message,
		Cause:   cause,
	}
}

func NewPersistenceError(message string, cause error) *IntakeError {
	return &IntakeError{
		Type:    ErrTypePersistenceFailed,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is an IntakeError of the given type.
func IsType(err error, errType string) bool {
	var intakeErr *IntakeError
	return pkgErrors.As(err, &intakeErr) && intakeErr.Type == errType
}
