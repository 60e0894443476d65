// Package errors provides application-level error types and utilities.
// It defines the error kinds surfaced by the directory: validation, not found,
// conflict, invalid transition, permission denied and store timeout.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation_error"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeConflict          ErrorType = "conflict"
	ErrorTypeInvalidTransition ErrorType = "invalid_transition"
	ErrorTypeUnauthorized      ErrorType = "unauthorized"
	ErrorTypeForbidden         ErrorType = "forbidden"
	ErrorTypeStoreTimeout      ErrorType = "store_timeout"
	ErrorTypeRateLimited       ErrorType = "rate_limited"
	ErrorTypeInternal          ErrorType = "internal_error"
)

// FieldError describes one failing input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every failing field before reporting.
type FieldErrors []FieldError

func (f *FieldErrors) Add(field, message string) {
	*f = append(*f, FieldError{Field: field, Message: message})
}

// Err returns nil when nothing was collected.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewFieldValidationError(f)
}

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType    `json:"type"`
	Message string       `json:"message"`
	Code    int          `json:"code"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
	From    string       `json:"from,omitempty"`
	To      string       `json:"to,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	if len(e.Fields) > 0 {
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Field + ": " + f.Message
		}
		return fmt.Sprintf("%s: %s [%s]", e.Type, e.Message, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewFieldValidationError creates a validation error that enumerates every failing field.
func NewFieldValidationError(fields []FieldError) *AppError {
	e := newAppError(ErrorTypeValidation, http.StatusBadRequest, "validation failed", nil)
	e.Fields = fields
	return e
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewInvalidTransitionError reports a rejected state change.
func NewInvalidTransitionError(from, to string, details ...string) *AppError {
	e := newAppError(ErrorTypeInvalidTransition, http.StatusConflict,
		fmt.Sprintf("cannot transition from %s to %s", from, to), details)
	e.From = from
	e.To = to
	return e
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewPermissionDeniedError creates a forbidden error for a missing capability.
func NewPermissionDeniedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewStoreTimeoutError creates an error for a store call that outlived its deadline.
func NewStoreTimeoutError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeStoreTimeout, http.StatusGatewayTimeout, message, details)
}

// NewRateLimitedError creates a too-many-requests error.
func NewRateLimitedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeRateLimited, http.StatusTooManyRequests, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return isType(err, ErrorTypeConflict)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	return isType(err, ErrorTypeInvalidTransition)
}

// IsPermissionDeniedError checks if the error is a forbidden error
func IsPermissionDeniedError(err error) bool {
	return isType(err, ErrorTypeForbidden)
}

// IsStoreTimeoutError checks if the error is a store timeout error
func IsStoreTimeoutError(err error) bool {
	return isType(err, ErrorTypeStoreTimeout)
}

// IsRetryable reports whether the caller can recover by retrying or by treating
// the result as absent. Conflicts and invalid transitions need a changed request.
func IsRetryable(err error) bool {
	return IsStoreTimeoutError(err) || IsNotFoundError(err)
}

// WrapStoreError maps a context deadline to a StoreTimeout error and leaves
// anything else wrapped with the given operation name.
func WrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewStoreTimeoutError(op+" timed out", err.Error())
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	// MySQL duplicate entry error
	if strings.Contains(errStr, "duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite and PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	return false
}

// IsDuplicateOn reports a duplicate key error raised by the named index or column.
func IsDuplicateOn(err error, name string) bool {
	return IsDuplicateError(err) && strings.Contains(strings.ToLower(err.Error()), strings.ToLower(name))
}
