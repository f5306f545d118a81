package errors

import (
	"fmt"
	"net/http"
	"strings"

	"blog/internal/errors"
)

// Kind is the closed set of failure categories the delivery layer knows how to render.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindValidation
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// HTTPCode returns the status code every error of this kind is rendered with.
func (k Kind) HTTPCode() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the business error code so that copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Session errors. Every guard rejection uses ErrUnauthenticated so the
	// client cannot tell which check failed.
	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		"UNAUTHENTICATED",
		"authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		KindUnauthenticated,
		"INVALID_CREDENTIALS",
		"incorrect email or password",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		"FORBIDDEN",
		"you are not allowed to perform this action",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		KindInternal,
		"TOKEN_ISSUE_FAILED",
		"could not create session",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"could not process password",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	// Blog errors
	ErrBlogNotFound = NewBaseError(
		KindNotFound,
		"BLOG_NOT_FOUND",
		"blog not found",
		"",
	)

	ErrNoSearchResults = NewBaseError(
		KindNotFound,
		"NO_SEARCH_RESULTS",
		"no results matched the search term",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrInvalidID = NewBaseError(
		KindValidation,
		"INVALID_ID",
		"malformed resource id",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// ValidationError reports a field that failed one or more rules.
type ValidationError struct {
	Field string
	Rules []string
}

// NewValidationError creates a validation error for field with the unmet rules.
func NewValidationError(field string, rules ...string) *ValidationError {
	return &ValidationError{Field: field, Rules: rules}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Rules, ", "))
}

func (e *ValidationError) Kind() Kind        { return KindValidation }
func (e *ValidationError) HTTPCode() int     { return KindValidation.HTTPCode() }
func (e *ValidationError) ErrorCode() string { return "VALIDATION_FAILED" }

func (e *ValidationError) Message() string {
	return fmt.Sprintf("invalid %s", e.Field)
}

func (e *ValidationError) Details() string {
	return e.Error()
}

// ConflictError reports a unique field whose value is already taken.
type ConflictError struct {
	Field string
}

// NewConflictError creates a conflict error for field.
func NewConflictError(field string) *ConflictError {
	return &ConflictError{Field: field}
}

func (e *ConflictError) Error() string {
	return e.Field + " already exists"
}

func (e *ConflictError) Kind() Kind        { return KindConflict }
func (e *ConflictError) HTTPCode() int     { return KindConflict.HTTPCode() }
func (e *ConflictError) ErrorCode() string { return strings.ToUpper(e.Field) + "_ALREADY_EXISTS" }
func (e *ConflictError) Message() string   { return e.Error() }
func (e *ConflictError) Details() string   { return "" }

// Is lets errors.Is compare conflicts by field.
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}

	return e.Field == t.Field
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for logging.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind { return KindInternal }

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
