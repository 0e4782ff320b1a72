// Package errors defines the application errors surfaced to API clients.
package errors

import (
	"net/http"

	"eventhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
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

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
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

// WithDetails returns a copy of the error carrying details.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) error {
	return &detailedError{BaseError: BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}, origin: e}
}

type detailedError struct {
	BaseError
	origin *BaseError
}

func (e *detailedError) Is(target error) bool {
	return target == e.origin
}

// Predefined error types
var (
	// Account errors
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered.",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Could not create the user account.",
		"",
	)

	ErrInvalidProfileLink = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PROFILE_LINK",
		"An account must be linked to exactly one profile.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Could not process the password.",
		"",
	)

	// Profile errors
	ErrLoveDecorationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOVE_DECORATION_NOT_FOUND",
		"Love decoration profile not found.",
		"",
	)

	ErrPartnerSupplierNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTNER_SUPPLIER_NOT_FOUND",
		"Partner supplier not found.",
		"",
	)

	ErrPartnerDocumentConflict = NewBaseError(
		http.StatusConflict,
		"PARTNER_DOCUMENT_CONFLICT",
		"Document already registered for another partner.",
		"",
	)

	ErrInvalidPartnerStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PARTNER_STATUS",
		"Unknown partner status.",
		"",
	)

	ErrProfessionNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFESSION_NOT_FOUND",
		"Profession not found.",
		"",
	)

	ErrProfessionAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFESSION_ALREADY_EXISTS",
		"A profession with this name already exists.",
		"",
	)

	// Billing errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Subscription not found.",
		"",
	)

	ErrInvalidWebhookSignature = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WEBHOOK_SIGNATURE",
		"Webhook signature verification failed.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict.",
		"",
	)
)

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

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

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
	return "Database operation failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
