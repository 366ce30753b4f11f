package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so errors returned
// through WithDetails still compare equal to the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"input validation failed",
		"",
	)

	ErrUnexpectedFields = NewBaseError(
		http.StatusBadRequest,
		"UNEXPECTED_FIELDS",
		"request contains unexpected fields",
		"",
	)

	ErrInvalidPromotion = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PROMOTION",
		"promotion does not exist or is not active",
		"",
	)

	ErrMinSpendNotMet = NewBaseError(
		http.StatusBadRequest,
		"MIN_SPEND_NOT_MET",
		"spend is below the promotion minimum",
		"",
	)

	ErrNotAGuest = NewBaseError(
		http.StatusBadRequest,
		"NOT_A_GUEST",
		"user is not a guest of the event",
		"",
	)

	ErrEventBudgetExceeded = NewBaseError(
		http.StatusBadRequest,
		"EVENT_BUDGET_EXCEEDED",
		"event does not have enough points remaining",
		"",
	)

	ErrInvalidTimeWindow = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIME_WINDOW",
		"start time must be before end time and not in the past",
		"",
	)

	ErrInsufficientBalance = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_BALANCE",
		"not enough points",
		"",
	)

	// Not found errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSACTION_NOT_FOUND",
		"transaction not found",
		"",
	)

	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"event not found",
		"",
	)

	ErrPromotionNotFound = NewBaseError(
		http.StatusNotFound,
		"PROMOTION_NOT_FOUND",
		"promotion not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	// Conflict errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"a user with this utorid or email already exists",
		"",
	)

	ErrPromotionAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"PROMOTION_ALREADY_USED",
		"promotion already used",
		"",
	)

	ErrAlreadyGuest = NewBaseError(
		http.StatusConflict,
		"ALREADY_GUEST",
		"user is already a guest of the event",
		"",
	)

	ErrAlreadyOrganizer = NewBaseError(
		http.StatusConflict,
		"ALREADY_ORGANIZER",
		"user is already an organizer of the event",
		"",
	)

	ErrOrganizerGuestConflict = NewBaseError(
		http.StatusConflict,
		"ORGANIZER_GUEST_CONFLICT",
		"a user cannot be both organizer and guest of an event",
		"",
	)

	// Expired errors
	ErrEventEnded = NewBaseError(
		http.StatusGone,
		"EVENT_ENDED",
		"event has ended",
		"",
	)

	ErrEventFull = NewBaseError(
		http.StatusGone,
		"EVENT_FULL",
		"event is full",
		"",
	)

	// State errors
	ErrRedemptionAlreadyProcessed = NewBaseError(
		http.StatusBadRequest,
		"REDEMPTION_ALREADY_PROCESSED",
		"redemption already processed",
		"",
	)

	ErrEventPublished = NewBaseError(
		http.StatusBadRequest,
		"EVENT_PUBLISHED",
		"published events cannot be deleted",
		"",
	)

	ErrEventStarted = NewBaseError(
		http.StatusBadRequest,
		"EVENT_STARTED",
		"field cannot change after the event has started",
		"",
	)

	ErrEventEndedEdit = NewBaseError(
		http.StatusBadRequest,
		"EVENT_ENDED_EDIT",
		"field cannot change after the event has ended",
		"",
	)

	ErrPromotionStarted = NewBaseError(
		http.StatusBadRequest,
		"PROMOTION_STARTED",
		"field cannot change after the promotion has started",
		"",
	)

	ErrPromotionEndedEdit = NewBaseError(
		http.StatusBadRequest,
		"PROMOTION_ENDED_EDIT",
		"field cannot change after the promotion has ended",
		"",
	)

	// Auth errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrUnverifiedUser = NewBaseError(
		http.StatusForbidden,
		"UNVERIFIED_USER",
		"user must be verified",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"too many requests, try again later",
		"",
	)

	// General errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
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

// Unwrap returns the underlying database error.
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
