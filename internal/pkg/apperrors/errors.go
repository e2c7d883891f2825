package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrTokenUsed          = errors.New("token has already been used")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Student errors
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrStudentEmailExists  = errors.New("a student with this email already exists")
	ErrStudentNotAssigned  = errors.New("student is not assigned to this class batch")
	ErrStudentHasRelations = errors.New("student has associated records and cannot be deleted")
)

// Class batch errors
var (
	ErrClassBatchNotFound      = errors.New("class batch not found")
	ErrClassBatchAlreadyExists = errors.New("class batch with this name already exists")
	ErrClassBatchFull          = errors.New("class batch has no available seats")
)

// Catalog errors
var (
	ErrCatalogItemsNotAssigned = errors.New("one or more items are not currently assigned")
)

// Fee errors
var (
	ErrFeeStructureNotFound = errors.New("fee structure not found")
	ErrFeeStructureExists   = errors.New("fee structure for this standard and course type already exists")
	ErrFeePaymentNotFound   = errors.New("fee payment not found")
)

// Misc entity errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrExamNotFound       = errors.New("exam not found")
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")
	ErrInquiryNotFound    = errors.New("inquiry not found")
	ErrTimetableNotFound  = errors.New("timetable not found")
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewCustomError creates a CustomError wrapping err
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}
