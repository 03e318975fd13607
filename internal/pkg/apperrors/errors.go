package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")
)

// Staff errors
var (
	ErrStaffNotFound          = errors.New("staff member not found")
	ErrStaffSlugAlreadyExists = errors.New("staff member with this slug already exists")
	ErrUnknownRole            = errors.New("unknown staff role")
	ErrDeanWithoutFaculty     = errors.New("dean must be assigned to a faculty")
	ErrHeadWithoutDepartment  = errors.New("department head must be assigned to a department")
)

// Faculty errors
var (
	ErrFacultyNotFound         = errors.New("faculty not found")
	ErrFacultyAlreadyExists    = errors.New("faculty with this name or slug already exists")
	ErrFacultyHasDepartments   = errors.New("faculty has existing departments and cannot be deleted")
	ErrFacultyForStaffNotFound = errors.New("faculty referenced by staff member not found")
)

// Department errors
var (
	ErrDepartmentNotFound           = errors.New("department not found")
	ErrDepartmentAlreadyExists      = errors.New("department with this name or slug already exists")
	ErrDepartmentForStaffNotFound   = errors.New("department referenced by staff member not found")
	ErrFacultyForDepartmentNotFound = errors.New("faculty for department not found")
)

// News errors
var (
	ErrNewsNotFound      = errors.New("news item not found")
	ErrNewsAlreadyExists = errors.New("news item with this slug already exists")
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

// NewValidationError creates a validation error carrying a user-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates a conflict error carrying a user-facing message
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
