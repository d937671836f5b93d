package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrInsufficientRole = errors.New("insufficient role for this action")
	ErrNotOwner         = errors.New("not the owner of this resource")
	ErrNotClassMember   = errors.New("not a member of this class")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
)

// Word book and word errors
var (
	ErrWordBookNotFound = errors.New("word book not found")
	ErrWordNotFound     = errors.New("word not found")
)

// Class and roster errors
var (
	ErrClassNotFound     = errors.New("class not found")
	ErrInvalidStudent    = errors.New("student does not exist or is not a student")
	ErrAlreadyMember     = errors.New("student is already in the class")
	ErrStudentNotInClass = errors.New("student is not in the class")
)

// Acquisition errors
var (
	ErrNavigationTimeout  = errors.New("page navigation timed out")
	ErrNavigationFailed   = errors.New("page navigation failed")
	ErrBrowserUnavailable = errors.New("headless browser could not be launched")
	ErrInvalidSelector    = errors.New("invalid selector configuration")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
