package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCourseNotFound is returned when a course does not exist.
	ErrCourseNotFound = errors.New("course not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrModuleNotFound is returned when a module does not exist.
	ErrModuleNotFound = errors.New("module not found")
	// ErrEnrollmentNotFound is returned when an enrollment does not exist.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("Email already registered")
	// ErrAdminRoleNotAllowed is returned when registration requests the ADMIN role.
	ErrAdminRoleNotAllowed = errors.New("Admin role assignment not allowed")
	// ErrInvalidCredentials is returned on bad email or password. Kept generic to
	// avoid leaking which of the two was wrong.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrInvalidOTP is returned when a password-reset code does not match.
	ErrInvalidOTP = errors.New("invalid OTP")
	// ErrNotCourseOwner is returned when a mutation targets a course the caller does not own.
	ErrNotCourseOwner = errors.New("you are not the owner of this course")
	// ErrNotEnrolled is returned when course content is requested without an enrollment.
	ErrNotEnrolled = errors.New("you are not enrolled in this course")
	// ErrAlreadyEnrolled is returned on a duplicate enrollment attempt.
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrCourseNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "COURSE_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrModuleNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "MODULE_NOT_FOUND")
	case ErrEnrollmentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ENROLLMENT_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrAlreadyEnrolled:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_ENROLLED")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrAdminRoleNotAllowed:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_ROLE_NOT_ALLOWED")
	case ErrNotCourseOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_COURSE_OWNER")
	case ErrNotEnrolled:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_ENROLLED")
	case ErrInvalidOTP:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_OTP")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
