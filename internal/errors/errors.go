package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingField is returned when a required request field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match.
	// Deliberately distinct from ErrUserNotFound: this API does not hide
	// account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAlreadySaved is returned when the owner already saved the job.
	ErrAlreadySaved = errors.New("job already saved")
	// ErrSavedJobNotFound is returned when unsaving a job that was never saved.
	ErrSavedJobNotFound = errors.New("saved job not found")
)

// DuplicateKeyError reports which unique field a registration collided on.
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

// ValidationError wraps a persistence-layer schema rejection that is not a
// duplicate key (oversized value, null in a not-null column, ...).
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

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

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is
// an internal failure.
func MapErrorToHTTP(err error) *HTTPError {
	var dup *DuplicateKeyError
	if errors.As(err, &dup) {
		return NewHTTPError(http.StatusBadRequest, dup.Error(), "DUPLICATE_KEY")
	}
	var invalid *ValidationError
	if errors.As(err, &invalid) {
		return NewHTTPError(http.StatusBadRequest, invalid.Error(), "VALIDATION_ERROR")
	}
	switch {
	case errors.Is(err, ErrMissingField):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELD")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAlreadySaved):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_EXISTS")
	case errors.Is(err, ErrSavedJobNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
