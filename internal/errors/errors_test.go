package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing field", fmt.Errorf("%w: email", ErrMissingField), http.StatusBadRequest, "MISSING_FIELD"},
		{"duplicate key", &DuplicateKeyError{Field: "email", Value: "al@x.com"}, http.StatusBadRequest, "DUPLICATE_KEY"},
		{"validation", &ValidationError{Detail: "data too long"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"already saved", ErrAlreadySaved, http.StatusBadRequest, "ALREADY_EXISTS"},
		{"saved job not found", ErrSavedJobNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"anything else", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestDuplicateKeyError_MessageNamesFieldAndValue(t *testing.T) {
	err := &DuplicateKeyError{Field: "username", Value: "al"}
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "al")
}

func TestInternalErrorHidesDetail(t *testing.T) {
	got := MapErrorToHTTP(errors.New("dsn user:hunter2@tcp(...)"))
	assert.Equal(t, "internal server error", got.Message)
}
