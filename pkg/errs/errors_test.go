package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: ErrNotFound, expected: http.StatusNotFound},
		{name: "client", err: ErrClient, expected: http.StatusBadRequest},
		{name: "validation", err: ErrValidation, expected: http.StatusBadRequest},
		{name: "invalid credentials", err: ErrInvalidCredentials, expected: http.StatusUnauthorized},
		{name: "not logged in", err: ErrNotLoggedIn, expected: http.StatusUnauthorized},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
		{name: "wrapped field error", err: &FieldError{Field: "price", Tag: "gt"}, expected: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetErrorStatusCode(tc.err))
		})
	}
}

func TestFieldError_Message(t *testing.T) {
	assert.Equal(t, "name is required", (&FieldError{Field: "name", Tag: "required"}).Error())
	assert.Equal(t, "price must be a positive number", (&FieldError{Field: "price", Tag: "gt"}).Error())
	assert.Equal(t, "description exceeds the maximum length", (&FieldError{Field: "description", Tag: "max"}).Error())
}
