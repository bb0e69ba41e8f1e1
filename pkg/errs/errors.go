package errs

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrValidation         = errors.New("Invalid request payload")
	ErrNotLoggedIn        = errors.New("Unauthorized access")
	ErrInvalidCredentials = errors.New("Username or password is incorrect")
	ErrNotFound           = errors.New("Resource not found")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrValidation:         ErrStatusClient,
	ErrNotLoggedIn:        ErrStatusUnauthorized,
	ErrInvalidCredentials: ErrStatusUnauthorized,
	ErrNotFound:           ErrStatusNotFound,
}

func GetErrorStatusCode(err error) int {
	if statusCode, ok := errorMap[err]; ok {
		return statusCode
	}

	for sentinel, statusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return statusCode
		}
	}

	return ErrStatusInternalServer
}

// FieldError reports the first payload field that failed validation.
// It unwraps to ErrValidation so the status mapping stays in one place.
type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "max":
		return fmt.Sprintf("%s exceeds the maximum length", e.Field)
	case "gt":
		return fmt.Sprintf("%s must be a positive number", e.Field)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}
