package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrExternalService = errors.New("external service error")
	ErrStorage         = errors.New("storage error")
	ErrInternal        = errors.New("internal server error")
)

// AppError carries a sentinel base error used for HTTP status mapping, a
// client-safe message, and server-side detail. The wrapped cause never
// reaches the client.
type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

// NewExternalService covers failures of the generative model: transport
// errors, non-200 replies, and unparseable output. The client message stays
// generic.
func NewExternalService(details string, err error) *AppError {
	return NewAppError(ErrExternalService, "An upstream service failed to process the request", details, err)
}

func NewStorage(details string, err error) *AppError {
	return NewAppError(ErrStorage, "Failed to persist data", details, err)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "An internal server error occurred", details, err)
}

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	// External-service and storage failures are both server errors to the
	// caller; the distinction lives in the logs.
	return http.StatusInternalServerError
}

func (e *AppError) ToJSON() gin.H {
	h := gin.H{
		"error":   e.BaseError.Error(),
		"message": e.Message,
	}
	// Input problems describe the caller's own data (malformed JSON,
	// unreadable PDF), so the detail goes back to help them fix the
	// request. Server-side categories stay generic.
	if errors.Is(e.BaseError, ErrInvalidInput) && e.Details != "" {
		h["details"] = e.Details
	}
	return h
}
