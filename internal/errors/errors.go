package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPostNotFound is returned when no post exists for the given id.
	ErrPostNotFound = errors.New("Post not found")
	// ErrOnlyLostCanBeFound is returned when mark-found targets a "found" post.
	ErrOnlyLostCanBeFound = errors.New("Only lost items can be marked as found")
	// ErrOnlyFoundCanBeReturned is returned when mark-returned targets a "lost" post.
	ErrOnlyFoundCanBeReturned = errors.New("Only found items can be marked as returned")
	// ErrAlreadyFound is returned when a lost post was already resolved.
	ErrAlreadyFound = errors.New("This item is already marked as found")
	// ErrAlreadyReturned is returned when a found post was already resolved.
	ErrAlreadyReturned = errors.New("This item is already marked as returned")
	// ErrNoSecretSet is returned for legacy records created without a secret.
	ErrNoSecretSet = errors.New("This post has no secret set")
	// ErrIncorrectSecret is returned when the supplied secret does not match.
	ErrIncorrectSecret = errors.New("Incorrect secret password")
	// ErrUploadFailed is returned when image ingestion fails.
	ErrUploadFailed = errors.New("Failed to upload images")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Every resolution guard
// failure surfaces as 400 with a differentiated message; clients display the
// message verbatim.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	switch err {
	case ErrPostNotFound:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "POST_NOT_FOUND")
	case ErrOnlyLostCanBeFound, ErrOnlyFoundCanBeReturned:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WRONG_POST_TYPE")
	case ErrAlreadyFound, ErrAlreadyReturned:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_RESOLVED")
	case ErrNoSecretSet:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_SECRET_SET")
	case ErrIncorrectSecret:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SECRET_MISMATCH")
	case ErrUploadFailed:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "UPLOAD_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
