package heartlink_errors

import (
	"errors"
	"net/http"
)

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrAlreadyExists = errors.New("already exists")
	ErrRateLimited   = errors.New("rate limited")
	ErrUploadFailed  = errors.New("upload failed")
)

// Error carries a client-facing message on top of one of the sentinel
// categories above. errors.Is still matches the category.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func Invalid(msg string) error {
	return &Error{Kind: ErrInvalidInput, Message: msg}
}

func Unauthorized(msg string) error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

func Upload(msg string) error {
	return &Error{Kind: ErrUploadFailed, Message: msg}
}

// HTTPStatus maps an error to the status code written at the handler boundary.
// Anything outside the known categories is a server fault.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUploadFailed):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
