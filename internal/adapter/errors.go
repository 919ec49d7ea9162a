package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNetwork wraps failures to reach the server (dial, timeout, reset).
	ErrNetwork = errors.New("network error")
	// ErrOwnerRequired is returned by CreateVault for an empty owner id.
	ErrOwnerRequired = errors.New("owner id is required: log in first")
	// ErrDecode wraps 2xx responses whose body cannot be decoded.
	ErrDecode = errors.New("malformed response body")
)

// StatusError describes a non-2xx response of the vault API.
type StatusError struct {
	// Op is the operation name, e.g. "create vault".
	Op string
	// Code is the HTTP status code.
	Code int
	// Status is the HTTP status text.
	Status string
	// Body is the trimmed response body, kept for logging.
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %d %s", e.Op, e.Code, e.Status)
}

// Unwrap returns the sentinel matching Code, or nil for unmapped codes.
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}
