package adapter

import "errors"

var (
	// ErrBadRequest is returned for HTTP 400.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned for HTTP 401.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned for HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrInternalServerError is returned for HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnavailable is returned for HTTP 503.
	ErrUnavailable = errors.New("server unavailable")
	// ErrTimeout is returned for HTTP 504.
	ErrTimeout = errors.New("server timeout")

	ErrNoToken = errors.New("no session token in response")
)
