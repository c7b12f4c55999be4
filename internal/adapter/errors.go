package adapter

import "errors"

// Sentinel errors returned by [FeedClient] implementations. HTTP responses are
// mapped by status code; connection-level failures map to ErrServerUnavailable
// or ErrRequestTimeout so the sync engine can tell transient transport trouble
// from protocol-level rejections.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("version conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrServerUnavailable = errors.New("server unavailable")
	ErrRequestTimeout    = errors.New("request timeout")
)
