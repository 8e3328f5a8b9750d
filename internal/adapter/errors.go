package adapter

import "errors"

// ErrUpstream is matched by every error returned from a collaborator call.
var ErrUpstream = errors.New("upstream service error")

// Status-specific errors, wrapped together with ErrUpstream.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnknownPlan is returned when the billing service answers with a
	// plan identifier this service does not know.
	ErrUnknownPlan = errors.New("unknown plan")
)
