package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/style-keeper/internal/adapter"
	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/internal/service"
	"github.com/MKhiriev/style-keeper/internal/store"
	"github.com/MKhiriev/style-keeper/internal/utils"
	"github.com/MKhiriev/style-keeper/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoUserIDInContext, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrValidation, http.StatusBadRequest},
	{validators.ErrInvalidInput, http.StatusBadRequest},
	{store.ErrInvalidIncrement, http.StatusBadRequest},

	{service.ErrPlanRestricted, http.StatusForbidden},
	{service.ErrInsufficientData, http.StatusUnprocessableEntity},

	{ErrProfileNotFound, http.StatusNotFound},
	{ErrRouteNotFound, http.StatusNotFound},
	{store.ErrProfileNotFound, http.StatusNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
	{ErrTooManyRequests, http.StatusTooManyRequests},

	{adapter.ErrUpstream, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`

	// Plan is set for plan restriction denials.
	Plan string `json:"plan,omitempty"`

	// Actual and Required are set when there were not enough comments.
	Actual   *int `json:"actual,omitempty"`
	Required *int `json:"required,omitempty"`
}

func newErrorResponse(err error, status int) errorResponse {
	// server side failures never expose internals
	if status >= http.StatusInternalServerError {
		return errorResponse{Error: http.StatusText(status)}
	}

	resp := errorResponse{Error: err.Error()}

	var planErr *service.PlanRestrictionError
	if errors.As(err, &planErr) {
		resp.Plan = string(planErr.Plan)
	}

	var dataErr *service.InsufficientDataError
	if errors.As(err, &dataErr) {
		resp.Actual = &dataErr.Actual
		resp.Required = &dataErr.Required
	}

	return resp
}

// writeError logs err and writes the mapped status with a JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")

	if _, writeErr := utils.WriteJSON(w, newErrorResponse(err, status), status); writeErr != nil {
		log.Err(writeErr).Msg("error response was not written")
	}
}
