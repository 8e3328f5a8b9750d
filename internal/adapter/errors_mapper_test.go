package adapter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithStatus(t *testing.T, status int, body string) *resty.Response {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, mapHTTPError(responseWithStatus(t, http.StatusOK, "")))
	assert.NoError(t, mapHTTPError(responseWithStatus(t, http.StatusNoContent, "")))
}

func TestMapHTTPError_KnownStatuses(t *testing.T) {
	tests := map[int]error{
		http.StatusBadRequest:          ErrBadRequest,
		http.StatusUnauthorized:        ErrUnauthorized,
		http.StatusForbidden:           ErrForbidden,
		http.StatusNotFound:            ErrNotFound,
		http.StatusConflict:            ErrConflict,
		http.StatusBadGateway:          ErrBadGateway,
		http.StatusInternalServerError: ErrInternalServerError,
		http.StatusServiceUnavailable:  ErrServiceUnavailable,
	}

	for status, want := range tests {
		err := mapHTTPError(responseWithStatus(t, status, "details"))
		assert.ErrorIs(t, err, want, "status %d", status)
		assert.ErrorIs(t, err, ErrUpstream, "status %d", status)
		assert.Contains(t, err.Error(), "details")
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	err := mapHTTPError(responseWithStatus(t, http.StatusTeapot, ""))

	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

func TestMapHTTPError_TruncatesBody(t *testing.T) {
	err := mapHTTPError(responseWithStatus(t, http.StatusBadRequest, strings.Repeat("x", 1000)))

	assert.Less(t, len(err.Error()), 400)
}
