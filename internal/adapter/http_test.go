// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/style-keeper/internal/config"
	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServiceToken = "svc-token"

func newTestAdapterConfig(serverURL string) config.Adapter {
	return config.Adapter{
		PlansAddress:    serverURL,
		CommentsAddress: serverURL,
		ServiceToken:    testServiceToken,
		RequestTimeout:  2 * time.Second,
	}
}

func newTestPlanProvider(t *testing.T, serverURL string) PlanProvider {
	t.Helper()
	p, err := NewHTTPPlanProvider(newTestAdapterConfig(serverURL), logger.Nop())
	require.NoError(t, err)
	return p
}

func newTestCommentFetcher(t *testing.T, serverURL string) CommentFetcher {
	t.Helper()
	f, err := NewHTTPCommentFetcher(newTestAdapterConfig(serverURL), logger.Nop())
	require.NoError(t, err)
	return f
}

// ── GetUserPlan ─────────────────────────────────────────────────────────────

func TestGetUserPlan_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/internal/users/user-1/plan", r.URL.Path)
		assert.Equal(t, "Bearer "+testServiceToken, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"plan":"pro"}`))
	}))
	defer srv.Close()

	plan, err := newTestPlanProvider(t, srv.URL).GetUserPlan(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, models.PlanPro, plan)
}

func TestGetUserPlan_UnknownPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"plan":"enterprise-gold"}`))
	}))
	defer srv.Close()

	_, err := newTestPlanProvider(t, srv.URL).GetUserPlan(context.Background(), "user-1")

	assert.ErrorIs(t, err, ErrUnknownPlan)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGetUserPlan_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("boom"))
			}))
			defer srv.Close()

			_, err := newTestPlanProvider(t, srv.URL).GetUserPlan(context.Background(), "user-1")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrUpstream)
		})
	}
}

func TestGetUserPlan_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestPlanProvider(t, srv.URL).GetUserPlan(context.Background(), "user-1")

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGetUserPlan_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"plan":"pro"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestPlanProvider(t, srv.URL).GetUserPlan(ctx, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrUpstream)
}

// ── FetchRecentComments ─────────────────────────────────────────────────────

func TestFetchRecentComments_Success(t *testing.T) {
	created := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/platforms/youtube/accounts/chan-9/comments", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "true", r.URL.Query().Get("exclude_self_generated"))
		assert.Equal(t, "Bearer "+testServiceToken, r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(commentsResponse{Comments: []models.Comment{
			{ID: "c1", Text: "first", CreatedAt: created},
			{ID: "c2", Text: "second", CreatedAt: created.Add(-time.Hour)},
		}})
	}))
	defer srv.Close()

	comments, err := newTestCommentFetcher(t, srv.URL).FetchRecentComments(context.Background(), "youtube", "chan-9")

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.True(t, comments[0].CreatedAt.Equal(created))
}

func TestFetchRecentComments_EscapesAccountRef(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.Contains(r.URL.EscapedPath(), "some%2Fhandle"), r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"comments":[]}`))
	}))
	defer srv.Close()

	comments, err := newTestCommentFetcher(t, srv.URL).FetchRecentComments(context.Background(), "reddit", "some/handle")

	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestFetchRecentComments_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestCommentFetcher(t, srv.URL).FetchRecentComments(context.Background(), "twitter", "acc")

	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestFetchRecentComments_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"comments":`))
	}))
	defer srv.Close()

	_, err := newTestCommentFetcher(t, srv.URL).FetchRecentComments(context.Background(), "twitter", "acc")

	assert.ErrorIs(t, err, ErrUpstream)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewAdapters_InvalidAddress(t *testing.T) {
	_, err := NewHTTPPlanProvider(config.Adapter{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPCommentFetcher(config.Adapter{CommentsAddress: "http://"}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:9000", want: "http://localhost:9000"},
		{raw: "https://billing.internal/", want: "https://billing.internal"},
		{raw: "  http://x:1  ", want: "http://x:1"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
