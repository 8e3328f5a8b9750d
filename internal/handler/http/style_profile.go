// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/internal/utils"
	"github.com/MKhiriev/style-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxRequestBodySize bounds the JSON bodies accepted by this API.
const maxRequestBodySize = 4 << 10

type extractRequestBody struct {
	AccountRef string `json:"account_ref"`
}

type usageRequestBody struct {
	Count int `json:"count"`
}

func (h *Handler) extractStyleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	var body extractRequestBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.StyleProfileService.ExtractStyleProfile(r.Context(), userID, chi.URLParam(r, platformParam), body.AccountRef)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) getStyleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	descriptor, err := h.services.StyleProfileService.GetStyleProfile(r.Context(), userID, chi.URLParam(r, platformParam))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if descriptor == nil {
		writeError(w, r, ErrProfileNotFound)
		return
	}

	h.writeJSON(w, r, descriptor, http.StatusOK)
}

func (h *Handler) needsRefresh(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	needs, err := h.services.StyleProfileService.NeedsRefresh(r.Context(), userID, chi.URLParam(r, platformParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.RefreshStatus{NeedsRefresh: needs}, http.StatusOK)
}

func (h *Handler) getProfileMetadata(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	meta, err := h.services.StyleProfileService.GetProfileMetadata(r.Context(), userID, chi.URLParam(r, platformParam))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if meta == nil {
		writeError(w, r, ErrProfileNotFound)
		return
	}

	h.writeJSON(w, r, meta, http.StatusOK)
}

func (h *Handler) recordUsage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	var body usageRequestBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.StyleProfileService.RecordUsage(r.Context(), userID, chi.URLParam(r, platformParam), body.Count); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("response was not written")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
