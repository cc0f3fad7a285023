// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package api

import (
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/animalapi/internal/logging"
	"github.com/tomtom215/animalapi/internal/models"
)

// Error codes carried in the "code" field of error bodies.
const (
	ErrCodeAnimalNotFound   = "ANIMAL_NOT_FOUND"
	ErrCodeNoMedia          = "NO_MEDIA"
	ErrCodeEndpointNotFound = "ENDPOINT_NOT_FOUND"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	cachePublic     = "public, max-age=60"
	cacheNoStore    = "no-store"
)

// respondJSON writes a cacheable 200-class JSON response with an ETag.
// A request whose If-None-Match matches the ETag gets 304 with no body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, ok := marshal(w, v)
	if !ok {
		return
	}

	etag := generateETag(data)
	h := w.Header()
	h.Set("Content-Type", contentTypeJSON)
	h.Set("Cache-Control", cachePublic)
	h.Set("ETag", etag)

	if status == http.StatusOK && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	write(w, status, data)
}

// respondError writes an uncacheable JSON error body.
func respondError(w http.ResponseWriter, status int, v any) {
	respondUncached(w, status, v)
}

// respondUncached writes JSON that clients and proxies must not store.
func respondUncached(w http.ResponseWriter, status int, v any) {
	data, ok := marshal(w, v)
	if !ok {
		return
	}

	h := w.Header()
	h.Set("Content-Type", contentTypeJSON)
	h.Set("Cache-Control", cacheNoStore)
	h.Del("ETag")

	write(w, status, data)
}

// redirect sends a 302 to target. Redirects are never cached so every
// request draws a fresh random pick.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	w.Header().Set("Cache-Control", cacheNoStore)
	http.Redirect(w, r, target, http.StatusFound)
}

func marshal(w http.ResponseWriter, v any) ([]byte, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", contentTypeJSON)
		w.Header().Set("Cache-Control", cacheNoStore)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error","code":"` + ErrCodeInternalError + `"}`))
		return nil, false
	}
	return append(data, '\n'), true
}

func write(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a strong ETag from data using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// errorBody builds the generic error payload.
func errorBody(code, message string) *models.ErrorResponse {
	return &models.ErrorResponse{Error: message, Code: code}
}
