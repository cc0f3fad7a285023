// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/animalapi/internal/models"
)

// HealthLive handles Kubernetes liveness probe requests.
//
// @Summary Liveness probe
// @Description Reports that the process is running
// @Tags Health
// @Produce json
// @Success 200 {object} models.LiveStatus
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondUncached(w, http.StatusOK, &models.LiveStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles Kubernetes readiness probe requests.
//
// @Summary Readiness probe
// @Description Reports ready once a non-empty dataset is loaded
// @Tags Health
// @Produce json
// @Success 200 {object} models.ReadyStatus
// @Failure 503 {object} models.ReadyStatus
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.dataset == nil || h.dataset.Len() == 0 {
		respondUncached(w, http.StatusServiceUnavailable, &models.ReadyStatus{Status: "not_ready"})
		return
	}
	respondUncached(w, http.StatusOK, &models.ReadyStatus{
		Status:  "ready",
		Animals: h.dataset.Len(),
	})
}
