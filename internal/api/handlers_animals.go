// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package api

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/animalapi/internal/dataset"
	"github.com/tomtom215/animalapi/internal/logging"
	"github.com/tomtom215/animalapi/internal/metrics"
	"github.com/tomtom215/animalapi/internal/middleware"
	"github.com/tomtom215/animalapi/internal/models"
)

// animalParam is the chi URL parameter holding the animal path segment.
const animalParam = "animal"

// No-media messages per media kind.
var noMediaMessages = map[dataset.MediaKind]string{
	dataset.MediaAny:   "No media available for this animal",
	dataset.MediaImage: "No images available for this animal",
	dataset.MediaGIF:   "No GIFs available for this animal",
}

// Describe handles GET /
//
// @Summary Describe the API
// @Description Returns a greeting, the API version, the endpoint catalog and every available animal type in dataset order
// @Tags Animals
// @Produce json
// @Success 200 {object} models.APIInfo
// @Router / [get]
func (h *Handler) Describe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIInfo{
		Message:          apiMessage,
		Version:          h.version,
		Endpoints:        endpointCatalog,
		AvailableAnimals: h.dataset.Keys(),
	})
}

// ListAnimals handles GET /animals
//
// @Summary List animal types
// @Description Returns every animal type with its display name and media counts, in dataset order
// @Tags Animals
// @Produce json
// @Success 200 {object} models.AnimalList
// @Router /animals [get]
func (h *Handler) ListAnimals(w http.ResponseWriter, r *http.Request) {
	entries := h.dataset.Entries()
	animals := make([]models.AnimalSummary, len(entries))
	for i, e := range entries {
		animals[i] = models.AnimalSummary{
			Type:       e.Key,
			Name:       e.Name,
			ImageCount: len(e.Images),
			GIFCount:   len(e.GIFs),
		}
	}

	respondJSON(w, r, http.StatusOK, &models.AnimalList{
		Count:   len(animals),
		Animals: animals,
	})
}

// RandomMedia handles GET /{animal}
//
// @Summary Random image or GIF
// @Description Redirects to a URL chosen uniformly from the animal's images and GIFs combined. The animal name is case-insensitive.
// @Tags Animals
// @Param animal path string true "Animal type" example(dog)
// @Success 302 "Redirect to the media URL"
// @Failure 404 {object} models.AnimalNotFoundResponse "Unknown animal"
// @Failure 404 {object} models.ErrorResponse "Animal has no media"
// @Router /{animal} [get]
func (h *Handler) RandomMedia(w http.ResponseWriter, r *http.Request) {
	h.randomMedia(w, r, dataset.MediaAny)
}

// RandomImage handles GET /{animal}/image
//
// @Summary Random image
// @Description Redirects to a URL chosen uniformly from the animal's images
// @Tags Animals
// @Param animal path string true "Animal type" example(dog)
// @Success 302 "Redirect to the image URL"
// @Failure 404 {object} models.AnimalNotFoundResponse "Unknown animal"
// @Failure 404 {object} models.ErrorResponse "Animal has no images"
// @Router /{animal}/image [get]
func (h *Handler) RandomImage(w http.ResponseWriter, r *http.Request) {
	h.randomMedia(w, r, dataset.MediaImage)
}

// RandomGIF handles GET /{animal}/gif
//
// @Summary Random GIF
// @Description Redirects to a URL chosen uniformly from the animal's GIFs
// @Tags Animals
// @Param animal path string true "Animal type" example(cat)
// @Success 302 "Redirect to the GIF URL"
// @Failure 404 {object} models.AnimalNotFoundResponse "Unknown animal"
// @Failure 404 {object} models.ErrorResponse "Animal has no GIFs"
// @Router /{animal}/gif [get]
func (h *Handler) RandomGIF(w http.ResponseWriter, r *http.Request) {
	h.randomMedia(w, r, dataset.MediaGIF)
}

func (h *Handler) randomMedia(w http.ResponseWriter, r *http.Request, kind dataset.MediaKind) {
	entry, _, ok := h.lookup(w, r)
	if !ok {
		return
	}

	target, ok := dataset.Pick(h.picker, entry.Candidates(kind))
	if !ok {
		metrics.RecordMiss(metrics.MissNoMedia)
		respondError(w, http.StatusNotFound, errorBody(ErrCodeNoMedia, noMediaMessages[kind]))
		return
	}

	metrics.RecordRedirect(entry.Key, string(kind))
	logging.Ctx(r.Context()).Debug().
		Str("animal", entry.Key).
		Str("kind", string(kind)).
		Str("target", target).
		Msg("Redirecting to random media")
	redirect(w, r, target)
}

// AllMedia handles GET /{animal}/all
//
// @Summary All media for an animal
// @Description Returns every image and GIF URL for the animal. The animal field echoes the path segment as sent.
// @Tags Animals
// @Produce json
// @Param animal path string true "Animal type" example(dog)
// @Success 200 {object} models.AnimalMedia
// @Failure 404 {object} models.AnimalNotFoundResponse "Unknown animal"
// @Router /{animal}/all [get]
func (h *Handler) AllMedia(w http.ResponseWriter, r *http.Request) {
	entry, segment, ok := h.lookup(w, r)
	if !ok {
		return
	}

	respondJSON(w, r, http.StatusOK, &models.AnimalMedia{
		Animal:     segment,
		Name:       entry.Name,
		Images:     entry.Images,
		GIFs:       entry.GIFs,
		TotalCount: entry.TotalCount(),
	})
}

// NotFound answers every request no route matched, whatever its method.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	metrics.RecordMiss(metrics.MissUnknownEndpoint)
	respondError(w, http.StatusNotFound, &models.EndpointNotFoundResponse{
		Error:              "Endpoint not found",
		Code:               ErrCodeEndpointNotFound,
		AvailableEndpoints: slices.Clone(availableEndpoints),
	})
}

// lookup resolves the animal path segment case-insensitively and returns it
// percent-decoded. chi yields the raw segment when the request path carries
// escapes. On a miss it writes the 404 response and returns false.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (dataset.Entry, string, bool) {
	raw := chi.URLParam(r, animalParam)
	if segment, err := url.PathUnescape(raw); err == nil {
		if entry, ok := h.dataset.Lookup(strings.ToLower(segment)); ok {
			return entry, segment, true
		}
	}

	metrics.RecordMiss(metrics.MissUnknownAnimal)
	logging.Ctx(r.Context()).Debug().
		Str("animal", middleware.SanitizeLogValue(raw)).
		Msg("Unknown animal requested")
	respondError(w, http.StatusNotFound, &models.AnimalNotFoundResponse{
		Error:            "Animal not found",
		Code:             ErrCodeAnimalNotFound,
		AvailableAnimals: h.dataset.Keys(),
	})
	return dataset.Entry{}, "", false
}
