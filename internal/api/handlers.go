// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package api

import (
	"time"

	"github.com/tomtom215/animalapi/internal/dataset"
)

// DefaultVersion is reported by GET / when no build version is set.
const DefaultVersion = "1.0.0"

// Handler serves the Animal API endpoints from an immutable Dataset.
// It holds no mutable state, so one Handler serves all requests concurrently.
type Handler struct {
	dataset   *dataset.Dataset
	picker    dataset.Picker
	version   string
	startTime time.Time
}

// NewHandler creates a handler over ds. A nil picker uses
// dataset.DefaultPicker and an empty version uses DefaultVersion.
func NewHandler(ds *dataset.Dataset, picker dataset.Picker, version string) *Handler {
	if picker == nil {
		picker = dataset.DefaultPicker
	}
	if version == "" {
		version = DefaultVersion
	}
	return &Handler{
		dataset:   ds,
		picker:    picker,
		version:   version,
		startTime: time.Now(),
	}
}
