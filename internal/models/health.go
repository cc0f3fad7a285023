// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package models

// LiveStatus is the liveness probe body.
type LiveStatus struct {
	Status        string  `json:"status" example:"alive"`
	UptimeSeconds float64 `json:"uptimeSeconds" example:"42.5"`
}

// ReadyStatus is the readiness probe body. Animals is omitted when not ready.
type ReadyStatus struct {
	Status  string `json:"status" example:"ready"`
	Animals int    `json:"animals,omitempty" example:"8"`
}
