// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

// Package services adapts long-running components to suture.Service.
//
// HTTPServerService translates http.Server's blocking ListenAndServe and
// Shutdown into suture's context-aware Serve, with a bounded drain on
// cancellation.
package services
