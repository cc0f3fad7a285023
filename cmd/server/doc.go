// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

// Package main is the entry point for the Animal API server.
//
// The Animal API serves random animal images and GIFs as HTTP redirects from
// a fixed dataset that is loaded once at startup.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional config.yaml and environment variables (Koanf v2)
//  2. Logging: zerolog configured from the logging section
//  3. Dataset: animals.json from DATASET_PATH, or the copy embedded in the binary
//  4. Metrics: dataset size and build info gauges
//  5. HTTP Server: chi router added to the suture supervisor tree
//
// A dataset that cannot be read or fails validation is fatal. The server never
// starts with a partial dataset.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (PORT, HTTP_HOST, DATASET_PATH, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults (port 3000)
//
// A .env file in the working directory is loaded before the environment is read.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests up to SHUTDOWN_TIMEOUT
//   - Reports services that failed to stop in time
//
// If the listener cannot be bound the supervisor tree terminates and the
// process exits with status 1.
//
// # Example Usage
//
//	PORT=8080 ./animalapi
//	curl -i http://localhost:8080/dog/gif
//
// Build with a version string:
//
//	go build -ldflags "-X main.version=1.2.0" ./cmd/server
package main
