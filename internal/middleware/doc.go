// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

/*
Package middleware provides the HTTP middleware shared by the Animal API router.

Key Components:

  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern so animal names never become label values
  - Recoverer: converts handler panics into a generic 500 JSON body and logs
    the panic with its stack
  - AccessLog: one zerolog line per request with status, bytes and duration
  - SanitizeLogValue: escapes control characters in request-derived strings

PrometheusMetrics keeps the http.HandlerFunc signature and is adapted for chi
by the api package. Recoverer and AccessLog are chi-style
func(http.Handler) http.Handler middleware.

Middleware Stack:

	r.Use(api.RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Recoverer)
	...
	r.With(chiMiddleware(middleware.PrometheusMetrics)).Get("/{animal}", h.RandomMedia)

See Also:

  - internal/api: router and handlers
  - internal/metrics: Prometheus metric definitions
*/
package middleware
