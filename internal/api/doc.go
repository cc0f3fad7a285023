// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

/*
Package api provides the HTTP surface of the Animal API.

Routes:

	GET /                 service description and available animals
	GET /animals          animal catalog with media counts
	GET /{animal}         302 to a random image or GIF
	GET /{animal}/image   302 to a random image
	GET /{animal}/gif     302 to a random GIF
	GET /{animal}/all     every image and GIF for the animal
	GET /health/live      liveness probe
	GET /health/ready     readiness probe
	GET /metrics          Prometheus exposition (optional)
	GET /swagger/*        Swagger UI (optional)

Animal routes are matched case-insensitively and the animal segment is
percent-decoded before lookup. Unknown animals get a 404 that
lists the available animals, and unmatched requests get a 404 that lists the
available endpoints.

Usage:

	h := api.NewHandler(ds, nil, version)
	router := api.NewRouter(h, api.NewChiMiddlewareFromConfig(&cfg.Security), api.RouterOptions{
	    MetricsEnabled: cfg.Observability.MetricsEnabled,
	    SwaggerEnabled: cfg.Observability.SwaggerEnabled,
	})
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}

Caching:

JSON 200 responses carry a strong ETag and "Cache-Control: public, max-age=60".
A matching If-None-Match yields 304. Redirects and error bodies are sent with
"Cache-Control: no-store".
*/
package api
