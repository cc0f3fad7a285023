// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/animalapi/internal/middleware"
)

// RouterOptions toggles the operational endpoints.
type RouterOptions struct {
	MetricsEnabled bool
	SwaggerEnabled bool
}

// Router wires the handler and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	options       RouterOptions
}

// NewRouter creates a router. A nil chiMw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, chiMw *ChiMiddleware, opts RouterOptions) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
		options:       opts,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
//
// Static routes (/animals, /health/*, /metrics, /swagger/*) take precedence
// over the /{animal} parameter routes. Anything unmatched, including known
// paths with an unsupported method, gets the endpoint catalog 404.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(RequestIDWithLogging())      // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)        // Client IP from X-Forwarded-For / X-Real-IP
	r.Use(middleware.AccessLog)        // One log line per request
	r.Use(middleware.Recoverer)        // Panic -> generic 500 JSON
	r.Use(router.chiMiddleware.CORS()) // Must be global to answer OPTIONS preflight
	r.Use(chimiddleware.StripSlashes)  // /dog/ is /dog
	r.Use(CaseInsensitiveRoutes())     // /ANIMALS is /animals, /dog/GIF is /dog/gif
	r.Use(chimiddleware.GetHead)       // HEAD served by GET routes

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	// ========================
	// Health Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/health/live", h.HealthLive)
		r.Get("/health/ready", h.HealthReady)
	})

	// ========================
	// Animal Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/", h.Describe)
		r.Get("/animals", h.ListAnimals)
		r.Get("/{animal}", h.RandomMedia)
		r.Get("/{animal}/image", h.RandomImage)
		r.Get("/{animal}/gif", h.RandomGIF)
		r.Get("/{animal}/all", h.AllMedia)
	})

	// ========================
	// Observability
	// ========================
	if router.options.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}
	if router.options.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		))
	}

	return r
}
