// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Miss reasons used as the "reason" label of LookupMissesTotal.
const (
	MissUnknownAnimal   = "unknown_animal"
	MissNoMedia         = "no_media"
	MissUnknownEndpoint = "unknown_endpoint"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animalapi_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "animalapi_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "animalapi_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// Domain Metrics
	MediaRedirectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animalapi_media_redirects_total",
			Help: "Redirects issued to a random media URL",
		},
		[]string{"animal", "kind"}, // kind: any, image, gif
	)

	LookupMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animalapi_lookup_misses_total",
			Help: "Requests answered with 404, by reason",
		},
		[]string{"reason"},
	)

	DatasetAnimals = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "animalapi_dataset_animals",
			Help: "Number of animal types in the loaded dataset",
		},
	)

	DatasetMedia = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "animalapi_dataset_media",
			Help: "Number of media URLs in the loaded dataset by kind",
		},
		[]string{"kind"}, // image, gif
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "animalapi_app_info",
			Help: "Build information; the value is always 1",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments (true) or decrements (false) the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRedirect counts a redirect for animal with the given media kind.
func RecordRedirect(animal, kind string) {
	MediaRedirectsTotal.WithLabelValues(animal, kind).Inc()
}

// RecordMiss counts a 404 answer.
func RecordMiss(reason string) {
	LookupMissesTotal.WithLabelValues(reason).Inc()
}

// SetDatasetStats publishes the size of the loaded dataset.
func SetDatasetStats(animals, images, gifs int) {
	DatasetAnimals.Set(float64(animals))
	DatasetMedia.WithLabelValues("image").Set(float64(images))
	DatasetMedia.WithLabelValues("gif").Set(float64(gifs))
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
