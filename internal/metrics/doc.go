// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

/*
Package metrics provides Prometheus metrics collection for the Animal API.

Collectors register with the default registry through promauto and are served
on /metrics by the api package when observability.metrics_enabled is set.

# Available Metrics

HTTP Metrics:
  - animalapi_http_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status_code
  - animalapi_http_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - animalapi_http_requests_in_flight: Active requests (gauge)

The endpoint label is the chi route pattern (for example "/{animal}/gif"),
never the raw path, so label cardinality stays bounded by the route table.

Domain Metrics:
  - animalapi_media_redirects_total: Redirects issued (counter)
    Labels: animal, kind
  - animalapi_lookup_misses_total: Requests answered with 404 (counter)
    Labels: reason (unknown_animal, no_media, unknown_endpoint)

Dataset Metrics:
  - animalapi_dataset_animals: Animals in the loaded dataset (gauge)
  - animalapi_dataset_media: Media URLs in the loaded dataset (gauge)
    Labels: kind (image, gif)
  - animalapi_app_info: Build information, always 1 (gauge)
    Labels: version, go_version

# Example Queries

	# Redirects per second by animal
	sum by (animal) (rate(animalapi_media_redirects_total[5m]))

	# p95 latency per route
	histogram_quantile(0.95, sum by (le, endpoint) (rate(animalapi_http_request_duration_seconds_bucket[5m])))

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
