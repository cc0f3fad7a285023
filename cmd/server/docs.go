// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

// Package main provides the Animal API HTTP server
//
// @title Animal API
// @version 1.0.0
// @description Random animal images and GIFs.
// @description
// @description Every media endpoint answers with a 302 redirect to a URL picked at random
// @description from the animal's image and GIF lists. Paths are case-insensitive and the
// @description animal name may be percent-encoded.
// @description
// @description ## Error Responses
// @description
// @description Errors carry a human-readable message and a stable code:
// @description ```json
// @description {"error": "No GIFs available for this animal", "code": "NO_MEDIA"}
// @description ```
// @description Unknown animals add `availableAnimals`; unknown endpoints add `availableEndpoints`.
// @description
// @description ## Rate Limiting
// @description
// @description Disabled by default. When enabled, clients over the limit receive 429 with code `RATE_LIMITED`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/animalapi/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @tag.name Animals
// @tag.description API description, animal catalog and random media redirects
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
