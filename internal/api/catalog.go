// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package api

import "github.com/tomtom215/animalapi/internal/models"

// apiMessage is the greeting returned by GET /.
const apiMessage = "Animal API - Get random animal pictures and GIFs"

// endpointCatalog is the endpoints object of GET /.
var endpointCatalog = models.EndpointCatalog{
	{Route: "GET /animals", Description: "List all available animal types"},
	{Route: "GET /:animal", Description: "Get a random image for a specific animal"},
	{Route: "GET /:animal/gif", Description: "Get a random GIF for a specific animal"},
	{Route: "GET /:animal/image", Description: "Get a random image for a specific animal"},
	{Route: "GET /:animal/all", Description: "Get all images and GIFs for a specific animal"},
}

// availableEndpoints is listed in the 404 body for unmatched requests.
var availableEndpoints = []string{
	"GET /",
	"GET /animals",
	"GET /:animal",
	"GET /:animal/image",
	"GET /:animal/gif",
	"GET /:animal/all",
}
