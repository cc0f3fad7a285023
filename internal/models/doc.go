// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

/*
Package models defines the JSON payloads served by the Animal API.

Key Components:

  - APIInfo: service description returned by GET /
  - AnimalList, AnimalSummary: catalog returned by GET /animals
  - AnimalMedia: full media listing returned by GET /{animal}/all
  - ErrorResponse, AnimalNotFoundResponse, EndpointNotFoundResponse: error bodies
  - LiveStatus, ReadyStatus: health probe bodies
  - EndpointCatalog: ordered endpoint-to-description object

Field names are camelCase to match what existing API clients expect
(imageCount, gifCount, totalCount, availableAnimals).

Slices are never serialized as null. Constructors in the api package always
populate them, and EndpointCatalog writes its members in declaration order.
*/
package models
