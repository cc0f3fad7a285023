// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// APIInfo describes the service and lists the available animals.
type APIInfo struct {
	Message          string          `json:"message" example:"Animal API - Get random animal pictures and GIFs"`
	Version          string          `json:"version" example:"1.0.0"`
	Endpoints        EndpointCatalog `json:"endpoints" swaggertype:"object,string"`
	AvailableAnimals []string        `json:"availableAnimals" example:"dog,cat"`
}

// AnimalSummary is one row of the animal catalog.
type AnimalSummary struct {
	Type       string `json:"type" example:"dog"`
	Name       string `json:"name" example:"Dog"`
	ImageCount int    `json:"imageCount" example:"4"`
	GIFCount   int    `json:"gifCount" example:"2"`
}

// AnimalList is the body of GET /animals.
type AnimalList struct {
	Count   int             `json:"count" example:"8"`
	Animals []AnimalSummary `json:"animals"`
}

// AnimalMedia is the body of GET /{animal}/all. Animal echoes the path
// segment exactly as the client sent it.
type AnimalMedia struct {
	Animal     string   `json:"animal" example:"Dog"`
	Name       string   `json:"name" example:"Dog"`
	Images     []string `json:"images"`
	GIFs       []string `json:"gifs"`
	TotalCount int      `json:"totalCount" example:"6"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error" example:"No GIFs available for this animal"`
	Code  string `json:"code" example:"NO_MEDIA"`
}

// AnimalNotFoundResponse is returned when the path names an unknown animal.
type AnimalNotFoundResponse struct {
	Error            string   `json:"error" example:"Animal not found"`
	Code             string   `json:"code" example:"ANIMAL_NOT_FOUND"`
	AvailableAnimals []string `json:"availableAnimals" example:"dog,cat"`
}

// EndpointNotFoundResponse is returned for any request no route matched.
type EndpointNotFoundResponse struct {
	Error              string   `json:"error" example:"Endpoint not found"`
	Code               string   `json:"code" example:"ENDPOINT_NOT_FOUND"`
	AvailableEndpoints []string `json:"availableEndpoints" example:"GET /,GET /animals"`
}

// Endpoint pairs a route, written as "METHOD /path", with a description.
type Endpoint struct {
	Route       string
	Description string
}

// EndpointCatalog serializes as a JSON object whose members keep slice order.
type EndpointCatalog []Endpoint

// Routes returns the routes in catalog order.
func (c EndpointCatalog) Routes() []string {
	routes := make([]string, len(c))
	for i, e := range c {
		routes[i] = e.Route
	}
	return routes
}

// MarshalJSON implements json.Marshaler.
func (c EndpointCatalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Route)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Description)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Members are read in document order.
func (c *EndpointCatalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("endpoint catalog: %w", err)
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("endpoint catalog: expected object, got %v", tok)
	}

	out := EndpointCatalog{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("endpoint catalog: %w", err)
		}
		route, ok := tok.(string)
		if !ok {
			return fmt.Errorf("endpoint catalog: expected route, got %v", tok)
		}

		var description string
		if err := dec.Decode(&description); err != nil {
			return fmt.Errorf("endpoint catalog: route %q: %w", route, err)
		}
		out = append(out, Endpoint{Route: route, Description: description})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("endpoint catalog: %w", err)
	}

	*c = out
	return nil
}
