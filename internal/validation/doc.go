// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is created on first use and shared. Field names
// in errors come from json tags, so messages refer to the keys a dataset or
// config file author actually wrote.
//
// # Usage
//
//	type source struct {
//	    Name   string   `json:"name" validate:"required"`
//	    Images []string `json:"images" validate:"required,dive,required,http_url"`
//	}
//
//	if err := validation.ValidateStruct(&src); err != nil {
//	    return fmt.Errorf("animal %q: %w", key, err)
//	}
//
// Single values are checked with ValidateVar:
//
//	err := validation.ValidateVar("key", key, "required,lowercase")
//
// # Errors
//
// Both functions return *RequestValidationError, which carries one
// ValidationError per failed rule. Error() joins the messages with "; ".
// Nested fields are reported with their full path, for example
// "images[2]".
package validation
