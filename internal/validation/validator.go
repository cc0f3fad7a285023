// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

// Package validation wraps a singleton go-playground/validator instance.
//
// Field names in messages are taken from `json` tags so errors read the same
// way as the document being validated:
//
//	type entry struct {
//	    Name   string   `json:"name"   validate:"required"`
//	    Images []string `json:"images" validate:"required,dive,required,http_url"`
//	}
//
//	if err := validation.ValidateStruct(&e); err != nil {
//	    return fmt.Errorf("entry %q: %w", key, err) // "name is required"
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is a single failed rule.
type ValidationError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the (json) name of the failing field.
func (e *ValidationError) Field() string { return e.field }

// Tag returns the failing validation tag, e.g. "required".
func (e *ValidationError) Tag() string { return e.tag }

// Param returns the tag parameter, e.g. "3" for "min=3".
func (e *ValidationError) Param() string { return e.param }

// Error returns a human-readable message.
func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects every failed rule of one Validate call.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual failures.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error joins all failure messages with "; ".
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve.errors))
	for i := range ve.errors {
		msgs[i] = ve.errors[i].message
	}
	return strings.Join(msgs, "; ")
}

// GetValidator returns the process-wide validator. Safe for concurrent use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

// jsonFieldName reports the json name of a struct field, or the Go name when
// the field has no json tag.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// ValidateStruct validates s. It returns nil (not a typed nil) on success so
// the result can be returned directly as an error.
func ValidateStruct(s any) error {
	if err := GetValidator().Struct(s); err != nil {
		return convert(err, "")
	}
	return nil
}

// ValidateVar validates a single value against tag, reporting failures under
// the given field name.
//
//	validation.ValidateVar("key", key, "required,lowercase")
func ValidateVar(field string, value any, tag string) error {
	if err := GetValidator().Var(value, tag); err != nil {
		return convert(err, field)
	}
	return nil
}

func convert(err error, fieldOverride string) *RequestValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{errors: []ValidationError{{
			field:   "unknown",
			tag:     "unknown",
			message: err.Error(),
		}}}
	}

	out := make([]ValidationError, len(fieldErrs))
	for i, fe := range fieldErrs {
		field := fieldPath(fe)
		if fieldOverride != "" {
			field = fieldOverride
		}
		out[i] = ValidationError{
			field:   field,
			tag:     fe.Tag(),
			param:   fe.Param(),
			message: translateError(fe, field),
		}
	}
	return &RequestValidationError{errors: out}
}

// fieldPath drops the top-level struct name from the namespace so nested and
// dived fields read as "images[2]" rather than "sourceEntry.images[2]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

var errorMessageTemplates = map[string]string{
	"required":  "%s is required",
	"url":       "%s must be a valid URL",
	"http_url":  "%s must be a valid http or https URL",
	"lowercase": "%s must be lowercase",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
}

func translateError(fe validator.FieldError, field string) string {
	if tmpl, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
