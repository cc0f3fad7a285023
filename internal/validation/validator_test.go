// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package validation

import (
	"errors"
	"strings"
	"testing"
)

type mediaDoc struct {
	Name   string   `json:"name" validate:"required"`
	Images []string `json:"images" validate:"required,dive,required,http_url"`
	Kind   string   `json:"kind,omitempty" validate:"omitempty,oneof=image gif"`
	Count  int      `validate:"min=0,max=10"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       mediaDoc
		wantField string
		wantMsg   string
	}{
		{
			name: "valid",
			doc:  mediaDoc{Name: "Dog", Images: []string{"https://images.example/dog.jpg"}},
		},
		{
			name: "empty images slice is allowed",
			doc:  mediaDoc{Name: "Dog", Images: []string{}},
		},
		{
			name:      "missing name",
			doc:       mediaDoc{Images: []string{}},
			wantField: "name",
			wantMsg:   "name is required",
		},
		{
			name:      "nil images",
			doc:       mediaDoc{Name: "Dog"},
			wantField: "images",
			wantMsg:   "images is required",
		},
		{
			name:      "non-http url",
			doc:       mediaDoc{Name: "Dog", Images: []string{"https://ok.example/a.png", "ftp://files.example/b.png"}},
			wantField: "images[1]",
			wantMsg:   "images[1] must be a valid http or https URL",
		},
		{
			name:      "oneof with param",
			doc:       mediaDoc{Name: "Dog", Images: []string{}, Kind: "video"},
			wantField: "kind",
			wantMsg:   "kind must be one of: image gif",
		},
		{
			name:      "untagged field uses Go name",
			doc:       mediaDoc{Name: "Dog", Images: []string{}, Count: 11},
			wantField: "Count",
			wantMsg:   "Count must be at most 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.doc)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() expected an error")
			}

			var ve *RequestValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *RequestValidationError, got %T", err)
			}
			if len(ve.Errors()) != 1 {
				t.Fatalf("expected exactly one failure, got %d: %v", len(ve.Errors()), err)
			}
			got := ve.Errors()[0]
			if got.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", got.Field(), tt.wantField)
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&mediaDoc{})
	if err == nil {
		t.Fatal("expected errors for empty document")
	}
	msg := err.Error()
	if !strings.Contains(msg, "name is required") || !strings.Contains(msg, "images is required") {
		t.Errorf("expected both failures joined, got %q", msg)
	}
	if !strings.Contains(msg, "; ") {
		t.Errorf("expected failures joined with '; ', got %q", msg)
	}
}

func TestValidateVar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		wantErr string
	}{
		{"dog", ""},
		{"red-panda", ""},
		{"", "key is required"},
		{"Dog", "key must be lowercase"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			err := ValidateVar("key", tt.value, "required,lowercase")
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateVar(%q) unexpected error: %v", tt.value, err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("ValidateVar(%q) = %v, want %q", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	ve := &RequestValidationError{}
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q, want 'validation failed'", ve.Error())
	}
}
