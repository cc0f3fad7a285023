// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/animalapi/internal/validation"
)

// embeddedAnimals is the dataset shipped inside the binary.
//
//go:embed data/animals.json
var embeddedAnimals []byte

// EmbeddedSource names the embedded dataset in logs.
const EmbeddedSource = "embedded:data/animals.json"

// sourceEntry is the on-disk shape of one animal. Arrays are required to be
// present (possibly empty); null is rejected.
type sourceEntry struct {
	Name   string   `json:"name" validate:"required"`
	Images []string `json:"images" validate:"required,dive,required,http_url"`
	GIFs   []string `json:"gifs" validate:"required,dive,required,http_url"`
}

// Load reads and validates the dataset at path. A missing file yields an
// error wrapping fs.ErrNotExist; bad content wraps ErrInvalidDataset.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// LoadEmbedded parses the dataset compiled into the binary.
func LoadEmbedded() (*Dataset, error) {
	return Parse(bytes.NewReader(embeddedAnimals))
}

// LoadFrom loads path, or the embedded dataset when path is empty. It returns
// the source description for logging.
func LoadFrom(path string) (*Dataset, string, error) {
	if path == "" {
		ds, err := LoadEmbedded()
		return ds, EmbeddedSource, err
	}
	ds, err := Load(path)
	return ds, path, err
}

// Parse decodes a dataset document: a JSON object whose members map animal
// keys to entries. Member order is preserved.
func Parse(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected animal key, got %v", ErrInvalidDataset, tok)
		}

		var src sourceEntry
		if err := dec.Decode(&src); err != nil {
			return nil, fmt.Errorf("%w: animal %q: %w", ErrInvalidDataset, key, err)
		}
		if err := validation.ValidateStruct(&src); err != nil {
			return nil, fmt.Errorf("%w: animal %q: %w", ErrInvalidDataset, key, err)
		}

		entries = append(entries, Entry{Key: key, Name: src.Name, Images: src.Images, GIFs: src.GIFs})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the top-level object", ErrInvalidDataset)
	}

	return New(entries...)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return malformed(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		if want == '{' {
			return fmt.Errorf("%w: top level must be a JSON object", ErrInvalidDataset)
		}
		return fmt.Errorf("%w: expected %q, got %v", ErrInvalidDataset, want, tok)
	}
	return nil
}

func malformed(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected end of document", ErrInvalidDataset)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
}
