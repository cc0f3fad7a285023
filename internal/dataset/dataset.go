// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

// Package dataset holds the immutable animal media catalog.
//
// A Dataset is built once at startup (Load, LoadEmbedded or Parse) and then
// shared read-only by every request handler. Nothing in this package mutates
// a Dataset after construction, and accessors hand out copies of the media
// slices, so concurrent readers need no locking.
package dataset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tomtom215/animalapi/internal/validation"
)

// ErrInvalidDataset is wrapped by every error caused by the content of the
// source document (as opposed to I/O errors such as a missing file).
var ErrInvalidDataset = errors.New("invalid animal dataset")

// MediaKind selects which media sequences a random pick draws from.
type MediaKind string

const (
	// MediaAny draws from images and GIFs combined.
	MediaAny MediaKind = "any"
	// MediaImage draws from images only.
	MediaImage MediaKind = "image"
	// MediaGIF draws from GIFs only.
	MediaGIF MediaKind = "gif"
)

// Entry is one animal type.
type Entry struct {
	Key    string
	Name   string
	Images []string
	GIFs   []string
}

// TotalCount is len(Images) + len(GIFs).
func (e Entry) TotalCount() int {
	return len(e.Images) + len(e.GIFs)
}

// Candidates returns the URLs a random pick of the given kind chooses from.
// For MediaAny images come first, then GIFs.
func (e Entry) Candidates(kind MediaKind) []string {
	switch kind {
	case MediaImage:
		return e.Images
	case MediaGIF:
		return e.GIFs
	default:
		out := make([]string, 0, e.TotalCount())
		out = append(out, e.Images...)
		return append(out, e.GIFs...)
	}
}

// clone returns a copy whose slices do not alias the receiver's. Slices are
// never nil so they encode as [] rather than null.
func (e Entry) clone() Entry {
	e.Images = cloneNonNil(e.Images)
	e.GIFs = cloneNonNil(e.GIFs)
	return e
}

func cloneNonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

// Dataset maps lowercase animal keys to entries, remembering the order in
// which keys appeared in the source.
type Dataset struct {
	keys    []string
	entries map[string]Entry
}

// New builds a Dataset from entries in the given order. Each entry must have
// a unique, lowercase key and a display name; media URLs must be absolute
// http(s) URLs. No entries yields an empty, valid Dataset.
func New(entries ...Entry) (*Dataset, error) {
	ds := &Dataset{
		keys:    make([]string, 0, len(entries)),
		entries: make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		if err := validation.ValidateVar("key", e.Key, "required,lowercase"); err != nil {
			return nil, fmt.Errorf("%w: animal %q: %w", ErrInvalidDataset, e.Key, err)
		}
		if _, dup := ds.entries[e.Key]; dup {
			return nil, fmt.Errorf("%w: animal %q is defined more than once", ErrInvalidDataset, e.Key)
		}
		if err := validation.ValidateStruct(sourceEntry{Name: e.Name, Images: nonNil(e.Images), GIFs: nonNil(e.GIFs)}); err != nil {
			return nil, fmt.Errorf("%w: animal %q: %w", ErrInvalidDataset, e.Key, err)
		}

		ds.keys = append(ds.keys, e.Key)
		ds.entries[e.Key] = e.clone()
	}
	return ds, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Len returns the number of animals.
func (d *Dataset) Len() int {
	return len(d.keys)
}

// Keys returns the animal keys in source order.
func (d *Dataset) Keys() []string {
	return slices.Clone(d.keys)
}

// Lookup returns the entry for key. The key is matched exactly; callers
// normalize user input first.
func (d *Dataset) Lookup(key string) (Entry, bool) {
	e, ok := d.entries[key]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// Entries returns every entry in source order.
func (d *Dataset) Entries() []Entry {
	out := make([]Entry, len(d.keys))
	for i, k := range d.keys {
		out[i] = d.entries[k].clone()
	}
	return out
}

// MediaCounts returns the total number of images and GIFs across all animals.
func (d *Dataset) MediaCounts() (images, gifs int) {
	for _, e := range d.entries {
		images += len(e.Images)
		gifs += len(e.GIFs)
	}
	return images, gifs
}
