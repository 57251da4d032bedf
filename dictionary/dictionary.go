// Package dictionary loads per-locale translation dictionaries from a
// directory into an ordered, filterable set of nested key-value maps.
package dictionary

import (
	"sort"
	"strings"
)

// Dictionary is one locale's translations: a nested mapping from dotted-key
// segments to strings. Each segment of a dotted key path is one level of
// nesting; leaves are translated strings. Immutable once loaded.
type Dictionary struct {
	ID      string // Locale identifier, derived from the file base name (e.g. "de_DE", "pt-BR")
	Entries map[string]any
}

// Resolve descends Entries one segment of the dotted path at a time.
// It returns the leaf string and true only if every intermediate segment
// resolves to a nested map and the final segment resolves to a string.
func (d *Dictionary) Resolve(path string) (string, bool) {
	if d == nil || path == "" {
		return "", false
	}

	current := d.Entries
	segments := strings.Split(path, ".")

	for i, seg := range segments {
		value, ok := current[seg]
		if !ok {
			return "", false
		}

		if i == len(segments)-1 {
			leaf, ok := value.(string)
			return leaf, ok
		}

		nested, ok := value.(map[string]any)
		if !ok {
			// A leaf where a nested map was expected.
			return "", false
		}
		current = nested
	}

	return "", false
}

// Flatten returns all entries as a flat map from dotted key path to value.
func (d *Dictionary) Flatten() map[string]string {
	flat := make(map[string]string)
	flatten("", d.Entries, flat)
	return flat
}

func flatten(prefix string, entries map[string]any, out map[string]string) {
	for key, value := range entries {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[path] = v
		case map[string]any:
			flatten(path, v, out)
		}
	}
}

// Keys returns all dotted key paths in ascending order.
func (d *Dictionary) Keys() []string {
	flat := d.Flatten()
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FromFlat builds a dictionary from a flat dotted-path map, composing each
// dotted key into nested levels.
func FromFlat(id string, flat map[string]string) *Dictionary {
	d := &Dictionary{ID: id, Entries: make(map[string]any)}
	for path, value := range flat {
		insert(d.Entries, path, value)
	}
	return d
}

// insert places value at the dotted path, creating intermediate maps.
// A leaf that collides with an intermediate level is replaced by a map.
func insert(entries map[string]any, path, value string) {
	segments := strings.Split(path, ".")
	current := entries

	for _, seg := range segments[:len(segments)-1] {
		nested, ok := current[seg].(map[string]any)
		if !ok {
			nested = make(map[string]any)
			current[seg] = nested
		}
		current = nested
	}
	current[segments[len(segments)-1]] = value
}

// Set is the ordered collection of all active locale dictionaries for one
// pipeline run, sorted ascending by ID. It is built once by Load and never
// mutated afterwards.
type Set []*Dictionary

// IDs returns the locale identifiers in set order.
func (s Set) IDs() []string {
	ids := make([]string, len(s))
	for i, d := range s {
		ids[i] = d.ID
	}
	return ids
}

// Get returns the dictionary with the given id, or nil.
func (s Set) Get(id string) *Dictionary {
	for _, d := range s {
		if d.ID == id {
			return d
		}
	}
	return nil
}
