// Package registry loads model and agent registries from JSON or YAML files
// into an ordered, read-only collection of records. File order is preserved
// because downstream sorting uses it to break ties.
package registry

import (
	"sort"
	"strings"
)

// Record is a single registry entry: a unique identifier plus an attribute
// mapping. Attribute values are strings, numbers, booleans, or nested
// mappings. Records are not mutated after loading.
type Record struct {
	id    string
	attrs map[string]any
	keys  []string // top-level attribute keys in file order
}

// NewRecord creates an empty record with the given identifier.
func NewRecord(id string) *Record {
	return &Record{
		id:    id,
		attrs: make(map[string]any),
	}
}

// Set adds or replaces an attribute. First insertion fixes the key's
// position. Returns the record for chaining during construction.
func (r *Record) Set(key string, value any) *Record {
	if _, exists := r.attrs[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.attrs[key] = value
	return r
}

// ID returns the record identifier.
func (r *Record) ID() string {
	return r.id
}

// Keys returns the top-level attribute keys in file order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Attr returns a top-level attribute value.
func (r *Record) Attr(key string) (any, bool) {
	v, ok := r.attrs[key]
	return v, ok
}

// Lookup resolves a dotted attribute path, descending into nested mappings
// segment by segment. The path "id" falls back to the record identifier when
// no attribute shadows it.
func (r *Record) Lookup(path string) (any, bool) {
	segments := strings.Split(path, ".")

	var current any = r.attrs
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			if path == "id" {
				return r.id, true
			}
			return nil, false
		}
	}
	return current, true
}

// FlatKeys returns all attribute paths with nested mappings expanded to
// dotted keys. Top-level keys keep file order; keys inside nested mappings
// are sorted so the expansion stays deterministic.
func (r *Record) FlatKeys() []string {
	var out []string
	for _, key := range r.keys {
		out = appendFlatKeys(out, key, r.attrs[key])
	}
	return out
}

func appendFlatKeys(out []string, prefix string, value any) []string {
	nested, ok := value.(map[string]any)
	if !ok {
		return append(out, prefix)
	}

	subkeys := make([]string, 0, len(nested))
	for k := range nested {
		subkeys = append(subkeys, k)
	}
	sort.Strings(subkeys)

	for _, k := range subkeys {
		out = appendFlatKeys(out, prefix+"."+k, nested[k])
	}
	return out
}
