// Package testutil provides builders for constructing registry fixtures in
// tests.
package testutil

import "github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"

// Builder accumulates record data and assembles a registry in insertion
// order.
type Builder struct {
	records []recordData
}

// NewBuilder creates an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithModel adds a model record with lint-clean defaults.
func (b *Builder) WithModel(id string, opts ...RecordOption) *Builder {
	rec := defaultModel(id)
	for _, opt := range opts {
		opt(&rec)
	}
	b.records = append(b.records, rec)
	return b
}

// WithAgent adds an agent record with defaults.
func (b *Builder) WithAgent(id string, opts ...RecordOption) *Builder {
	rec := defaultAgent(id)
	for _, opt := range opts {
		opt(&rec)
	}
	b.records = append(b.records, rec)
	return b
}

// WithRecord adds a record carrying only the attributes given by options.
func (b *Builder) WithRecord(id string, opts ...RecordOption) *Builder {
	rec := recordData{id: id}
	for _, opt := range opts {
		opt(&rec)
	}
	b.records = append(b.records, rec)
	return b
}

// Build assembles the accumulated records into a registry.
func (b *Builder) Build() *registry.Registry {
	reg := registry.NewRegistry()
	for _, rd := range b.records {
		rec := registry.NewRecord(rd.id)
		for _, a := range rd.attrs {
			rec.Set(a.key, a.value)
		}
		reg.Add(rec)
	}
	return reg
}
