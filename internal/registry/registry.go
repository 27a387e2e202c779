package registry

// Registry is an ordered collection of records keyed by identifier.
// Iteration order is the order records appeared in the source file.
type Registry struct {
	ids     []string
	records map[string]*Record
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		records: make(map[string]*Record),
	}
}

// Add inserts a record. A duplicate identifier replaces the earlier record
// in place, keeping its original position (mapping semantics of the source
// formats).
func (r *Registry) Add(rec *Record) {
	if _, exists := r.records[rec.ID()]; !exists {
		r.ids = append(r.ids, rec.ID())
	}
	r.records[rec.ID()] = rec
}

// Get returns the record with the given identifier.
func (r *Registry) Get(id string) (*Record, bool) {
	rec, ok := r.records[id]
	return rec, ok
}

// IDs returns all record identifiers in registry order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.ids)
}
