package query

import (
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/log"
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
)

// MissingBucket labels the count-by group for records without the field.
const MissingBucket = "(missing)"

// Bucket is one group in a count-by breakdown.
type Bucket struct {
	Value string
	Count int
}

// Summary holds whole-set aggregate counts.
type Summary struct {
	Loaded  int
	Matched int
}

// CountBy groups the given records by a field's string value. Buckets
// appear in first-seen order; records without the field (or with a value
// that has no string form) collect into a single missing bucket appended
// last.
func CountBy(reg *registry.Registry, ids []string, field string) []Bucket {
	counts := make(map[string]int)
	var order []string
	missing := 0

	for _, id := range ids {
		rec, ok := reg.Get(id)
		if !ok {
			continue
		}
		v, found := rec.Lookup(field)
		if !found {
			missing++
			continue
		}
		s, ok := coerceString(v)
		if !ok {
			missing++
			continue
		}
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}

	buckets := make([]Bucket, 0, len(order)+1)
	for _, value := range order {
		buckets = append(buckets, Bucket{Value: value, Count: counts[value]})
	}
	if missing > 0 {
		buckets = append(buckets, Bucket{Value: MissingBucket, Count: missing})
	}

	log.Debug(log.CatStats, "count-by complete", "field", field, "buckets", len(buckets))
	return buckets
}

// Unique returns the distinct string values of a field across the given
// records in first-seen order. Records without the field contribute
// nothing.
func Unique(reg *registry.Registry, ids []string, field string) []string {
	seen := make(map[string]bool)
	var out []string

	for _, id := range ids {
		rec, ok := reg.Get(id)
		if !ok {
			continue
		}
		v, found := rec.Lookup(field)
		if !found {
			continue
		}
		s, ok := coerceString(v)
		if !ok {
			continue
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	log.Debug(log.CatStats, "unique complete", "field", field, "values", len(out))
	return out
}
