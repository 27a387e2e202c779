package presentation

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
)

// View is the render-ready projection of a selection: the chosen records in
// selection order plus the options shared by every formatter.
type View struct {
	Records  []*registry.Record
	Columns  []string // explicit column subset; empty derives the default
	NoHeader bool
	GroupBy  string // grouping field for the tree formatter
}

// NewView collects the records for the given identifiers in order.
func NewView(reg *registry.Registry, ids []string) *View {
	records := make([]*registry.Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := reg.Get(id); ok {
			records = append(records, rec)
		}
	}
	return &View{Records: records}
}

// columnSet returns the explicit columns, or derives the default: id first,
// then attribute keys in first-seen order across the records, nested
// mappings flattened to dotted keys.
func (v *View) columnSet() []string {
	if len(v.Columns) > 0 {
		return v.Columns
	}
	cols := []string{"id"}
	seen := map[string]bool{"id": true}
	for _, rec := range v.Records {
		for _, key := range rec.FlatKeys() {
			if !seen[key] {
				seen[key] = true
				cols = append(cols, key)
			}
		}
	}
	return cols
}

// cell renders one column of one record. The id column always reads the
// record identifier; any other column is a dotted-path lookup, empty when
// the record lacks the field.
func (v *View) cell(rec *registry.Record, col string) string {
	if col == "id" {
		return rec.ID()
	}
	value, found := rec.Lookup(col)
	if !found {
		return ""
	}
	return renderValue(value)
}

// renderValue gives a value its single-cell string form. Nested values
// render as compact JSON.
func renderValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
