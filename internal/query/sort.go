package query

import (
	"sort"
	"strings"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/log"
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
)

// SortKey is an ordered list of field names plus a single reverse flag
// applied to the whole ordering, not per field.
type SortKey struct {
	Fields  []string
	Reverse bool
}

// SortIDs stable-sorts the identifier slice in place; the registry itself
// is never copied or reordered. Records compare field by field: numeric
// when both values coerce to numbers, otherwise lexicographic under the
// engine's case rule. Missing values compare greater than any present
// value. Reverse inverts each comparison, so full ties keep insertion
// order either way.
func (e *Engine) SortIDs(reg *registry.Registry, ids []string, key SortKey) {
	if len(key.Fields) == 0 {
		return
	}

	sort.SliceStable(ids, func(i, j int) bool {
		ri, iok := reg.Get(ids[i])
		rj, jok := reg.Get(ids[j])
		if !iok || !jok {
			return false
		}
		for _, field := range key.Fields {
			av, afound := ri.Lookup(field)
			bv, bfound := rj.Lookup(field)
			cmp := e.compareField(av, afound, bv, bfound)
			if cmp == 0 {
				continue
			}
			if key.Reverse {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})

	log.Debug(log.CatSort, "sorted",
		"fields", strings.Join(key.Fields, ","),
		"reverse", key.Reverse,
		"count", len(ids))
}

func (e *Engine) compareField(av any, afound bool, bv any, bfound bool) int {
	if !afound || !bfound {
		switch {
		case afound:
			return -1
		case bfound:
			return 1
		default:
			return 0
		}
	}

	af, aok := coerceFloat(av)
	bf, bok := coerceFloat(bv)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as, aok := coerceString(av)
	bs, bok := coerceString(bv)
	if !aok || !bok {
		// Values with no string form (nulls, nested mappings) sort after
		// everything comparable.
		switch {
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	}

	if !e.caseSensitive {
		as, bs = strings.ToLower(as), strings.ToLower(bs)
	}
	return strings.Compare(as, bs)
}
