package query

import (
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/log"
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
)

// Engine parses filter expressions and evaluates them over a registry.
// Each engine owns its regex guard and cache, so independent instances
// (one per invocation, one per test) never share state.
type Engine struct {
	guard         *Guard
	caseSensitive bool
}

// NewEngine creates an engine. caseSensitive applies to every filter the
// engine parses and to sort comparisons made through it.
func NewEngine(caseSensitive bool) *Engine {
	return &Engine{
		guard:         NewGuard(),
		caseSensitive: caseSensitive,
	}
}

// CaseSensitive reports the engine's case rule.
func (e *Engine) CaseSensitive() bool {
	return e.caseSensitive
}

// Select evaluates the chain over every record in registry order and
// returns the matching identifiers. Unless includeDisabled is set, records
// whose enabled or available attribute coerces to zero are skipped before
// the chain runs. A nil chain matches everything.
func (e *Engine) Select(reg *registry.Registry, chain *Chain, includeDisabled bool) []string {
	matched := make([]string, 0, reg.Len())
	for _, id := range reg.IDs() {
		rec, ok := reg.Get(id)
		if !ok {
			continue
		}
		if !includeDisabled && isDisabled(rec) {
			continue
		}
		if chain == nil || chain.Matches(rec) {
			matched = append(matched, id)
		}
	}

	log.Debug(log.CatQuery, "selection complete",
		"records", reg.Len(),
		"matched", len(matched),
		"include_disabled", includeDisabled)
	return matched
}

// isDisabled reports whether a record is excluded by default: its enabled
// or available attribute is present and coerces to zero. Records without
// those attributes (agents, arbitrary registries) are never gated.
func isDisabled(rec *registry.Record) bool {
	for _, field := range [...]string{"enabled", "available"} {
		v, found := rec.Lookup(field)
		if !found {
			continue
		}
		if f, ok := coerceFloat(v); ok && f == 0 {
			return true
		}
	}
	return false
}
