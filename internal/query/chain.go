package query

import "github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"

// Mode selects how a chain combines its members.
type Mode int

const (
	// ModeAll matches when every member matches (AND).
	ModeAll Mode = iota
	// ModeAny matches when at least one member matches (OR).
	ModeAny
)

func (m Mode) String() string {
	if m == ModeAny {
		return "any"
	}
	return "all"
}

// Chain combines filters and nested chains under one combinator with an
// optional negation of the final result. Evaluating a chain is a pure
// function of the chain and one record.
type Chain struct {
	Filters  []Filter
	Children []*Chain
	Mode     Mode
	Negate   bool
}

// Matches evaluates the chain against one record. Negation inverts the
// chain's final result only, so double negation is the identity. An empty
// chain matches every record under either mode.
func (c *Chain) Matches(rec *registry.Record) bool {
	result := c.combine(rec)
	if c.Negate {
		return !result
	}
	return result
}

func (c *Chain) combine(rec *registry.Record) bool {
	if len(c.Filters) == 0 && len(c.Children) == 0 {
		return true
	}

	if c.Mode == ModeAny {
		for i := range c.Filters {
			if c.Filters[i].Matches(rec) {
				return true
			}
		}
		for _, child := range c.Children {
			if child.Matches(rec) {
				return true
			}
		}
		return false
	}

	for i := range c.Filters {
		if !c.Filters[i].Matches(rec) {
			return false
		}
	}
	for _, child := range c.Children {
		if !child.Matches(rec) {
			return false
		}
	}
	return true
}
