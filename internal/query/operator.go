// Package query implements the filter expression language: parsing,
// validation, predicate evaluation, chain combination, sorting, and
// statistics over registry records.
package query

import "strings"

// Operator identifies a filter predicate.
type Operator int

const (
	// String operators
	OpEquals Operator = iota
	OpNotEquals
	OpContains
	OpNotContains
	OpStartsWith
	OpEndsWith
	OpRegex
	OpIn
	OpNotIn

	// Presence operators (no value)
	OpExists
	OpNotExists

	// Numeric operators
	OpGT
	OpGTE
	OpLT
	OpLTE
	OpBetween
)

// String returns the canonical operator tag.
func (op Operator) String() string {
	switch op {
	case OpEquals:
		return "equals"
	case OpNotEquals:
		return "not_equals"
	case OpContains:
		return "contains"
	case OpNotContains:
		return "not_contains"
	case OpStartsWith:
		return "starts_with"
	case OpEndsWith:
		return "ends_with"
	case OpRegex:
		return "regex"
	case OpIn:
		return "in"
	case OpNotIn:
		return "not_in"
	case OpExists:
		return "exists"
	case OpNotExists:
		return "not_exists"
	case OpGT:
		return ">"
	case OpGTE:
		return ">="
	case OpLT:
		return "<"
	case OpLTE:
		return "<="
	case OpBetween:
		return "between"
	default:
		return "unknown"
	}
}

// operators maps every accepted operator spelling to its canonical tag.
var operators = map[string]Operator{
	"equals":       OpEquals,
	"=":            OpEquals,
	"==":           OpEquals,
	"eq":           OpEquals,
	"not_equals":   OpNotEquals,
	"!=":           OpNotEquals,
	"<>":           OpNotEquals,
	"ne":           OpNotEquals,
	"contains":     OpContains,
	"~":            OpContains,
	"not_contains": OpNotContains,
	"!~":           OpNotContains,
	"starts_with":  OpStartsWith,
	"^":            OpStartsWith,
	"prefix":       OpStartsWith,
	"ends_with":    OpEndsWith,
	"$":            OpEndsWith,
	"suffix":       OpEndsWith,
	"regex":        OpRegex,
	"matches":      OpRegex,
	"re":           OpRegex,
	"in":           OpIn,
	"not_in":       OpNotIn,
	"notin":        OpNotIn,
	"exists":       OpExists,
	"not_exists":   OpNotExists,
	"missing":      OpNotExists,
	">":            OpGT,
	"gt":           OpGT,
	">=":           OpGTE,
	"gte":          OpGTE,
	"<":            OpLT,
	"lt":           OpLT,
	"<=":           OpLTE,
	"lte":          OpLTE,
	"between":      OpBetween,
	"range":        OpBetween,
}

// LookupOperator resolves an operator token to its canonical tag.
// Word-form tokens are matched case-insensitively.
func LookupOperator(token string) (Operator, bool) {
	op, ok := operators[strings.ToLower(token)]
	return op, ok
}

// NeedsValue reports whether the operator takes a comparison operand.
func (op Operator) NeedsValue() bool {
	return op != OpExists && op != OpNotExists
}

// IsNumeric reports whether the operator compares numerically and is
// subject to the silent non-match rule on coercion failure.
func (op Operator) IsNumeric() bool {
	switch op {
	case OpGT, OpGTE, OpLT, OpLTE, OpBetween:
		return true
	}
	return false
}

// MatchesMissing reports whether a record lacking the field satisfies the
// operator. Only not_exists, not_equals, and not_in match an absent field.
func (op Operator) MatchesMissing() bool {
	switch op {
	case OpNotExists, OpNotEquals, OpNotIn:
		return true
	}
	return false
}
