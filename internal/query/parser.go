package query

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/log"
)

// Filter is a single typed predicate over one field path. Filters are
// constructed by the engine's parser and not mutated afterward.
type Filter struct {
	Field         string
	Op            Operator
	Value         string
	CaseSensitive bool
	Negate        bool

	segments []string
	set      []string
	low      float64
	high     float64
	re       *regexp.Regexp
}

// ParseFilters parses and validates every expression before any record can
// be evaluated. One bad expression fails the whole set.
func (e *Engine) ParseFilters(ctx context.Context, exprs []string) ([]Filter, error) {
	filters := make([]Filter, 0, len(exprs))
	for _, expr := range exprs {
		f, err := e.ParseFilter(ctx, expr)
		if err != nil {
			log.ErrorErr(log.CatQuery, "filter rejected", err, "expr", expr)
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// ParseFilter parses one expression: canonical field:operator:value, the
// two-part field:operator form for value-less operators, or the field=value
// equality shorthand. The split stops after the second colon so values keep
// embedded colons.
func (e *Engine) ParseFilter(ctx context.Context, expr string) (Filter, error) {
	log.Debug(log.CatQuery, "parsing filter", "expr", expr)

	field, opToken, value, hasValue, err := splitExpr(expr)
	if err != nil {
		return Filter{}, err
	}

	// Path grammar first; a bad path aborts before operator or value
	// handling.
	segments, err := ValidateFieldPath(field)
	if err != nil {
		return Filter{}, err
	}

	op, ok := LookupOperator(opToken)
	if !ok {
		return Filter{}, &UnknownOperatorError{Expr: expr, Token: opToken}
	}

	f := Filter{
		Field:         field,
		Op:            op,
		Value:         value,
		CaseSensitive: e.caseSensitive,
		segments:      segments,
	}

	if !op.NeedsValue() {
		if hasValue {
			return Filter{}, &SyntaxError{Expr: expr, Reason: "operator " + op.String() + " takes no value"}
		}
		return f, nil
	}
	if !hasValue {
		return Filter{}, &SyntaxError{Expr: expr, Reason: "operator " + op.String() + " requires a value"}
	}

	switch op {
	case OpIn, OpNotIn:
		f.set = splitSet(value)
		if len(f.set) == 0 {
			return Filter{}, &SyntaxError{Expr: expr, Reason: "operator " + op.String() + " requires at least one value"}
		}

	case OpBetween:
		low, high, ok := parseRange(value)
		if !ok {
			return Filter{}, &SyntaxError{Expr: expr, Reason: "between requires a numeric range like 100-200"}
		}
		if low > high {
			return Filter{}, &SyntaxError{Expr: expr, Reason: "between range low exceeds high"}
		}
		f.low, f.high = low, high

	case OpRegex:
		re, err := e.guard.Compile(ctx, value, e.caseSensitive)
		if err != nil {
			return Filter{}, err
		}
		f.re = re
	}

	return f, nil
}

// splitExpr breaks an expression into field, operator token, and value.
// The equality shorthand applies when '=' appears before any ':'.
func splitExpr(expr string) (field, opToken, value string, hasValue bool, err error) {
	eqIdx := strings.IndexByte(expr, '=')
	colonIdx := strings.IndexByte(expr, ':')

	if eqIdx >= 0 && (colonIdx < 0 || eqIdx < colonIdx) {
		return expr[:eqIdx], "=", expr[eqIdx+1:], true, nil
	}

	parts := strings.SplitN(expr, ":", 3)
	switch len(parts) {
	case 3:
		return parts[0], parts[1], parts[2], true, nil
	case 2:
		return parts[0], parts[1], "", false, nil
	default:
		return "", "", "", false, &SyntaxError{Expr: expr, Reason: "expected field:operator:value or field=value"}
	}
}

// splitSet splits a comma-separated value list, trimming whitespace and
// dropping empty members so trailing commas are tolerated.
func splitSet(value string) []string {
	var out []string
	for _, member := range strings.Split(value, ",") {
		member = strings.TrimSpace(member)
		if member != "" {
			out = append(out, member)
		}
	}
	return out
}

// parseRange parses an inclusive low-high numeric range. The separator is
// the first '-' that yields two parseable numbers, so negative bounds and
// exponent notation still work.
func parseRange(s string) (float64, float64, bool) {
	for i := 1; i < len(s); i++ {
		if s[i] != '-' {
			continue
		}
		low, errLow := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
		high, errHigh := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
		if errLow == nil && errHigh == nil {
			return low, high, true
		}
	}
	return 0, 0, false
}
