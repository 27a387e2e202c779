package query

import (
	"strings"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
)

// Matches evaluates the filter against one record. Evaluation is a pure
// function of the filter and the record.
//
// A missing field satisfies only not_exists, not_equals, and not_in. A
// numeric operator never matches when either side fails numeric coercion;
// evaluation has no error path.
func (f *Filter) Matches(rec *registry.Record) bool {
	m := f.eval(rec)
	if f.Negate {
		return !m
	}
	return m
}

func (f *Filter) eval(rec *registry.Record) bool {
	value, found := rec.Lookup(f.Field)
	if !found {
		return f.Op.MatchesMissing()
	}

	switch f.Op {
	case OpExists:
		return true
	case OpNotExists:
		return false

	case OpEquals:
		return f.equal(value)
	case OpNotEquals:
		return !f.equal(value)

	case OpContains:
		return f.strPredicate(value, strings.Contains)
	case OpNotContains:
		return !f.strPredicate(value, strings.Contains)
	case OpStartsWith:
		return f.strPredicate(value, strings.HasPrefix)
	case OpEndsWith:
		return f.strPredicate(value, strings.HasSuffix)

	case OpRegex:
		s, ok := coerceString(value)
		if !ok {
			return false
		}
		return f.re.MatchString(s)

	case OpIn:
		return f.inSet(value)
	case OpNotIn:
		return !f.inSet(value)

	case OpGT, OpGTE, OpLT, OpLTE, OpBetween:
		return f.numeric(value)
	}
	return false
}

// equal compares numerically when both sides coerce to numbers, otherwise
// by string under the filter's case rule. Exactly one of equals/not_equals
// holds for any present value.
func (f *Filter) equal(value any) bool {
	if vf, ok := coerceFloat(value); ok {
		if of, ok := coerceFloat(f.Value); ok {
			return vf == of
		}
	}
	s, ok := coerceString(value)
	if !ok {
		return false
	}
	return f.strEqual(s, f.Value)
}

func (f *Filter) strEqual(a, b string) bool {
	if f.CaseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func (f *Filter) strPredicate(value any, pred func(s, operand string) bool) bool {
	s, ok := coerceString(value)
	if !ok {
		return false
	}
	if f.CaseSensitive {
		return pred(s, f.Value)
	}
	return pred(strings.ToLower(s), strings.ToLower(f.Value))
}

func (f *Filter) inSet(value any) bool {
	s, ok := coerceString(value)
	if !ok {
		return false
	}
	for _, member := range f.set {
		if f.strEqual(s, member) {
			return true
		}
	}
	return false
}

func (f *Filter) numeric(value any) bool {
	vf, ok := coerceFloat(value)
	if !ok {
		return false
	}

	if f.Op == OpBetween {
		return vf >= f.low && vf <= f.high
	}

	of, ok := coerceFloat(f.Value)
	if !ok {
		return false
	}

	switch f.Op {
	case OpGT:
		return vf > of
	case OpGTE:
		return vf >= of
	case OpLT:
		return vf < of
	case OpLTE:
		return vf <= of
	}
	return false
}
