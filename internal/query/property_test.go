package query

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/testutil"
)

var nameDomain = []string{"alpha", "Beta", "gamma", "DELTA", "10", "2.5", ""}

// drawRegistry builds a registry of records with optional rank and name
// attributes. IDs encode the insertion index.
func drawRegistry(rt *rapid.T) *registry.Registry {
	b := testutil.NewBuilder()
	n := rapid.IntRange(0, 12).Draw(rt, "records")
	for i := 0; i < n; i++ {
		var opts []testutil.RecordOption
		if rapid.Bool().Draw(rt, "hasRank") {
			opts = append(opts, testutil.Attr("rank", int64(rapid.IntRange(-5, 20).Draw(rt, "rank"))))
		}
		if rapid.Bool().Draw(rt, "hasName") {
			opts = append(opts, testutil.Attr("name", rapid.SampledFrom(nameDomain).Draw(rt, "name")))
		}
		b.WithRecord(fmt.Sprintf("rec-%02d", i), opts...)
	}
	return b.Build()
}

// drawExpr produces a syntactically valid filter expression over the
// drawRegistry attribute domain.
func drawExpr(rt *rapid.T) string {
	if rapid.Bool().Draw(rt, "numericField") {
		op := rapid.SampledFrom([]string{">", ">=", "<", "<=", "equals", "not_equals"}).Draw(rt, "op")
		return fmt.Sprintf("rank:%s:%d", op, rapid.IntRange(-5, 20).Draw(rt, "operand"))
	}

	op := rapid.SampledFrom([]string{"equals", "not_equals", "contains", "starts_with", "ends_with", "exists", "not_exists", "in"}).Draw(rt, "op")
	switch op {
	case "exists", "not_exists":
		return "name:" + op
	case "in":
		members := rapid.SliceOfN(rapid.SampledFrom([]string{"alpha", "Beta", "gamma"}), 1, 3).Draw(rt, "members")
		return "name:in:" + strings.Join(members, ",")
	default:
		return fmt.Sprintf("name:%s:%s", op, rapid.SampledFrom(nameDomain).Draw(rt, "operand"))
	}
}

// Selection over the same inputs always returns the same identifiers.
func TestProperty_SelectionDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := drawRegistry(rt)
		e := NewEngine(rapid.Bool().Draw(rt, "caseSensitive"))

		filters, err := e.ParseFilters(context.Background(), []string{drawExpr(rt)})
		require.NoError(t, err)
		chain := &Chain{Filters: filters}

		first := e.Select(reg, chain, true)
		second := e.Select(reg, chain, true)
		require.Equal(t, first, second)
	})
}

// Selection returns a subsequence of the registry's identifier order.
func TestProperty_SelectionPreservesRegistryOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := drawRegistry(rt)
		e := NewEngine(false)

		filters, err := e.ParseFilters(context.Background(), []string{drawExpr(rt)})
		require.NoError(t, err)

		ids := e.Select(reg, &Chain{Filters: filters}, true)

		all := reg.IDs()
		pos := make(map[string]int, len(all))
		for i, id := range all {
			pos[id] = i
		}
		prev := -1
		for _, id := range ids {
			p, ok := pos[id]
			require.True(t, ok, "selected id %q must come from the registry", id)
			require.Greater(t, p, prev, "selection must preserve registry order")
			prev = p
		}
	})
}

// A chain in all mode matches exactly when every member matches; in any
// mode exactly when at least one does.
func TestProperty_ChainModeSemantics(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := drawRegistry(rt)
		e := NewEngine(false)

		filters, err := e.ParseFilters(context.Background(), []string{drawExpr(rt), drawExpr(rt)})
		require.NoError(t, err)

		all := &Chain{Filters: filters, Mode: ModeAll}
		any := &Chain{Filters: filters, Mode: ModeAny}

		for _, id := range reg.IDs() {
			rec, _ := reg.Get(id)
			m0 := filters[0].Matches(rec)
			m1 := filters[1].Matches(rec)
			require.Equal(t, m0 && m1, all.Matches(rec), "all mode on %s", id)
			require.Equal(t, m0 || m1, any.Matches(rec), "any mode on %s", id)
		}
	})
}

// Wrapping a chain in two negations changes nothing.
func TestProperty_DoubleNegationIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := drawRegistry(rt)
		e := NewEngine(false)

		filters, err := e.ParseFilters(context.Background(), []string{drawExpr(rt)})
		require.NoError(t, err)

		plain := &Chain{Filters: filters}
		negated := &Chain{Filters: filters, Negate: true}
		wrapped := &Chain{Children: []*Chain{negated}, Negate: true}

		for _, id := range reg.IDs() {
			rec, _ := reg.Get(id)
			require.Equal(t, plain.Matches(rec), wrapped.Matches(rec))
		}
	})
}

// Exactly one of equals and not_equals holds for any record and operand,
// whether or not the field is present.
func TestProperty_EqualsExclusive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := drawRegistry(rt)
		e := NewEngine(rapid.Bool().Draw(rt, "caseSensitive"))

		operand := rapid.SampledFrom(nameDomain).Draw(rt, "operand")
		eq, err := e.ParseFilter(context.Background(), "name:equals:"+operand)
		require.NoError(t, err)
		ne, err := e.ParseFilter(context.Background(), "name:not_equals:"+operand)
		require.NoError(t, err)

		for _, id := range reg.IDs() {
			rec, _ := reg.Get(id)
			require.NotEqual(t, eq.Matches(rec), ne.Matches(rec), "record %s operand %q", id, operand)
		}
	})
}

// Negating a filter inverts its result on every record.
func TestProperty_NegateInverts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := drawRegistry(rt)
		e := NewEngine(false)

		f, err := e.ParseFilter(context.Background(), drawExpr(rt))
		require.NoError(t, err)
		g := f
		g.Negate = true

		for _, id := range reg.IDs() {
			rec, _ := reg.Get(id)
			require.NotEqual(t, f.Matches(rec), g.Matches(rec))
		}
	})
}

// Sorting permutes the identifiers and keeps tied records in insertion
// order, with or without reverse.
func TestProperty_SortStablePermutation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := drawRegistry(rt)
		e := NewEngine(false)
		reverse := rapid.Bool().Draw(rt, "reverse")

		ids := reg.IDs()
		e.SortIDs(reg, ids, SortKey{Fields: []string{"rank"}, Reverse: reverse})

		// Permutation: same identifiers, same count.
		want := reg.IDs()
		got := append([]string{}, ids...)
		sort.Strings(want)
		sort.Strings(got)
		require.Equal(t, want, got)

		// Stability: equal-rank neighbours keep insertion order. IDs encode
		// the insertion index.
		for i := 1; i < len(ids); i++ {
			a, _ := reg.Get(ids[i-1])
			b, _ := reg.Get(ids[i])
			av, afound := a.Lookup("rank")
			bv, bfound := b.Lookup("rank")
			if e.compareField(av, afound, bv, bfound) != 0 {
				continue
			}
			ai, _ := strconv.Atoi(strings.TrimPrefix(ids[i-1], "rec-"))
			bi, _ := strconv.Atoi(strings.TrimPrefix(ids[i], "rec-"))
			require.Less(t, ai, bi, "tied records must keep insertion order")
		}
	})
}

// Oversized patterns are rejected before validity is even considered.
func TestProperty_GuardRejectsOversized(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := NewGuard()
		length := rapid.IntRange(MaxPatternLength+1, 2000).Draw(rt, "length")
		pattern := strings.Repeat("a", length)

		_, err := g.Compile(context.Background(), pattern, false)
		require.Error(t, err)
		var regexErr *RegexError
		require.ErrorAs(t, err, &regexErr)
	})
}

// A quantified group ending in an unbounded quantifier is rejected at any
// length and position.
func TestProperty_GuardRejectsNestedQuantifiers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := NewGuard()
		inner := rapid.SampledFrom([]string{"a+", "a*", "[0-9]+", "xy*"}).Draw(rt, "inner")
		outer := rapid.SampledFrom([]string{"+", "*", "{2,}"}).Draw(rt, "outer")
		prefix := rapid.StringMatching(`[a-z]{0,10}`).Draw(rt, "prefix")
		suffix := rapid.StringMatching(`[a-z]{0,10}`).Draw(rt, "suffix")

		pattern := prefix + "(" + inner + ")" + outer + suffix
		_, err := g.Compile(context.Background(), pattern, false)
		require.Error(t, err)
		var regexErr *RegexError
		require.ErrorAs(t, err, &regexErr)
	})
}
