package query

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/cachemanager"
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/log"
)

// MaxPatternLength is the hard cap on regex pattern size.
const MaxPatternLength = 500

// Guard validates regex patterns before compilation and caches the compiled
// form keyed by effective pattern text (case flag included). Each engine
// owns its guard, so independent instances never share cache state.
//
// Rejection is a best-effort static heuristic: it catches oversized patterns
// and the classic nested-unbounded-quantifier shapes, but it is not a proof
// of bounded execution time.
type Guard struct {
	compiler *cachemanager.ReadThroughCache[string, *regexp.Regexp, string]
}

// NewGuard creates a guard with an empty pattern cache.
func NewGuard() *Guard {
	cache := cachemanager.NewInMemoryCacheManager[string, *regexp.Regexp](
		"regex", cachemanager.NoExpiration, 0)

	compiler := cachemanager.NewReadThroughCache[string, *regexp.Regexp, string](
		cache,
		func(ctx context.Context, pattern string) (*regexp.Regexp, error) {
			return regexp.Compile(pattern)
		},
		false,
	)

	return &Guard{compiler: compiler}
}

// Compile validates the pattern and returns its compiled form, adding a
// case-insensitivity flag unless caseSensitive is set.
func (g *Guard) Compile(ctx context.Context, pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	if len(pattern) > MaxPatternLength {
		log.Warn(log.CatQuery, "regex rejected", "reason", "too long", "length", len(pattern))
		return nil, &RegexError{
			Pattern: pattern,
			Reason:  fmt.Sprintf("pattern exceeds %d characters", MaxPatternLength),
		}
	}
	if hasNestedQuantifier(pattern) {
		log.Warn(log.CatQuery, "regex rejected", "reason", "nested quantifier", "pattern", pattern)
		return nil, &RegexError{
			Pattern: pattern,
			Reason:  "nested unbounded quantifier risks catastrophic backtracking",
		}
	}

	effective := pattern
	if !caseSensitive {
		effective = "(?i)" + pattern
	}

	re, err := g.compiler.Get(ctx, effective, effective, cachemanager.NoExpiration)
	if err != nil {
		return nil, &RegexError{Pattern: pattern, Reason: "compile failed", Err: err}
	}
	return re, nil
}

// hasNestedQuantifier detects a group that ends in an unbounded quantifier
// and is itself quantified, e.g. (a+)+, (a*)*, (a+){2,}. Escapes and
// character classes are skipped; bounded inner quantifiers like (https?)?
// are allowed.
func hasNestedQuantifier(pattern string) bool {
	inClass := false
	escaped := false
	prevQuant := false

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		if escaped {
			escaped = false
			prevQuant = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}

		if inClass {
			if c == ']' {
				inClass = false
			}
			continue
		}
		if c == '[' {
			inClass = true
			prevQuant = false
			continue
		}

		if c == ')' && prevQuant && i+1 < len(pattern) {
			switch pattern[i+1] {
			case '*', '+', '{':
				return true
			}
		}

		prevQuant = c == '*' || c == '+' || c == '}'
	}
	return false
}
