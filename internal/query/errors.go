package query

import (
	"fmt"
	"strings"
)

// All parse and validation errors surface before any record is evaluated:
// one bad expression aborts the run at the validation boundary.

// FieldPathError reports a field path that fails the path grammar or its
// depth/length limits.
type FieldPathError struct {
	Path   string
	Reason string
}

func (e *FieldPathError) Error() string {
	return fmt.Sprintf("invalid field path %q: %s", e.Path, e.Reason)
}

// SyntaxError reports a malformed filter expression.
type SyntaxError struct {
	Expr   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Expr, e.Reason)
}

// UnknownOperatorError reports an operator token with no known meaning.
type UnknownOperatorError struct {
	Expr  string
	Token string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("invalid filter %q: unknown operator %q", e.Expr, e.Token)
}

// RegexError reports a pattern the safety guard rejected or that failed to
// compile.
type RegexError struct {
	Pattern string
	Reason  string
	Err     error
}

func (e *RegexError) Error() string {
	pattern := e.Pattern
	if len(pattern) > 60 {
		pattern = pattern[:60] + "..."
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid regex %q: %s: %v", pattern, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid regex %q: %s", pattern, e.Reason)
}

func (e *RegexError) Unwrap() error {
	return e.Err
}

// UnknownPresetError reports a preset name with no built-in definition.
type UnknownPresetError struct {
	Name  string
	Valid []string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q (valid: %s)", e.Name, strings.Join(e.Valid, ", "))
}
