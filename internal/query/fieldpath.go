package query

import (
	"fmt"
	"strings"
)

// Field path limits. Paths are rejected before any operator or value
// handling so a bad path aborts the whole filter set.
const (
	MaxPathDepth  = 8
	MaxPathLength = 128
)

// ValidateFieldPath checks a dotted field path against the grammar
// identifier ("." identifier)* where an identifier starts with a letter or
// underscore. It returns the segment sequence on success.
func ValidateFieldPath(path string) ([]string, error) {
	if path == "" {
		return nil, &FieldPathError{Path: path, Reason: "path is empty"}
	}
	if len(path) > MaxPathLength {
		return nil, &FieldPathError{Path: path, Reason: fmt.Sprintf("path exceeds %d characters", MaxPathLength)}
	}

	segments := strings.Split(path, ".")
	if len(segments) > MaxPathDepth {
		return nil, &FieldPathError{Path: path, Reason: fmt.Sprintf("path exceeds %d segments", MaxPathDepth)}
	}

	for _, seg := range segments {
		if seg == "" {
			return nil, &FieldPathError{Path: path, Reason: "empty segment"}
		}
		if !isIdentStart(rune(seg[0])) {
			return nil, &FieldPathError{Path: path, Reason: fmt.Sprintf("segment %q must start with a letter or underscore", seg)}
		}
		for _, r := range seg[1:] {
			if !isIdentPart(r) {
				return nil, &FieldPathError{Path: path, Reason: fmt.Sprintf("segment %q contains invalid character %q", seg, r)}
			}
		}
	}
	return segments, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}
