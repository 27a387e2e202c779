// Package presentation renders selected registry records in the output
// formats the CLI offers.
package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/log"
)

// Formatter renders a view to a writer.
type Formatter interface {
	Format(w io.Writer, view *View) error
}

// Formats lists the selectable format names in help order.
func Formats() []string {
	return []string{"table", "json", "csv", "yaml", "tree"}
}

// New resolves a format name to its renderer. The empty name means table.
func New(format string) (Formatter, error) {
	name := strings.ToLower(format)
	log.Debug(log.CatFormat, "resolving formatter", "format", name)
	switch name {
	case "", "table":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "yaml", "yml":
		return &YAMLFormatter{}, nil
	case "tree":
		return &TreeFormatter{}, nil
	}
	return nil, &UnknownFormatError{Name: format}
}

// UnknownFormatError reports a format name with no renderer.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q (valid: %s)", e.Name, strings.Join(Formats(), ", "))
}
