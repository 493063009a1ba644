// Package output renders comparison results for humans and machines.
package output

import (
	"io"

	"fabcost/core/compare"
	"fabcost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal summary
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *compare.Result) error
}

// New returns the formatter for the given format.
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatMarkdown:
		return &markdownFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
}
