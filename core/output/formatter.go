// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"

	"windowprice/core/determinism"
	"windowprice/core/pricing"
	"windowprice/core/quote"
	"windowprice/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
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

	// RenderPrice writes a single window price
	RenderPrice(w io.Writer, b *pricing.Breakdown) error

	// RenderQuote writes a multi-window quote
	RenderQuote(w io.Writer, q *quote.Quote) error

	// RenderRates writes the rate card
	RenderRates(w io.Writer, rates pricing.RateCard) error
}

// Options control rendering
type Options struct {
	// Places is the number of decimal places for amounts
	Places int32

	// Currency is printed next to totals
	Currency string

	// ShowBreakdown lists every line item
	ShowBreakdown bool

	// NoColor disables ANSI colors
	NoColor bool
}

// DefaultOptions returns two-place USD output with breakdowns
func DefaultOptions() Options {
	return Options{
		Places:        2,
		Currency:      "USD",
		ShowBreakdown: true,
	}
}

// Registry maps format names to formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry(opts Options) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(&CLIFormatter{opts: opts})
	r.Register(&JSONFormatter{opts: opts})
	r.Register(&MarkdownFormatter{opts: opts})
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format name
func (r *Registry) Get(name string) (Formatter, error) {
	if f, ok := r.formatters[Format(name)]; ok {
		return f, nil
	}
	return nil, errors.NotSupported("output format " + name).WithContext("formats", r.Names())
}

// Names lists registered format names
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formatters))
	for _, f := range determinism.SortedKeys(r.formatters) {
		names = append(names, string(f))
	}
	return names
}
