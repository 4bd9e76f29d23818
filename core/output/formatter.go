// Package output renders quotes for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"lpboost/core/progression"
	"lpboost/core/quote"
	"lpboost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *QuoteReport) error
}

// QuoteReport is the complete quote output
type QuoteReport struct {
	// Quote is the computed quote
	Quote *quote.Quote `json:"quote"`

	// Metadata contains execution context
	Metadata ReportMetadata `json:"metadata"`
}

// ReportMetadata contains execution context
type ReportMetadata struct {
	// Timestamp is when the quote was computed
	Timestamp string `json:"timestamp"`

	// Duration is how long the computation took
	Duration string `json:"duration"`

	// Version is the engine version
	Version string `json:"version"`
}

// New returns a formatter for the given format
func New(format Format, showTable bool) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{ShowTable: showTable}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %q", format)
	}
}

// JSONFormatter renders the full report as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report as JSON
func (f *JSONFormatter) Render(w io.Writer, report *QuoteReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// CLIFormatter renders a human-readable summary table
type CLIFormatter struct {
	// ShowTable includes the sampled progression rows
	ShowTable bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the quote summary
func (f *CLIFormatter) Render(w io.Writer, report *QuoteReport) error {
	q := report.Quote

	if !q.Forward() {
		fmt.Fprintln(w, "Invalid request: target must be ahead of the current rank, or LP greater.")
		return nil
	}

	sym := currencySymbol(q.Currency)

	fmt.Fprintln(w, "┌──────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                      BOOST QUOTE SUMMARY                     │")
	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────┤")
	row(w, "Total LP required", q.Gap.TotalLP.String()+" LP")
	row(w, "Divisions spanned", fmt.Sprintf("%d", q.Gap.Divisions))
	row(w, "Ranks spanned", fmt.Sprintf("%d", q.Gap.Ranks))
	row(w, fmt.Sprintf("Growth tier (%s)", q.Tier), q.Rate.String()+"% per LP")
	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────┤")
	row(w, "Client path (your base)", sym+q.StandardTotal.Round(2).String())
	row(w, "Client path (floor-adjusted base)", sym+q.AdjustedTotal.Round(2).String())
	row(w, "Adjusted base price", sym+q.ReferenceBase.Round(2).String())
	row(w, "Price for next 1 LP", sym+q.NextLPPrice.Round(2).String())
	fmt.Fprintln(w, "└──────────────────────────────────────────────────────────────┘")

	if f.ShowTable && len(q.StandardRows) > 0 {
		fmt.Fprintln(w)
		renderRows(w, q.StandardRows, sym)
	}

	fmt.Fprintf(w, "\nQuote computed in %s\n", report.Metadata.Duration)
	return nil
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "│ %-38s %21s │\n", truncate(label, 38), truncate(value, 21))
}

func renderRows(w io.Writer, rows []progression.Row, sym string) {
	fmt.Fprintf(w, "%8s %14s %14s\n", "LP Step", "Step Price", "Cumulative")
	for _, r := range rows {
		fmt.Fprintf(w, "%8d %14s %14s\n", r.Step, sym+r.StepPrice.String(), sym+r.Cumulative.String())
	}
}

func currencySymbol(c quote.Currency) string {
	switch c {
	case quote.CurrencyEUR:
		return "€"
	default:
		return "$"
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
