// Package cliformat renders command results as text, table, or JSON,
// grounded on the teacher's internal/cli/output/formatter.go: a small
// Formatter struct dispatching on a format string, using fatih/color
// for highlighting and falling back to plain text when colour is
// disabled.
package cliformat

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one of the result types below in the format it
// was constructed with.
type Formatter struct {
	writer  io.Writer
	format  string
	noColor bool
}

// NewFormatter returns a Formatter writing to stdout. format is one of
// "text" (default), "table", or "json".
func NewFormatter(format string, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}
	return &Formatter{writer: os.Stdout, format: format, noColor: noColor}
}

// MatchResult is the outcome of the "match" subcommand: does the whole
// input match the pattern.
type MatchResult struct {
	Pattern string
	Input   string
	Matched bool
}

// SearchResult is the outcome of the "search" subcommand.
type SearchResult struct {
	Pattern string
	Input   string
	Hits    []HitView
}

// HitView is one reported hit, with the matched substring already
// sliced out for display.
type HitView struct {
	Start  int
	Length int
	Text   string
}

// LexResult is the outcome of the "lex" subcommand: the sequence of
// tokens recognized, in order, plus any unrecognized remainder.
type LexResult struct {
	Tokens    []TokenView
	Remainder string
}

// TokenView is one recognized token.
type TokenView struct {
	Name string
	Text string
}

// FormatMatch renders a MatchResult.
func (f *Formatter) FormatMatch(r *MatchResult) error {
	switch f.format {
	case "json":
		return f.encode(r)
	case "table":
		fmt.Fprintln(f.writer, "┌──────────┬─────────┐")
		fmt.Fprintln(f.writer, "│ Pattern  │ Matched │")
		fmt.Fprintln(f.writer, "├──────────┼─────────┤")
		fmt.Fprintf(f.writer, "│ %-8s │ %-7s │\n", r.Pattern, f.boolStr(r.Matched))
		fmt.Fprintln(f.writer, "└──────────┴─────────┘")
		return nil
	default:
		if r.Matched {
			fmt.Fprintf(f.writer, "%s %q matches %q\n", f.colorize("✓", color.FgGreen), r.Input, r.Pattern)
		} else {
			fmt.Fprintf(f.writer, "%s %q does not match %q\n", f.colorize("✗", color.FgRed), r.Input, r.Pattern)
		}
		return nil
	}
}

// FormatSearch renders a SearchResult.
func (f *Formatter) FormatSearch(r *SearchResult) error {
	switch f.format {
	case "json":
		return f.encode(r)
	case "table":
		fmt.Fprintln(f.writer, "┌───────┬────────┬────────────┐")
		fmt.Fprintln(f.writer, "│ Start │ Length │ Text       │")
		fmt.Fprintln(f.writer, "├───────┼────────┼────────────┤")
		for _, h := range r.Hits {
			fmt.Fprintf(f.writer, "│ %-5d │ %-6d │ %-10s │\n", h.Start, h.Length, h.Text)
		}
		fmt.Fprintln(f.writer, "└───────┴────────┴────────────┘")
		return nil
	default:
		if len(r.Hits) == 0 {
			fmt.Fprintf(f.writer, "%s no matches for %q in %q\n", f.colorize("✗", color.FgRed), r.Pattern, r.Input)
			return nil
		}
		fmt.Fprintf(f.writer, "%d match(es) for %q in %q:\n", len(r.Hits), r.Pattern, r.Input)
		for _, h := range r.Hits {
			fmt.Fprintf(f.writer, "  [%d,%d) %s\n", h.Start, h.Start+h.Length, f.colorize(h.Text, color.FgGreen))
		}
		return nil
	}
}

// FormatLex renders a LexResult.
func (f *Formatter) FormatLex(r *LexResult) error {
	switch f.format {
	case "json":
		return f.encode(r)
	case "table":
		fmt.Fprintln(f.writer, "┌────────────┬────────────┐")
		fmt.Fprintln(f.writer, "│ Token      │ Text       │")
		fmt.Fprintln(f.writer, "├────────────┼────────────┤")
		for _, t := range r.Tokens {
			fmt.Fprintf(f.writer, "│ %-10s │ %-10s │\n", t.Name, t.Text)
		}
		fmt.Fprintln(f.writer, "└────────────┴────────────┘")
		if r.Remainder != "" {
			fmt.Fprintf(f.writer, "unrecognized remainder: %q\n", r.Remainder)
		}
		return nil
	default:
		for _, t := range r.Tokens {
			fmt.Fprintf(f.writer, "%s %s\n", f.colorize(t.Name, color.FgCyan), t.Text)
		}
		if r.Remainder != "" {
			fmt.Fprintf(f.writer, "%s unrecognized remainder: %q\n", f.colorize("✗", color.FgRed), r.Remainder)
		}
		return nil
	}
}

func (f *Formatter) encode(v interface{}) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f *Formatter) colorize(text string, attr color.Attribute) string {
	if f.noColor {
		return text
	}
	return color.New(attr).Sprint(text)
}

func (f *Formatter) boolStr(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// PrintError writes a formatted error to stderr.
func (f *Formatter) PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", f.colorize("Error:", color.FgRed), msg)
}
