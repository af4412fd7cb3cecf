// Package persist reads and writes NFAs in the line-oriented textual
// format of spec §6.1, and renders them to Graphviz dot per §6.2.
package persist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kodelint/nfalex/automaton"
	"github.com/kodelint/nfalex/internal/charutil"
)

// ErrBadNfaSpec indicates a malformed line in the persistence format:
// a bad prefix, a missing digit, or a malformed transition line.
var ErrBadNfaSpec = errors.New("bad NFA spec")

// FormatError wraps ErrBadNfaSpec (or a charutil escape error) with the
// 1-based line number it was found on.
type FormatError struct {
	Line int
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("NFA spec line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Read parses text into an NFA. If no "start:" line is present, the
// start state defaults to 0. State indices referenced by a transition
// ahead of their declaration auto-extend the machine (see
// automaton.NFA.EnsureState).
func Read(text string) (*automaton.NFA, error) {
	n := automaton.New()
	sawStart := false

	for i, raw := range charutil.SplitLines(text) {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "start:"):
			v, err := parseNat(strings.TrimSpace(line[len("start:"):]))
			if err != nil {
				return nil, &FormatError{Line: lineNo, Text: line, Err: err}
			}
			n.EnsureState(v)
			n.Start = v
			sawStart = true

		case strings.HasPrefix(line, "accept:"):
			v, err := parseNat(strings.TrimSpace(line[len("accept:"):]))
			if err != nil {
				return nil, &FormatError{Line: lineNo, Text: line, Err: err}
			}
			n.EnsureState(v)
			n.Accepting = append(n.Accepting, v)

		default:
			if err := readTransitionLine(n, line); err != nil {
				return nil, &FormatError{Line: lineNo, Text: line, Err: err}
			}
		}
	}

	if !sawStart {
		n.EnsureState(0)
		n.Start = 0
	}
	return n, nil
}

func parseNat(s string) (automaton.StateID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: expected a number, got %q", ErrBadNfaSpec, s)
	}
	return automaton.StateID(v), nil
}

// readTransitionLine parses "from-to:polarity range (\" \" range)*".
func readTransitionLine(n *automaton.NFA, line string) error {
	dash := strings.IndexByte(line, '-')
	colon := strings.IndexByte(line, ':')
	if dash < 0 || colon < 0 || colon < dash {
		return fmt.Errorf("%w: malformed transition line", ErrBadNfaSpec)
	}

	from, err := parseNat(line[:dash])
	if err != nil {
		return err
	}
	to, err := parseNat(line[dash+1 : colon])
	if err != nil {
		return err
	}

	rest := line[colon+1:]
	if rest == "" {
		return fmt.Errorf("%w: missing polarity", ErrBadNfaSpec)
	}
	var pol automaton.Polarity
	switch rest[0] {
	case '+':
		pol = automaton.Positive
	case '-':
		pol = automaton.Negative
	default:
		return fmt.Errorf("%w: expected '+' or '-', got %q", ErrBadNfaSpec, rest[0])
	}
	rest = rest[1:]

	ranges, err := parseRanges(rest)
	if err != nil {
		return err
	}

	n.EnsureState(from)
	n.EnsureState(to)
	n.AddEdge(from, automaton.Edge{Polarity: pol, Ranges: ranges, Dest: to})
	return nil
}

func parseRanges(s string) ([]automaton.RuneRange, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: missing range", ErrBadNfaSpec)
	}
	ranges := make([]automaton.RuneRange, 0, len(fields))
	for _, f := range fields {
		lo, hi, err := parseOneRange(f)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, automaton.RuneRange{Lo: lo, Hi: hi})
	}
	return ranges, nil
}

// parseOneRange parses "char-char" where char is a literal rune or a
// backslash escape (§6.1's `range` / `char` productions).
func parseOneRange(field string) (lo, hi rune, err error) {
	r := strings.NewReader(field)

	lo, err = readFieldChar(r)
	if err != nil {
		return 0, 0, err
	}
	dash, _, derr := r.ReadRune()
	if derr != nil || dash != '-' {
		return 0, 0, fmt.Errorf("%w: expected '-' in range %q", ErrBadNfaSpec, field)
	}
	hi, err = readFieldChar(r)
	if err != nil {
		return 0, 0, err
	}
	if r.Len() != 0 {
		return 0, 0, fmt.Errorf("%w: trailing characters in range %q", ErrBadNfaSpec, field)
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("%w: descending range %q", ErrBadNfaSpec, field)
	}
	return lo, hi, nil
}

func readFieldChar(r *strings.Reader) (rune, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return 0, fmt.Errorf("%w: unexpected end of range", ErrBadNfaSpec)
	}
	if c == '\\' {
		return charutil.DecodeEscape(r, automaton.Epsilon)
	}
	return c, nil
}

// Write serializes n into the textual format: a start line, then each
// accepting state (in the NFA's own accepting-set order), then each
// state's edges in state-index order.
func Write(n *automaton.NFA) string {
	var b strings.Builder
	fmt.Fprintf(&b, "start:%d\n", n.Start)
	for _, a := range n.Accepting {
		fmt.Fprintf(&b, "accept:%d\n", a)
	}
	for i, s := range n.States {
		for _, e := range s.Edges {
			fmt.Fprintf(&b, "%d-%d:%s%s\n", i, e.Dest, e.Polarity, writeRanges(e.Ranges))
		}
	}
	return b.String()
}

func writeRanges(ranges []automaton.RuneRange) string {
	var b strings.Builder
	for _, r := range ranges {
		b.WriteByte(' ')
		b.WriteString(writeChar(r.Lo))
		b.WriteByte('-')
		b.WriteString(writeChar(r.Hi))
	}
	return b.String()
}

func writeChar(c rune) string {
	switch c {
	case automaton.Epsilon:
		return `\e`
	case '\\':
		return `\\`
	case ' ':
		return `\x20`
	case '-':
		return `\x2D`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	default:
		return string(c)
	}
}
