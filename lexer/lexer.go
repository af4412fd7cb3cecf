// Package lexer implements a table-driven, longest-match tokenizer:
// a list of (pattern, token name) pairs, matched in lockstep against
// an input, per spec §4.9.
package lexer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kodelint/nfalex/automaton"
	"github.com/kodelint/nfalex/rx"
	"github.com/kodelint/nfalex/sim"
)

// ErrBadLexSpec indicates a malformed lexer-spec line: missing the tab
// separating pattern from token name, or missing the token name. Add
// also returns it for a pattern over Options.MaxPatternLength. A
// pattern that fails to parse is reported with the rx error instead.
var ErrBadLexSpec = errors.New("bad lexer spec")

// BadLexSpecError wraps ErrBadLexSpec (or the underlying rx parse
// error) with the 1-based line number it was found on.
type BadLexSpecError struct {
	Line int
	Text string
	Err  error
}

func (e *BadLexSpecError) Error() string {
	return fmt.Sprintf("lexer spec line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *BadLexSpecError) Unwrap() error {
	return e.Err
}

// Options tunes lexer construction, in the Options-struct-plus-
// functional-defaults shape used throughout this module.
type Options struct {
	// MaxPatternLength caps the byte length of any one pattern accepted
	// by Add or Load; zero means unbounded.
	MaxPatternLength int
}

// DefaultOptions returns the zero-value Options: no pattern length cap.
func DefaultOptions() Options {
	return Options{MaxPatternLength: 0}
}

type rule struct {
	name string
	nfa  *automaton.NFA
}

// Lexer holds an ordered list of compiled patterns, each bound to a
// token name. Order matters: ties in matched length favor the
// earliest-added rule.
type Lexer struct {
	opts  Options
	rules []rule
}

// New returns an empty Lexer with default options.
func New() *Lexer {
	return &Lexer{opts: DefaultOptions()}
}

// NewWithOptions returns an empty Lexer governed by opts.
func NewWithOptions(opts Options) *Lexer {
	return &Lexer{opts: opts}
}

// Add compiles pattern and appends it, bound to tokenName, to the end
// of the rule list.
func (l *Lexer) Add(pattern, tokenName string) error {
	if l.opts.MaxPatternLength > 0 && len(pattern) > l.opts.MaxPatternLength {
		return fmt.Errorf("%w: pattern %q exceeds max length %d", ErrBadLexSpec, pattern, l.opts.MaxPatternLength)
	}
	n, err := rx.Parse(pattern)
	if err != nil {
		return err
	}
	l.rules = append(l.rules, rule{name: tokenName, nfa: n})
	return nil
}

// Load parses spec as a sequence of lines of the form
// "<regex>\t<token-name>". Blank lines and lines starting with '#' are
// skipped. Rules are appended in file order.
func (l *Lexer) Load(spec string) error {
	for i, raw := range strings.Split(spec, "\n") {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			return &BadLexSpecError{Line: lineNo, Text: line, Err: fmt.Errorf("%w: missing tab separator", ErrBadLexSpec)}
		}
		pattern := line[:tab]
		name := strings.TrimSpace(line[tab+1:])
		if name == "" {
			return &BadLexSpecError{Line: lineNo, Text: line, Err: fmt.Errorf("%w: missing token name", ErrBadLexSpec)}
		}

		if err := l.Add(pattern, name); err != nil {
			return &BadLexSpecError{Line: lineNo, Text: line, Err: err}
		}
	}
	return nil
}

// Yylex finds the longest prefix of input matched by any rule, per
// spec §4.9: every rule's simulator is advanced in lockstep; at each
// step, any rule currently Accepting or Accepted updates the best match if its
// length beats the current best, or ties it while having been added
// earlier (rules never overwrite a longer or equally-long earlier
// match). Scanning stops once every rule has Rejected or input is
// exhausted. Returns ("", -1) if no rule ever accepted a non-empty or
// empty prefix.
func (l *Lexer) Yylex(input []rune) (tokenName string, length int) {
	length = -1
	if len(l.rules) == 0 {
		return "", -1
	}

	sims := make([]*sim.Sim, len(l.rules))
	alive := make([]bool, len(l.rules))
	for i, r := range l.rules {
		sims[i] = sim.Begin(r.nfa, input)
		alive[i] = true
	}

	pos := 0
	anyAlive := true
	for anyAlive {
		anyAlive = false
		for i := range l.rules {
			if !alive[i] {
				continue
			}
			switch sims[i].Classify() {
			case sim.Accepted:
				if pos > length {
					length = pos
					tokenName = l.rules[i].name
				}
				alive[i] = false
			case sim.Accepting:
				if pos > length {
					length = pos
					tokenName = l.rules[i].name
				}
				anyAlive = true
			case sim.NotAccepting:
				anyAlive = true
			case sim.Rejected:
				alive[i] = false
			}
		}
		if !anyAlive {
			break
		}
		for i := range l.rules {
			if alive[i] {
				sims[i].Step()
			}
		}
		pos++
	}

	return tokenName, length
}
