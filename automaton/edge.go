// Package automaton implements the NFA data model: range-set labelled
// edges, states addressed by a dense arena index, and the composition
// algebra (concatenation, alternation, Kleene star) used to build NFAs
// from Thompson-construction fragments.
package automaton

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Epsilon is the sentinel alphabet symbol that matches only during
// epsilon-closure expansion, never against real input. It is chosen as
// one past the largest valid Unicode scalar value so it can never
// collide with a decoded input rune or an escape result (the source
// this spec is drawn from used (wchar_t)-2; any value outside the
// legal rune range satisfies the same contract).
const Epsilon rune = utf8.MaxRune + 1

// ErrInvalidRange indicates a single-range edge was constructed with
// hi < lo.
var ErrInvalidRange = errors.New("invalid range: high < low")

// Polarity selects whether an edge's ranges are the set of accepted
// characters (Positive) or its complement (Negative).
type Polarity bool

const (
	Positive Polarity = true
	Negative Polarity = false
)

func (p Polarity) String() string {
	if p == Positive {
		return "+"
	}
	return "-"
}

// RuneRange is an inclusive closed interval [Lo, Hi].
type RuneRange struct {
	Lo, Hi rune
}

func (r RuneRange) contains(c rune) bool {
	return c >= r.Lo && c <= r.Hi
}

// Edge is one labelled directed transition: a polarity, an ordered set
// of inclusive rune ranges, and a destination state.
type Edge struct {
	Polarity Polarity
	Ranges   []RuneRange
	Dest     StateID
}

// NewEdge creates an edge with n uninitialized ranges, to be filled by
// the caller (mirrors the source's two-phase edge construction used
// while parsing multi-range character classes).
func NewEdge(n int, pol Polarity, dest StateID) Edge {
	return Edge{
		Polarity: pol,
		Ranges:   make([]RuneRange, n),
		Dest:     dest,
	}
}

// NewSingleRangeEdge creates an edge with exactly one range [lo, hi].
// Fails with ErrInvalidRange if hi < lo.
func NewSingleRangeEdge(lo, hi rune, pol Polarity, dest StateID) (Edge, error) {
	if hi < lo {
		return Edge{}, fmt.Errorf("%w: [%d,%d]", ErrInvalidRange, lo, hi)
	}
	return Edge{
		Polarity: pol,
		Ranges:   []RuneRange{{Lo: lo, Hi: hi}},
		Dest:     dest,
	}, nil
}

// NewEpsilonEdge creates the dedicated epsilon-edge form: a single
// range (Epsilon, Epsilon) with Positive polarity, so Accepts(Epsilon)
// is true and Accepts(any real rune) is false.
func NewEpsilonEdge(dest StateID) Edge {
	return Edge{
		Polarity: Positive,
		Ranges:   []RuneRange{{Lo: Epsilon, Hi: Epsilon}},
		Dest:     dest,
	}
}

// IsEpsilon reports whether e is the dedicated epsilon-edge form.
func (e Edge) IsEpsilon() bool {
	return e.Polarity == Positive && len(e.Ranges) == 1 &&
		e.Ranges[0].Lo == Epsilon && e.Ranges[0].Hi == Epsilon
}

// Accepts implements the acceptance predicate of spec §3: a Positive
// edge accepts c iff some range contains it; a Negative edge accepts c
// iff no range contains it.
func (e Edge) Accepts(c rune) bool {
	in := false
	for _, r := range e.Ranges {
		if r.contains(c) {
			in = true
			break
		}
	}
	if e.Polarity == Positive {
		return in
	}
	return !in
}

// Clone returns an independent copy of e.
func (e Edge) Clone() Edge {
	ranges := make([]RuneRange, len(e.Ranges))
	copy(ranges, e.Ranges)
	return Edge{Polarity: e.Polarity, Ranges: ranges, Dest: e.Dest}
}
