// Package search implements longest-leftmost-match scanning over an
// NFA, per spec §4.8: for each candidate start index, run the
// simulator forward tracking the longest point at which it was in an
// Accepting or Accepted state, then advance the start index per the
// greedy/overlap knobs.
package search

import (
	"github.com/kodelint/nfalex/automaton"
	"github.com/kodelint/nfalex/sim"
)

// Hit is one match: the rune offset it started at, and its length in
// runes.
type Hit struct {
	Start  int
	Length int
}

// Search scans text for matches of n, per the §4.8 algorithm exactly:
// for each starting index i, the longest accepted length ℓ found from
// i is emitted as a hit, and i then advances according to greedy and
// overlap.
//
//   - greedy: return immediately with just this one hit (a membership
//     short-circuit — useful when only "does this occur" matters).
//   - not greedy, overlap: i ← i + 1 (every leftmost match is found,
//     even ones that start inside a previously reported match).
//   - not greedy, not overlap: i ← i + ℓ (non-overlapping matches).
//
// If no match starts at i, i ← i + 1 regardless of the knobs.
func Search(n *automaton.NFA, text string, greedy, overlap bool) []Hit {
	runes := []rune(text)
	var hits []Hit

	i := 0
	for i <= len(runes) {
		length, ok := longestMatchAt(n, runes, i)
		if !ok {
			i++
			continue
		}

		hits = append(hits, Hit{Start: i, Length: length})
		switch {
		case greedy:
			return hits
		case overlap, length == 0:
			// A zero-width hit can't advance i by its own length
			// without looping forever, so it falls back to the
			// overlap step.
			i++
		default:
			i += length
		}
	}
	return hits
}

// longestMatchAt runs the simulator from position start and returns
// the longest accepted length found there, per §4.8 step 2: step
// until the classification is Accepted, Rejected, or input is
// exhausted, recording the length at every Accepting or Accepted
// classification along the way.
func longestMatchAt(n *automaton.NFA, runes []rune, start int) (length int, ok bool) {
	s := sim.Begin(n, runes[start:])
	cur := 0
	last := -1

	for {
		switch s.Classify() {
		case sim.Accepted:
			return cur, true
		case sim.Accepting:
			last = cur
			s.Step()
			cur++
		case sim.NotAccepting:
			s.Step()
			cur++
		case sim.Rejected:
			if last >= 0 {
				return last, true
			}
			return 0, false
		}
	}
}
