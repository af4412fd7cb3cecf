// Package sim implements epsilon-closure computation and stepwise
// simulation of an NFA, per spec §4.7: the nondeterministic whole-string
// driver (Accepts), and a permissive single-state DFA fast path
// (AcceptsDeterministic).
package sim

import (
	"strconv"

	"github.com/kodelint/nfalex/automaton"
)

// StateSet is a deduplicated, insertion-ordered set of state indices.
// Membership is tracked with a presence slice indexed by state ID
// (states are dense, so this beats a hash set — per spec §9's
// recommended substitution for the source's linear search).
type StateSet struct {
	order   []automaton.StateID
	present []bool
}

func newStateSet(capacity int) *StateSet {
	return &StateSet{present: make([]bool, capacity)}
}

func (s *StateSet) has(id automaton.StateID) bool {
	return int(id) < len(s.present) && s.present[id]
}

func (s *StateSet) add(id automaton.StateID) bool {
	if s.has(id) {
		return false
	}
	if int(id) >= len(s.present) {
		grown := make([]bool, id+1)
		copy(grown, s.present)
		s.present = grown
	}
	s.present[id] = true
	s.order = append(s.order, id)
	return true
}

// States returns the set's members in first-seen order.
func (s *StateSet) States() []automaton.StateID {
	return s.order
}

// Len returns the number of states in the set.
func (s *StateSet) Len() int {
	return len(s.order)
}

// Has reports whether id is a member of the set.
func (s *StateSet) Has(id automaton.StateID) bool {
	return s.has(id)
}

// Closure returns the set of states reachable from s by zero or more
// epsilon edges, computed breadth-first.
func Closure(n *automaton.NFA, s automaton.StateID) *StateSet {
	closure := newStateSet(len(n.States))
	queue := []automaton.StateID{s}
	closure.add(s)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range n.States[cur].Edges {
			if e.IsEpsilon() && closure.add(e.Dest) {
				queue = append(queue, e.Dest)
			}
		}
	}
	return closure
}

// closureOfSet returns the union of Closure(n, s) for every s in from,
// preserving first-seen order across the whole set.
func closureOfSet(n *automaton.NFA, from *StateSet) *StateSet {
	closure := newStateSet(len(n.States))
	queue := append([]automaton.StateID(nil), from.States()...)
	for _, id := range from.States() {
		closure.add(id)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range n.States[cur].Edges {
			if e.IsEpsilon() && closure.add(e.Dest) {
				queue = append(queue, e.Dest)
			}
		}
	}
	return closure
}

// Classification is the simulator's relationship to the accepting set
// at its current position, per spec §4.7.
type Classification int

const (
	Accepting Classification = iota
	NotAccepting
	Accepted
	Rejected
)

func (c Classification) String() string {
	switch c {
	case Accepting:
		return "Accepting"
	case NotAccepting:
		return "NotAccepting"
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Sim is a running simulation over one NFA and one input.
type Sim struct {
	nfa     *automaton.NFA
	current *StateSet
	input   []rune
	pos     int
}

// Begin starts a simulation: current is the epsilon-closure of the
// start state, and input is retained for stepping.
func Begin(n *automaton.NFA, input []rune) *Sim {
	return &Sim{
		nfa:     n,
		current: Closure(n, n.Start),
		input:   input,
	}
}

// Current returns the simulator's current state set.
func (s *Sim) Current() *StateSet {
	return s.current
}

// Exhausted reports whether all input has been consumed.
func (s *Sim) Exhausted() bool {
	return s.pos >= len(s.input)
}

// Step advances over exactly one input character: the set of
// destinations of every non-epsilon edge in the current set that
// accepts that character, closed under epsilon transitions.
func (s *Sim) Step() {
	if s.Exhausted() {
		s.current = newStateSet(len(s.nfa.States))
		return
	}
	c := s.input[s.pos]
	s.pos++

	next := newStateSet(len(s.nfa.States))
	for _, id := range s.current.States() {
		for _, e := range s.nfa.States[id].Edges {
			if !e.IsEpsilon() && e.Accepts(c) {
				next.add(e.Dest)
			}
		}
	}
	s.current = closureOfSet(s.nfa, next)
}

// anyAccepting reports whether the current set intersects the NFA's
// accepting set.
func (s *Sim) anyAccepting() bool {
	for _, a := range s.nfa.Accepting {
		if s.current.Has(a) {
			return true
		}
	}
	return false
}

// Classify implements the classification rules of spec §4.7.
func (s *Sim) Classify() Classification {
	if s.current.Len() == 0 {
		return Rejected
	}
	accepting := s.anyAccepting()
	exhausted := s.Exhausted()
	switch {
	case accepting && exhausted:
		return Accepted
	case accepting && !exhausted:
		return Accepting
	case !accepting && exhausted:
		return Rejected
	default:
		return NotAccepting
	}
}

// Accepts runs the nondeterministic whole-string driver: begin, then
// step until the classification is Accepted or Rejected.
func Accepts(n *automaton.NFA, input string) bool {
	s := Begin(n, []rune(input))
	for {
		switch s.Classify() {
		case Accepted:
			return true
		case Rejected:
			return false
		default:
			s.Step()
		}
	}
}

// AcceptsDeterministic walks a single current state at a time,
// applying no epsilon-closure — the caller must supply an epsilon-free
// NFA. If some character admits two outgoing edges of the current
// state that both accept it, a diagnostic is recorded (the automaton
// is not deterministic under that input) and the routine continues
// with the first such edge, per the permissive behavior spec §9 allows.
func AcceptsDeterministic(n *automaton.NFA, input string) (accepted bool, diagnostics []string) {
	cur := n.Start
	runes := []rune(input)
	for _, c := range runes {
		var next automaton.StateID
		found := false
		for _, e := range n.States[cur].Edges {
			if e.Accepts(c) {
				if found {
					diagnostics = append(diagnostics, nondeterminismDiagnostic(cur, c))
					continue
				}
				next = e.Dest
				found = true
			}
		}
		if !found {
			return false, diagnostics
		}
		cur = next
	}
	return n.IsAccepting(cur), diagnostics
}

func nondeterminismDiagnostic(state automaton.StateID, c rune) string {
	return "state " + strconv.Itoa(int(state)) + " has more than one edge accepting " + string(c)
}
