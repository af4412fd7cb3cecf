package automaton

import "fmt"

// StateID identifies an NFA state by its index in the arena. Edges and
// the accepting set refer to states only by this index, never by
// pointer, so cloning and offset-rewriting (used by the composition
// algebra) are just arithmetic over a slice.
type StateID uint32

// InvalidState marks an NFA with no start state yet assigned.
const InvalidState StateID = 0xFFFFFFFF

// State is one NFA state: an ordered list of outgoing edges, owned by
// the state.
type State struct {
	Edges []Edge
}

// NFA is an ordered set of states with an accepting set and a start
// state. An NFA exclusively owns its states and their edges.
type NFA struct {
	States    []*State
	Accepting []StateID
	Start     StateID
}

// New returns an empty NFA with no start state.
func New() *NFA {
	return &NFA{Start: InvalidState}
}

// AddState appends a new state, optionally recording it as accepting,
// and returns its index.
func (n *NFA) AddState(accepting bool) StateID {
	id := StateID(len(n.States))
	n.States = append(n.States, &State{})
	if accepting {
		n.Accepting = append(n.Accepting, id)
	}
	return id
}

// AddEdge appends e to from's outgoing edge list. from must be a valid
// state index; e.Dest is not validated here — the algebra and the
// persistence reader are responsible for overall graph consistency.
func (n *NFA) AddEdge(from StateID, e Edge) {
	n.States[from].Edges = append(n.States[from].Edges, e)
}

// AddSingleEdge is a convenience wrapper that builds and appends a
// single-range edge from `from` to `to`.
func (n *NFA) AddSingleEdge(from, to StateID, lo, hi rune, pol Polarity) (Edge, error) {
	e, err := NewSingleRangeEdge(lo, hi, pol, to)
	if err != nil {
		return Edge{}, err
	}
	n.AddEdge(from, e)
	return e, nil
}

// AddEpsilonEdge appends an epsilon edge from `from` to `to`.
func (n *NFA) AddEpsilonEdge(from, to StateID) {
	n.AddEdge(from, NewEpsilonEdge(to))
}

// IsAccepting reports whether idx is a member of the accepting set.
func (n *NFA) IsAccepting(idx StateID) bool {
	for _, a := range n.Accepting {
		if a == idx {
			return true
		}
	}
	return false
}

// NumStates returns the number of states in the arena.
func (n *NFA) NumStates() int {
	return len(n.States)
}

// EnsureState grows the arena, if needed, so that idx is a valid
// index, creating any intervening states as non-accepting with no
// edges. Used by the persistence reader to auto-extend the machine
// when a transition references a state index ahead of its declaration.
func (n *NFA) EnsureState(idx StateID) {
	for StateID(len(n.States)) <= idx {
		n.States = append(n.States, &State{})
	}
}

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states=%d, start=%d, accepting=%v}", len(n.States), n.Start, n.Accepting)
}
