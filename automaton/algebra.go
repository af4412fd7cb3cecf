package automaton

// MergeStatesFrom appends deep clones of every state in src to dest,
// rewriting each cloned edge's Dest by adding the returned offset (the
// number of states dest had before the merge). It does not touch
// dest.Accepting or dest.Start — callers apply those separately, since
// concat, union, and star each shift and combine them differently.
func MergeStatesFrom(dest, src *NFA) StateID {
	offset := StateID(len(dest.States))
	for _, s := range src.States {
		edges := make([]Edge, len(s.Edges))
		for i, e := range s.Edges {
			clone := e.Clone()
			clone.Dest += offset
			edges[i] = clone
		}
		dest.States = append(dest.States, &State{Edges: edges})
	}
	return offset
}

// Concat mutates a in place into an NFA accepting L(a)·L(b): b's
// states are merged into a, every pre-merge accepting state of a gets
// an epsilon edge to b's (shifted) start, and a's accepting set becomes
// b's (shifted) accepting set. a.Start is unchanged.
func Concat(a, b *NFA) {
	oldAccepting := append([]StateID(nil), a.Accepting...)
	offset := MergeStatesFrom(a, b)

	bStart := b.Start + offset
	for _, s := range oldAccepting {
		a.AddEpsilonEdge(s, bStart)
	}

	newAccepting := make([]StateID, len(b.Accepting))
	for i, acc := range b.Accepting {
		newAccepting[i] = acc + offset
	}
	a.Accepting = newAccepting
}

// Union mutates a in place into an NFA accepting L(a) ∪ L(b): b's
// states are merged into a, b's accepting states (shifted) are appended
// to a's, and a fresh non-accepting state q becomes the new start with
// epsilon edges to both original starts.
func Union(a, b *NFA) {
	oldStart := a.Start
	offset := MergeStatesFrom(a, b)

	for _, acc := range b.Accepting {
		a.Accepting = append(a.Accepting, acc+offset)
	}

	q := a.AddState(false)
	a.AddEpsilonEdge(q, oldStart)
	a.AddEpsilonEdge(q, b.Start+offset)
	a.Start = q
}

// Star mutates a in place into an NFA accepting L(a)*: a fresh
// accepting state q becomes the new start with an epsilon edge to a's
// old start, and every pre-existing accepting state of a gets an
// epsilon edge back to q.
func Star(a *NFA) {
	oldStart := a.Start
	oldAccepting := append([]StateID(nil), a.Accepting...)

	q := a.AddState(true)
	a.AddEpsilonEdge(q, oldStart)
	for _, s := range oldAccepting {
		a.AddEpsilonEdge(s, q)
	}
	a.Start = q
}

// Plus mutates a in place into an NFA accepting L(a)L(a)*, i.e. one or
// more repetitions: concat(a, star(clone(a))).
func Plus(a *NFA) {
	tail := a.Clone()
	Star(tail)
	Concat(a, tail)
}

// Optional mutates a in place into an NFA accepting L(a) ∪ {ε}:
// union(a, emptyStringNFA()).
func Optional(a *NFA) {
	Union(a, EmptyString())
}

// EmptyString returns a fresh NFA with one state that is both start
// and accepting — the unit of concatenation and the base case for
// Optional.
func EmptyString() *NFA {
	n := New()
	s := n.AddState(true)
	n.Start = s
	return n
}

// Clone returns an independent deep copy of n: fresh state storage, no
// shared edges or slices with the original.
func (n *NFA) Clone() *NFA {
	clone := New()
	MergeStatesFrom(clone, n)
	clone.Start = n.Start
	clone.Accepting = append([]StateID(nil), n.Accepting...)
	return clone
}
