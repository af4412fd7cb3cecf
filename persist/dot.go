package persist

import (
	"fmt"
	"strings"

	"github.com/kodelint/nfalex/automaton"
)

// ToDot renders n as a Graphviz directed graph: the start state is
// drawn oval, accepting states octagonal, all others boxes. Each edge
// becomes a labelled directed edge whose label is "(+|-) <range>
// <range> …", or just "eps" for an epsilon edge, with `"` escaped
// inside the label.
func ToDot(n *automaton.NFA) string {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("\trankdir=LR;\n")

	for i := range n.States {
		id := automaton.StateID(i)
		shape := "box"
		if n.IsAccepting(id) {
			shape = "octagon"
		}
		if id == n.Start {
			shape = "oval"
		}
		fmt.Fprintf(&b, "\t%d [shape=%s];\n", id, shape)
	}

	for i, s := range n.States {
		for _, e := range s.Edges {
			fmt.Fprintf(&b, "\t%d -> %d [label=%q];\n", i, e.Dest, edgeLabel(e))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func edgeLabel(e automaton.Edge) string {
	if e.IsEpsilon() {
		return "eps"
	}
	var b strings.Builder
	b.WriteString(e.Polarity.String())
	for _, r := range e.Ranges {
		b.WriteByte(' ')
		if r.Lo == r.Hi {
			fmt.Fprintf(&b, "%c", r.Lo)
		} else {
			fmt.Fprintf(&b, "%c-%c", r.Lo, r.Hi)
		}
	}
	return b.String()
}
