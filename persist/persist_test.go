package persist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/kodelint/nfalex/automaton"
	"github.com/kodelint/nfalex/sim"
)

// nfaCmpOpts treats nil and empty slices as equal, since Read/Write
// round-tripping is not expected to preserve a nil-vs-empty
// distinction in Accepting or Edges.
var nfaCmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

func TestReadWriteRoundTrip(t *testing.T) {
	n := automaton.New()
	s0 := n.AddState(false)
	s1 := n.AddState(true)
	n.Start = s0
	_, _ = n.AddSingleEdge(s0, s1, 'a', 'z', automaton.Positive)
	n.AddEpsilonEdge(s0, s1)

	text := Write(n)
	got, err := Read(text)
	if err != nil {
		t.Fatalf("Read(Write(n)) failed: %v", err)
	}

	if diff := cmp.Diff(n, got, nfaCmpOpts...); diff != "" {
		t.Errorf("round-tripped NFA differs (-want +got):\n%s", diff)
	}
	if got.NumStates() != n.NumStates() {
		t.Errorf("states = %d, want %d", got.NumStates(), n.NumStates())
	}
	if !sim.Accepts(got, "m") {
		t.Error("round-tripped NFA should still accept \"m\"")
	}
}

func TestReadBasic(t *testing.T) {
	text := "start:0\naccept:1\n0-1:+a-z\n"
	n, err := Read(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Start != 0 {
		t.Errorf("start = %d, want 0", n.Start)
	}
	if !sim.Accepts(n, "q") {
		t.Error(`expected "q" to be accepted`)
	}
	if sim.Accepts(n, "Q") {
		t.Error(`expected "Q" to be rejected`)
	}
}

func TestReadDefaultsStartToZero(t *testing.T) {
	text := "accept:0\n"
	n, err := Read(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Start != 0 {
		t.Errorf("start = %d, want 0 (default)", n.Start)
	}
}

func TestReadAutoExtendsArena(t *testing.T) {
	text := "start:0\naccept:5\n0-5:+a-a\n"
	n, err := Read(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.NumStates() != 6 {
		t.Errorf("NumStates() = %d, want 6 (auto-extended to cover state 5)", n.NumStates())
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad start", "start:x\n"},
		{"bad accept", "accept:x\n"},
		{"malformed transition", "garbage line\n"},
		{"bad polarity", "0-1:x a-z\n"},
		{"missing range", "0-1:+\n"},
		{"bad range order", "0-1:+z-a\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(tc.text)
			if err == nil {
				t.Fatalf("Read(%q) expected error, got nil", tc.text)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error %v is not a *FormatError", err)
			}
		})
	}
}

func TestEscapedCharsRoundTrip(t *testing.T) {
	n := automaton.New()
	s0 := n.AddState(false)
	s1 := n.AddState(true)
	n.Start = s0
	_, _ = n.AddSingleEdge(s0, s1, ' ', ' ', automaton.Positive)
	n.AddEdge(s0, automaton.Edge{Polarity: automaton.Positive, Ranges: []automaton.RuneRange{{'-', '-'}}, Dest: s1})

	text := Write(n)
	got, err := Read(text)
	if err != nil {
		t.Fatalf("Read(Write(n)) failed: %v", err)
	}
	if !sim.Accepts(got, " ") {
		t.Error(`expected " " to round-trip and be accepted`)
	}
	if !sim.Accepts(got, "-") {
		t.Error(`expected "-" to round-trip and be accepted`)
	}
}
