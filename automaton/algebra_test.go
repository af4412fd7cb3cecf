package automaton

import "testing"

// acceptSlow is a brute-force backtracking acceptor used only to check
// the algebra's output against an independent implementation.
func acceptSlow(n *NFA, s StateID, input []rune) bool {
	if len(input) == 0 && n.IsAccepting(s) {
		return true
	}
	for _, e := range n.States[s].Edges {
		if e.IsEpsilon() {
			if acceptSlow(n, e.Dest, input) {
				return true
			}
			continue
		}
		if len(input) == 0 {
			continue
		}
		if e.Accepts(input[0]) && acceptSlow(n, e.Dest, input[1:]) {
			return true
		}
	}
	return false
}

func accept(n *NFA, input string) bool {
	return acceptSlow(n, n.Start, []rune(input))
}

func literal(r rune) *NFA {
	n := New()
	start := n.AddState(false)
	end := n.AddState(true)
	n.Start = start
	_, _ = n.AddSingleEdge(start, end, r, r, Positive)
	return n
}

func TestConcat(t *testing.T) {
	a := literal('a')
	b := literal('b')
	Concat(a, b)

	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"ab", true},
		{"a", false},
		{"b", false},
		{"ba", false},
		{"", false},
	} {
		if got := accept(a, tc.in); got != tc.want {
			t.Errorf("concat(a,b) accept(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestUnion(t *testing.T) {
	a := literal('a')
	b := literal('b')
	Union(a, b)

	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"a", true},
		{"b", true},
		{"c", false},
		{"", false},
		{"ab", false},
	} {
		if got := accept(a, tc.in); got != tc.want {
			t.Errorf("union(a,b) accept(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStar(t *testing.T) {
	a := literal('a')
	Star(a)

	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", true},
		{"a", true},
		{"aaaa", true},
		{"aab", false},
		{"b", false},
	} {
		if got := accept(a, tc.in); got != tc.want {
			t.Errorf("star(a) accept(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPlus(t *testing.T) {
	a := literal('a')
	Plus(a)

	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", false},
		{"a", true},
		{"aaa", true},
		{"aab", false},
	} {
		if got := accept(a, tc.in); got != tc.want {
			t.Errorf("plus(a) accept(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestOptional(t *testing.T) {
	a := literal('a')
	Optional(a)

	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", true},
		{"a", true},
		{"aa", false},
		{"b", false},
	} {
		if got := accept(a, tc.in); got != tc.want {
			t.Errorf("optional(a) accept(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := literal('a')
	clone := a.Clone()

	Concat(clone, literal('b'))

	if accept(a, "ab") {
		t.Fatal("mutating a clone must not affect the original NFA")
	}
	if !accept(clone, "ab") {
		t.Fatal("clone should independently accept the concatenated language")
	}
}

func TestMergeStatesFromOffset(t *testing.T) {
	dest := literal('x')
	src := literal('y')
	offset := MergeStatesFrom(dest, src)
	if offset != StateID(dest.NumStates())-StateID(src.NumStates()) {
		t.Fatalf("unexpected offset %d", offset)
	}
	// every edge copied from src must have been shifted by offset
	for i := int(offset); i < dest.NumStates(); i++ {
		for _, e := range dest.States[i].Edges {
			if e.Dest < offset {
				t.Fatalf("copied edge destination %d was not shifted past offset %d", e.Dest, offset)
			}
		}
	}
}
