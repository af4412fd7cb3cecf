package automaton

import "testing"

func TestEdgeAccepts(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		c    rune
		want bool
	}{
		{"positive in range", Edge{Polarity: Positive, Ranges: []RuneRange{{'a', 'z'}}}, 'm', true},
		{"positive out of range", Edge{Polarity: Positive, Ranges: []RuneRange{{'a', 'z'}}}, 'M', false},
		{"negative in range", Edge{Polarity: Negative, Ranges: []RuneRange{{'a', 'z'}}}, 'm', false},
		{"negative out of range", Edge{Polarity: Negative, Ranges: []RuneRange{{'a', 'z'}}}, 'M', true},
		{"multi-range positive", Edge{Polarity: Positive, Ranges: []RuneRange{{'a', 'c'}, {'x', 'z'}}}, 'y', true},
		{"boundary low", Edge{Polarity: Positive, Ranges: []RuneRange{{'a', 'z'}}}, 'a', true},
		{"boundary high", Edge{Polarity: Positive, Ranges: []RuneRange{{'a', 'z'}}}, 'z', true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.edge.Accepts(tc.c); got != tc.want {
				t.Errorf("Accepts(%q) = %v, want %v", tc.c, got, tc.want)
			}
		})
	}
}

func TestNewSingleRangeEdgeInvalid(t *testing.T) {
	_, err := NewSingleRangeEdge('z', 'a', Positive, 0)
	if err == nil {
		t.Fatal("expected error for hi < lo")
	}
}

func TestEpsilonEdge(t *testing.T) {
	e := NewEpsilonEdge(3)
	if !e.IsEpsilon() {
		t.Fatal("NewEpsilonEdge should report IsEpsilon() == true")
	}
	if e.Accepts('a') {
		t.Fatal("an epsilon edge must never accept a real rune")
	}
	if !e.Accepts(Epsilon) {
		t.Fatal("an epsilon edge must accept the Epsilon sentinel")
	}
}

func TestEdgeClone(t *testing.T) {
	e := Edge{Polarity: Positive, Ranges: []RuneRange{{'a', 'z'}}, Dest: 1}
	clone := e.Clone()
	clone.Ranges[0].Lo = 'b'
	if e.Ranges[0].Lo != 'a' {
		t.Fatal("Clone must not share the underlying Ranges slice")
	}
}
