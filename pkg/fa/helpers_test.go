package fa

import (
	"slices"
	"testing"
)

// fixture describes an automaton declaratively for table-driven tests.
type fixture struct {
	symbols string
	states  []int
	initial []int
	final   []int
	trans   []Transition
}

func (f fixture) build(t *testing.T) *Automaton {
	t.Helper()
	a := New()
	for _, r := range f.symbols {
		if !a.AddSymbol(r) {
			t.Fatalf("AddSymbol(%q) = false", r)
		}
	}
	for _, s := range f.states {
		if !a.AddState(s) {
			t.Fatalf("AddState(%d) = false", s)
		}
	}
	for _, s := range f.initial {
		a.SetStateInitial(s)
	}
	for _, s := range f.final {
		a.SetStateFinal(s)
	}
	for _, tr := range f.trans {
		if !a.AddTransition(tr.From, tr.Symbol, tr.To) {
			t.Fatalf("AddTransition(%d, %q, %d) = false", tr.From, tr.Symbol, tr.To)
		}
	}
	return a
}

// words returns every word over symbols of length at most n.
func words(symbols []rune, n int) []string {
	out := []string{""}
	frontier := []string{""}
	for range n {
		var next []string
		for _, w := range frontier {
			for _, r := range symbols {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

// sameLanguage fails the test if a and b disagree on any word over symbols
// of length at most n.
func sameLanguage(t *testing.T, a, b *Automaton, symbols []rune, n int) {
	t.Helper()
	for _, w := range words(symbols, n) {
		if a.Match(w) != b.Match(w) {
			t.Errorf("Match(%q): %v vs %v", w, a.Match(w), b.Match(w))
		}
	}
}

func reversed(w string) string {
	r := []rune(w)
	slices.Reverse(r)
	return string(r)
}

// Shared fixtures.
var (
	// endsWithA accepts words over {a,b} ending with 'a' (non-deterministic).
	endsWithA = fixture{
		symbols: "ab",
		states:  []int{0, 1},
		initial: []int{0},
		final:   []int{1},
		trans: []Transition{
			{0, 'a', 0}, {0, 'b', 0}, {0, 'a', 1},
		},
	}

	// oddB accepts words over {a,b} with an odd number of 'b' (complete DFA).
	oddB = fixture{
		symbols: "ab",
		states:  []int{0, 1},
		initial: []int{0},
		final:   []int{1},
		trans: []Transition{
			{0, 'a', 0}, {0, 'b', 1}, {1, 'a', 1}, {1, 'b', 0},
		},
	}

	// aPlusB accepts a+b through two states looping on 'a' into each other.
	aPlusB = fixture{
		symbols: "ab",
		states:  []int{0, 1, 2},
		initial: []int{0},
		final:   []int{2},
		trans: []Transition{
			{0, 'a', 0}, {0, 'a', 1}, {1, 'a', 1}, {1, 'a', 0}, {1, 'b', 2},
		},
	}
)
