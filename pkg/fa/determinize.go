package fa

import (
	"slices"
	"strconv"
	"strings"
)

// Determinize returns a deterministic automaton accepting the same language.
// An automaton that is already deterministic is returned as an unmodified copy.
// Otherwise the result is built by [subset construction] and is complete and
// accessible. Epsilon transitions are ignored.
//
// [subset construction]: https://en.wikipedia.org/wiki/Powerset_construction
func Determinize(a *Automaton) *Automaton {
	if a.IsDeterministic() {
		return a.Clone()
	}
	return subsetConstruction(a)
}

// subsetConstruction builds the DFA whose states are the subsets of a's
// states reachable from the set of initial states. State 0 is that initial
// subset; the others are numbered in discovery order. The empty subset, when
// reached, becomes an ordinary non-final state that loops on every symbol.
//
// An empty alphabet is replaced by [PlaceholderSymbol] so the result stays
// valid; the placeholder only ever leads to the empty subset.
func subsetConstruction(a *Automaton) *Automaton {
	symbols := a.Symbols()
	if len(symbols) == 0 {
		symbols = []rune{PlaceholderSymbol}
	}
	rows := [][]int{a.InitialStates()}
	index := map[string]int{subsetKey(rows[0]): 0}

	var moves []Transition
	for row := 0; row < len(rows); row++ {
		for _, r := range symbols {
			next := a.move(rows[row], r)
			key := subsetKey(next)
			id, ok := index[key]
			if !ok {
				id = len(rows)
				index[key] = id
				rows = append(rows, next)
			}
			moves = append(moves, Transition{From: row, Symbol: r, To: id})
		}
	}

	d := New()
	for _, r := range symbols {
		d.AddSymbol(r)
	}
	for id, subset := range rows {
		d.AddState(id)
		if slices.ContainsFunc(subset, a.IsStateFinal) {
			d.SetStateFinal(id)
		}
	}
	// Subsets are unique, so only row 0 equals the initial set.
	d.SetStateInitial(0)
	for _, t := range moves {
		d.AddTransition(t.From, t.Symbol, t.To)
	}
	return d
}

// subsetKey encodes a sorted subset as a map key.
func subsetKey(subset []int) string {
	var b strings.Builder
	for _, s := range subset {
		b.WriteString(strconv.Itoa(s))
		b.WriteByte(',')
	}
	return b.String()
}
