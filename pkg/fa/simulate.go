package fa

import (
	"maps"
	"slices"
)

// move returns the sorted set of states reachable from any state of from by
// exactly one transition labeled r. Epsilon is never followed.
func (a *Automaton) move(from []int, r rune) []int {
	if r == Epsilon {
		return []int{}
	}
	next := make(map[int]struct{})
	for _, s := range from {
		for t := range a.delta[s][r] {
			next[t] = struct{}{}
		}
	}
	out := slices.AppendSeq(make([]int, 0, len(next)), maps.Keys(next))
	slices.Sort(out)
	return out
}

// ReadString returns the set of states reached after reading word from the
// initial states, in ascending order. Epsilon transitions are not followed.
// A symbol outside the alphabet yields an empty, non-nil result.
func (a *Automaton) ReadString(word string) []int {
	current := a.InitialStates()
	for _, r := range word {
		if len(current) == 0 {
			break
		}
		current = a.move(current, r)
	}
	if current == nil {
		return []int{}
	}
	return current
}

// Match reports whether word is accepted: reading it from the initial
// states reaches at least one final state.
func (a *Automaton) Match(word string) bool {
	return slices.ContainsFunc(a.ReadString(word), a.IsStateFinal)
}
