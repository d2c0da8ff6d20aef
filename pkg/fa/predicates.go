package fa

// HasEpsilonTransition reports whether at least one transition is labeled [Epsilon].
func (a *Automaton) HasEpsilonTransition() bool {
	for _, bySymbol := range a.delta {
		if len(bySymbol[Epsilon]) > 0 {
			return true
		}
	}
	return false
}

// IsDeterministic reports whether the automaton has exactly one initial
// state, no epsilon transitions, and at most one destination per
// (state, symbol) pair.
func (a *Automaton) IsDeterministic() bool {
	initial := 0
	for _, s := range a.states {
		if s.Initial {
			initial++
		}
	}
	if initial != 1 {
		return false
	}
	for _, bySymbol := range a.delta {
		for r, tos := range bySymbol {
			if r == Epsilon || len(tos) > 1 {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether every state has at least one outgoing
// transition for every symbol of the alphabet. Epsilon transitions do not count.
func (a *Automaton) IsComplete() bool {
	for id := range a.states {
		for r := range a.alphabet {
			if len(a.delta[id][r]) == 0 {
				return false
			}
		}
	}
	return true
}
