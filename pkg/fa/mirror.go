package fa

// Mirror returns the reverse automaton: same alphabet and states, every
// transition reversed, initial and final flags swapped. It accepts the
// reversal of every word accepted by a.
func Mirror(a *Automaton) *Automaton {
	m := New()
	for r := range a.alphabet {
		m.AddSymbol(r)
	}
	for id, s := range a.states {
		m.AddState(id)
		if s.Final {
			m.SetStateInitial(id)
		}
		if s.Initial {
			m.SetStateFinal(id)
		}
	}
	for _, t := range a.Transitions() {
		m.AddTransition(t.To, t.Symbol, t.From)
	}
	return m
}
