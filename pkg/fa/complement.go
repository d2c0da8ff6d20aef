package fa

// Complement returns a complete deterministic automaton over the same
// alphabet accepting exactly the words of Σ* that a rejects.
func Complement(a *Automaton) *Automaton {
	c := Complete(Determinize(a))
	for id, s := range c.states {
		s.Final = !s.Final
		c.states[id] = s
	}
	return c
}
