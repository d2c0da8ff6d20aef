package fa

// Complete returns a copy of a where every state has an outgoing transition
// for every symbol. Missing transitions are routed to a new non-final sink
// state, numbered with the smallest unused ID, which loops on every symbol.
// If a is already complete, an unmodified copy is returned.
func Complete(a *Automaton) *Automaton {
	c := a.Clone()
	if c.IsComplete() {
		return c
	}
	sink := c.freeState()
	c.AddState(sink)
	symbols := c.Symbols()
	for _, id := range c.States() {
		for _, r := range symbols {
			if len(c.delta[id][r]) == 0 {
				c.AddTransition(id, r, sink)
			}
		}
	}
	return c
}
