package fa

import "iter"

// search walks depth-first from seeds using an explicit stack, following
// next for successors. It stops as soon as stop returns true for a visited
// state and reports whether that happened. A nil stop visits everything
// reachable.
func search(seeds []int, next func(int) iter.Seq[int], stop func(int) bool) (map[int]struct{}, bool) {
	seen := make(map[int]struct{})
	stack := append([]int(nil), seeds...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		if stop != nil && stop(s) {
			return seen, true
		}
		for t := range next(s) {
			if _, ok := seen[t]; !ok {
				stack = append(stack, t)
			}
		}
	}
	return seen, false
}

// forward yields every destination of a transition leaving s, epsilon included.
func (a *Automaton) forward(s int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, tos := range a.delta[s] {
			for t := range tos {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// backward returns a successor function over the reversed transition graph.
func (a *Automaton) backward() func(int) iter.Seq[int] {
	rev := make(map[int][]int, len(a.delta))
	for from, bySymbol := range a.delta {
		for _, tos := range bySymbol {
			for to := range tos {
				rev[to] = append(rev[to], from)
			}
		}
	}
	return func(s int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, t := range rev[s] {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// accessible returns the states reachable from an initial state.
func (a *Automaton) accessible() map[int]struct{} {
	seen, _ := search(a.InitialStates(), a.forward, nil)
	return seen
}

// coAccessible returns the states from which a final state is reachable.
func (a *Automaton) coAccessible() map[int]struct{} {
	seen, _ := search(a.FinalStates(), a.backward(), nil)
	return seen
}

// keepOnly removes every state not in keep, with its incident transitions,
// and reports whether anything was removed.
func (a *Automaton) keepOnly(keep map[int]struct{}) bool {
	if len(keep) == len(a.states) {
		return false
	}
	for _, id := range a.States() {
		if _, ok := keep[id]; !ok {
			a.RemoveState(id)
		}
	}
	return true
}

// RemoveNonAccessibleStates removes every state that cannot be reached from
// an initial state. When every state is accessible the automaton is left
// untouched. If pruning empties the automaton, it is reseeded with
// [PlaceholderState] (initial) and, if needed, [PlaceholderSymbol].
func (a *Automaton) RemoveNonAccessibleStates() {
	if a.keepOnly(a.accessible()) {
		a.ensureValid()
	}
}

// RemoveNonCoAccessibleStates removes every state from which no final state
// can be reached, reseeding like [Automaton.RemoveNonAccessibleStates].
func (a *Automaton) RemoveNonCoAccessibleStates() {
	if a.keepOnly(a.coAccessible()) {
		a.ensureValid()
	}
}

// IsLanguageEmpty reports whether no final state is reachable from an
// initial state. The search stops at the first final state found.
func (a *Automaton) IsLanguageEmpty() bool {
	_, found := search(a.InitialStates(), a.forward, a.IsStateFinal)
	return !found
}
