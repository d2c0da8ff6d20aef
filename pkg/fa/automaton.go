package fa

import (
	"maps"
	"slices"
	"unicode"
)

// Epsilon is the reserved symbol labelling empty transitions.
// It is accepted by [Automaton.AddTransition] but never by [Automaton.AddSymbol],
// so it is never a member of an alphabet.
const Epsilon rune = 0

// Placeholders inserted by operations whose natural result would otherwise
// be invalid (no state or no symbol). See [Automaton.IsValid].
const (
	// PlaceholderState is added, and marked initial, when a result has no states.
	PlaceholderState = 0
	// PlaceholderSymbol is added when a result has an empty alphabet.
	PlaceholderSymbol = 'a'
)

// State holds the flags of a state. The state itself is identified by its
// non-negative integer ID, which is the key in the automaton's state map.
type State struct {
	Initial bool
	Final   bool
}

// Transition is a labeled edge From --Symbol--> To.
// Symbol is either a member of the alphabet or [Epsilon].
type Transition struct {
	From   int
	Symbol rune
	To     int
}

// Automaton is a finite automaton: an alphabet, a set of states with
// initial/final flags, and a set of labeled transitions.
//
// The zero value is not usable - use [New] to create an automaton.
// An Automaton is not safe for concurrent use without external synchronization.
type Automaton struct {
	alphabet map[rune]struct{}
	states   map[int]State
	delta    map[int]map[rune]map[int]struct{} // from -> symbol -> destinations
	ntrans   int
}

// New creates an empty automaton with no symbols, states or transitions.
// The result is not valid until at least one state and one symbol are added.
func New() *Automaton {
	return &Automaton{
		alphabet: make(map[rune]struct{}),
		states:   make(map[int]State),
		delta:    make(map[int]map[rune]map[int]struct{}),
	}
}

// Clone returns a deep copy of the automaton.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		alphabet: maps.Clone(a.alphabet),
		states:   maps.Clone(a.states),
		delta:    make(map[int]map[rune]map[int]struct{}, len(a.delta)),
		ntrans:   a.ntrans,
	}
	for from, bySymbol := range a.delta {
		m := make(map[rune]map[int]struct{}, len(bySymbol))
		for r, tos := range bySymbol {
			m[r] = maps.Clone(tos)
		}
		c.delta[from] = m
	}
	return c
}

// IsValid reports whether the automaton has at least one state and one symbol.
func (a *Automaton) IsValid() bool {
	return len(a.states) > 0 && len(a.alphabet) > 0
}

// IsValidSymbol reports whether r can be part of an alphabet: a graphic,
// non-space rune other than [Epsilon].
func IsValidSymbol(r rune) bool {
	return r != Epsilon && unicode.IsGraphic(r) && !unicode.IsSpace(r)
}

// AddSymbol adds r to the alphabet. It returns false if r is [Epsilon],
// not printable, or already present.
func (a *Automaton) AddSymbol(r rune) bool {
	if !IsValidSymbol(r) || a.HasSymbol(r) {
		return false
	}
	a.alphabet[r] = struct{}{}
	return true
}

// RemoveSymbol removes r from the alphabet along with every transition
// labeled r. It returns false if r was not in the alphabet.
func (a *Automaton) RemoveSymbol(r rune) bool {
	if !a.HasSymbol(r) {
		return false
	}
	delete(a.alphabet, r)
	for from, bySymbol := range a.delta {
		a.ntrans -= len(bySymbol[r])
		delete(bySymbol, r)
		if len(bySymbol) == 0 {
			delete(a.delta, from)
		}
	}
	return true
}

// HasSymbol reports whether r is in the alphabet.
func (a *Automaton) HasSymbol(r rune) bool {
	_, ok := a.alphabet[r]
	return ok
}

// CountSymbols returns the size of the alphabet.
func (a *Automaton) CountSymbols() int { return len(a.alphabet) }

// Symbols returns the alphabet in ascending order.
func (a *Automaton) Symbols() []rune {
	return slices.Sorted(maps.Keys(a.alphabet))
}

// AddState adds a non-initial, non-final state. It returns false if id is
// negative or already used.
func (a *Automaton) AddState(id int) bool {
	if id < 0 || a.HasState(id) {
		return false
	}
	a.states[id] = State{}
	return true
}

// RemoveState removes the state and every transition where it is the
// source or the destination. It returns false if the state did not exist.
func (a *Automaton) RemoveState(id int) bool {
	if !a.HasState(id) {
		return false
	}
	delete(a.states, id)
	for _, tos := range a.delta[id] {
		a.ntrans -= len(tos)
	}
	delete(a.delta, id)
	for from, bySymbol := range a.delta {
		for r, tos := range bySymbol {
			if _, ok := tos[id]; !ok {
				continue
			}
			delete(tos, id)
			a.ntrans--
			if len(tos) == 0 {
				delete(bySymbol, r)
			}
		}
		if len(bySymbol) == 0 {
			delete(a.delta, from)
		}
	}
	return true
}

// HasState reports whether the state exists.
func (a *Automaton) HasState(id int) bool {
	_, ok := a.states[id]
	return ok
}

// CountStates returns the number of states.
func (a *Automaton) CountStates() int { return len(a.states) }

// States returns all state IDs in ascending order.
func (a *Automaton) States() []int {
	return slices.Sorted(maps.Keys(a.states))
}

// SetStateInitial marks the state initial. Unknown states are ignored.
func (a *Automaton) SetStateInitial(id int) {
	if s, ok := a.states[id]; ok {
		s.Initial = true
		a.states[id] = s
	}
}

// IsStateInitial reports whether the state exists and is initial.
func (a *Automaton) IsStateInitial(id int) bool { return a.states[id].Initial }

// SetStateFinal marks the state final. Unknown states are ignored.
func (a *Automaton) SetStateFinal(id int) {
	if s, ok := a.states[id]; ok {
		s.Final = true
		a.states[id] = s
	}
}

// IsStateFinal reports whether the state exists and is final.
func (a *Automaton) IsStateFinal(id int) bool { return a.states[id].Final }

// InitialStates returns the initial state IDs in ascending order.
func (a *Automaton) InitialStates() []int {
	return slices.DeleteFunc(a.States(), func(id int) bool { return !a.states[id].Initial })
}

// FinalStates returns the final state IDs in ascending order.
func (a *Automaton) FinalStates() []int {
	return slices.DeleteFunc(a.States(), func(id int) bool { return !a.states[id].Final })
}

// AddTransition adds from --r--> to. It returns false if either state is
// unknown, r is neither [Epsilon] nor in the alphabet, or the transition
// already exists.
func (a *Automaton) AddTransition(from int, r rune, to int) bool {
	if !a.HasState(from) || !a.HasState(to) {
		return false
	}
	if r != Epsilon && !a.HasSymbol(r) {
		return false
	}
	if a.HasTransition(from, r, to) {
		return false
	}
	bySymbol, ok := a.delta[from]
	if !ok {
		bySymbol = make(map[rune]map[int]struct{})
		a.delta[from] = bySymbol
	}
	tos, ok := bySymbol[r]
	if !ok {
		tos = make(map[int]struct{})
		bySymbol[r] = tos
	}
	tos[to] = struct{}{}
	a.ntrans++
	return true
}

// RemoveTransition removes from --r--> to. It returns false if the
// transition did not exist.
func (a *Automaton) RemoveTransition(from int, r rune, to int) bool {
	if !a.HasTransition(from, r, to) {
		return false
	}
	bySymbol := a.delta[from]
	delete(bySymbol[r], to)
	if len(bySymbol[r]) == 0 {
		delete(bySymbol, r)
	}
	if len(bySymbol) == 0 {
		delete(a.delta, from)
	}
	a.ntrans--
	return true
}

// HasTransition reports whether from --r--> to exists.
func (a *Automaton) HasTransition(from int, r rune, to int) bool {
	_, ok := a.delta[from][r][to]
	return ok
}

// CountTransitions returns the number of transitions.
func (a *Automaton) CountTransitions() int { return a.ntrans }

// Transitions returns every transition ordered by source, symbol, then destination.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, 0, a.ntrans)
	for _, from := range slices.Sorted(maps.Keys(a.delta)) {
		bySymbol := a.delta[from]
		for _, r := range slices.Sorted(maps.Keys(bySymbol)) {
			for _, to := range slices.Sorted(maps.Keys(bySymbol[r])) {
				out = append(out, Transition{From: from, Symbol: r, To: to})
			}
		}
	}
	return out
}

// Successors returns the destinations of the transitions leaving from with
// symbol r, in ascending order. Returns nil if there are none.
func (a *Automaton) Successors(from int, r rune) []int {
	tos := a.delta[from][r]
	if len(tos) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(tos))
}

// freeState returns the smallest non-negative ID not used by a state.
func (a *Automaton) freeState() int {
	id := 0
	for a.HasState(id) {
		id++
	}
	return id
}

// ensureValid reseeds an empty state set or alphabet with the placeholders.
func (a *Automaton) ensureValid() {
	if len(a.states) == 0 {
		a.AddState(PlaceholderState)
		a.SetStateInitial(PlaceholderState)
	}
	if len(a.alphabet) == 0 {
		a.AddSymbol(PlaceholderSymbol)
	}
}
