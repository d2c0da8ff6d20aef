// Package fa provides a mutable finite automaton over a rune alphabet and
// the classic constructions on regular languages.
//
// # Overview
//
// An [Automaton] owns three things: an alphabet of printable runes, a set
// of states identified by non-negative integers (each carrying independent
// initial and final flags), and a set of labeled transitions. Several
// states may be initial or final, and several transitions may share a
// source and symbol, so automata are non-deterministic in general.
//
// # Basic Usage
//
// Create an automaton with [New], then add symbols, states and transitions.
// Every mutator reports success with a boolean and leaves the automaton
// unchanged on rejection (negative IDs, unknown endpoints, duplicates,
// symbols outside the alphabet):
//
//	a := fa.New()
//	a.AddSymbol('a')
//	a.AddState(0)
//	a.AddState(1)
//	a.SetStateInitial(0)
//	a.SetStateFinal(1)
//	a.AddTransition(0, 'a', 1)
//	a.Match("a") // true
//
// An automaton is valid ([Automaton.IsValid]) once it has at least one state
// and one symbol.
//
// # Epsilon Transitions
//
// The reserved rune [Epsilon] may label a transition but is never part of
// an alphabet. Epsilon transitions are structural only: simulation,
// determinization and completeness ignore them. Reachability (pruning and
// emptiness) follows every edge, epsilon included.
//
// # Constructions
//
// The package-level functions build a new automaton and never modify their
// inputs:
//
//   - [Mirror]: reverses every transition and swaps initial and final flags
//   - [Complete]: routes missing transitions to a fresh sink state
//   - [Product]: synchronous product, accepting the intersection
//   - [Determinize]: subset construction
//   - [Complement]: complete DFA accepting the complement language
//   - [MinimizeMoore]: partition refinement
//   - [MinimizeBrzozowski]: double reversal with determinization
//
// [Automaton.RemoveNonAccessibleStates] and
// [Automaton.RemoveNonCoAccessibleStates] are the only operations that
// modify the receiver.
//
// # Placeholders
//
// Constructions that would otherwise return an automaton with no states or
// no symbols insert [PlaceholderState] (marked initial) or
// [PlaceholderSymbol] so their result stays valid. This applies to pruning
// and to [Product]; the other constructions preserve validity on their own.
//
// # Concurrency
//
// Automaton values are not safe for concurrent use. Constructions only read
// their inputs, so several goroutines may derive new automata from the same
// unmodified source.
package fa
