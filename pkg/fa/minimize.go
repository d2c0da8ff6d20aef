package fa

import (
	"strconv"
	"strings"
)

// MinimizeMoore returns the minimal complete deterministic automaton
// accepting the same language as a, computed by Moore's partition refinement.
//
// The input is determinized, pruned of non-accessible states and completed
// first. States are then split into final and non-final classes, and each
// class is refined by the classes of its successors until the partition is
// stable. Classes are numbered in ascending order of their smallest member.
func MinimizeMoore(a *Automaton) *Automaton {
	d := Determinize(a)
	d.keepOnly(d.accessible())
	d.ensureValid()
	d = Complete(d)

	states := d.States()
	symbols := d.Symbols()

	class := make(map[int]int, len(states))
	count := 0
	{
		seen := map[bool]int{}
		for _, s := range states {
			f := d.IsStateFinal(s)
			id, ok := seen[f]
			if !ok {
				id = len(seen)
				seen[f] = id
			}
			class[s] = id
		}
		count = len(seen)
	}

	for {
		sigs := make(map[string]int)
		next := make(map[int]int, len(states))
		for _, s := range states {
			key := signature(class[s], symbols, func(r rune) int { return class[d.target(s, r)] })
			id, ok := sigs[key]
			if !ok {
				id = len(sigs)
				sigs[key] = id
			}
			next[s] = id
		}
		class = next
		if len(sigs) == count {
			break
		}
		count = len(sigs)
	}

	m := New()
	for _, r := range symbols {
		m.AddSymbol(r)
	}
	for _, s := range states {
		c := class[s]
		m.AddState(c)
		if d.IsStateInitial(s) {
			m.SetStateInitial(c)
		}
		if d.IsStateFinal(s) {
			m.SetStateFinal(c)
		}
		for _, r := range symbols {
			m.AddTransition(c, r, class[d.target(s, r)])
		}
	}
	return m
}

// MinimizeBrzozowski returns the minimal complete deterministic automaton
// accepting the same language as a, computed as
// determinize(mirror(determinize(mirror(a)))).
//
// Both determinization steps always run the full subset construction, so
// the result is complete and accessible even when an intermediate
// automaton happens to be deterministic already.
func MinimizeBrzozowski(a *Automaton) *Automaton {
	return subsetConstruction(Mirror(subsetConstruction(Mirror(a))))
}

// target returns the single destination of s on r in a complete DFA.
func (a *Automaton) target(s int, r rune) int {
	for t := range a.delta[s][r] {
		return t
	}
	return -1
}

func signature(class int, symbols []rune, next func(rune) int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(class))
	for _, r := range symbols {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(next(r)))
	}
	return b.String()
}
