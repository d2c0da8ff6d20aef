package fa

// Product returns the synchronous product of lhs and rhs, which accepts the
// intersection of both languages.
//
// Product states are numbered densely: the pair formed by the i-th state of
// lhs and the j-th state of rhs (both in ascending ID order) gets ID
// i*rhs.CountStates()+j. A pair is initial (final) iff both components are.
// A transition (p,q) --x--> (p',q') exists iff p --x--> p' and q --x--> q'.
// The alphabet holds only the symbols used by at least one such transition.
// If no symbol is used, the result is reseeded with [PlaceholderSymbol].
func Product(lhs, rhs *Automaton) *Automaton {
	ls, rs := lhs.States(), rhs.States()
	lpos, rpos := positions(ls), positions(rs)
	id := func(i, j int) int { return i*len(rs) + j }

	p := New()
	for i, l := range ls {
		for j, r := range rs {
			p.AddState(id(i, j))
			if lhs.IsStateInitial(l) && rhs.IsStateInitial(r) {
				p.SetStateInitial(id(i, j))
			}
			if lhs.IsStateFinal(l) && rhs.IsStateFinal(r) {
				p.SetStateFinal(id(i, j))
			}
		}
	}
	for i, l := range ls {
		for sym, ltos := range lhs.delta[l] {
			for j, r := range rs {
				rtos := rhs.delta[r][sym]
				if len(rtos) == 0 {
					continue
				}
				p.AddSymbol(sym)
				for lto := range ltos {
					for rto := range rtos {
						p.AddTransition(id(i, j), sym, id(lpos[lto], rpos[rto]))
					}
				}
			}
		}
	}
	p.ensureValid()
	return p
}

// positions maps each ID to its index in ids.
func positions(ids []int) map[int]int {
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	return pos
}
