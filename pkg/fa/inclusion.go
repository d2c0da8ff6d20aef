package fa

// HasEmptyIntersectionWith reports whether no word is accepted by both a
// and other.
func (a *Automaton) HasEmptyIntersectionWith(other *Automaton) bool {
	return Product(a, other).IsLanguageEmpty()
}

// IsIncludedIn reports whether every word accepted by a is accepted by other.
//
// If the complement of other over its own alphabet accepts nothing while a
// accepts something, the result is false. Otherwise a is intersected with
// the complement of other taken over the union of both alphabets, so words
// using symbols that other does not know count as rejected by other.
func (a *Automaton) IsIncludedIn(other *Automaton) bool {
	if Complement(other).IsLanguageEmpty() && !a.IsLanguageEmpty() {
		return false
	}
	ext := other.Clone()
	for r := range a.alphabet {
		ext.AddSymbol(r)
	}
	return a.HasEmptyIntersectionWith(Complement(ext))
}
