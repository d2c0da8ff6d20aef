package fa

import (
	"fmt"
	"io"
	"strings"
)

// PrettyPrint writes a human-readable listing of the automaton to w:
// initial states, final states, then for every state and every symbol the
// destinations of the matching transitions. Epsilon transitions are not listed.
//
//	Initial states:
//		0
//	Final states:
//		1
//	Transitions:
//		For state 0 :
//			For letter a : 1
//		...
func (a *Automaton) PrettyPrint(w io.Writer) error {
	_, err := io.WriteString(w, a.String())
	return err
}

// String returns the listing written by [Automaton.PrettyPrint].
func (a *Automaton) String() string {
	var b strings.Builder
	b.WriteString("Initial states:\n\t")
	for _, s := range a.InitialStates() {
		fmt.Fprintf(&b, "%d ", s)
	}
	b.WriteString("\nFinal states:\n\t")
	for _, s := range a.FinalStates() {
		fmt.Fprintf(&b, "%d ", s)
	}
	b.WriteString("\nTransitions:\n")
	symbols := a.Symbols()
	for _, s := range a.States() {
		fmt.Fprintf(&b, "\tFor state %d :\n", s)
		for _, r := range symbols {
			fmt.Fprintf(&b, "\t\tFor letter %c : ", r)
			for _, t := range a.Successors(s, r) {
				fmt.Fprintf(&b, "%d ", t)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
