package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/automata/pkg/fa"
)

const epsilonLabel = "ε"

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	tableActiveStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Padding(0, 1)
)

// transitionRows returns the header and one row per state of the transition
// function. The first column marks initial states with "→" and final states
// with "*"; empty cells mean no transition.
func transitionRows(a *fa.Automaton) ([]string, [][]string) {
	symbols := a.Symbols()
	if a.HasEpsilonTransition() {
		symbols = append(symbols, fa.Epsilon)
	}

	headers := make([]string, 0, len(symbols)+1)
	headers = append(headers, "state")
	for _, r := range symbols {
		headers = append(headers, symbolLabel(r))
	}

	states := a.States()
	rows := make([][]string, 0, len(states))
	for _, s := range states {
		row := make([]string, 0, len(headers))
		row = append(row, stateLabel(a, s))
		for _, r := range symbols {
			row = append(row, joinInts(a.Successors(s, r)))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// transitionTable renders the transition function as a bordered table.
// States in active are highlighted.
func transitionTable(a *fa.Automaton, active []int) string {
	headers, rows := transitionRows(a)
	states := a.States()
	highlight := make(map[int]bool, len(active))
	for _, s := range active {
		highlight[s] = true
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row >= 0 && row < len(states) && highlight[states[row]] {
				return tableActiveStyle
			}
			return base
		})
	return t.Render()
}

func stateLabel(a *fa.Automaton, s int) string {
	var b strings.Builder
	if a.IsStateInitial(s) {
		b.WriteString("→")
	}
	if a.IsStateFinal(s) {
		b.WriteString("*")
	}
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	fmt.Fprint(&b, s)
	return b.String()
}

func symbolLabel(r rune) string {
	if r == fa.Epsilon {
		return epsilonLabel
	}
	return string(r)
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}
