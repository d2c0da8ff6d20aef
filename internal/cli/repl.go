package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/automata/pkg/errors"
	"github.com/matzehuels/automata/pkg/fa"
)

const replHistory = 8

var (
	replPromptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	replCursorStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ReplModel - Interactive word simulation
// =============================================================================

// replEntry is a word submitted with enter.
type replEntry struct {
	Word     string
	Accepted bool
}

// ReplModel is the bubbletea model for the interactive simulator. Every
// keystroke re-reads the current word and highlights the reached states.
type ReplModel struct {
	Name      string
	Automaton *fa.Automaton
	Word      []rune
	Reached   []int
	Accepted  bool
	History   []replEntry // most recent last, at most replHistory
	Submitted int
}

// NewReplModel creates a simulator positioned after reading word.
func NewReplModel(name string, a *fa.Automaton, word string) ReplModel {
	m := ReplModel{Name: name, Automaton: a, Word: []rune(word)}
	m.read()
	return m
}

func (m *ReplModel) read() {
	w := string(m.Word)
	m.Reached = m.Automaton.ReadString(w)
	m.Accepted = m.Automaton.Match(w)
}

func (m ReplModel) Init() tea.Cmd {
	return nil
}

func (m ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.Submitted++
		m.History = append(m.History, replEntry{Word: string(m.Word), Accepted: m.Accepted})
		if len(m.History) > replHistory {
			m.History = m.History[len(m.History)-replHistory:]
		}
		m.Word = nil
	case tea.KeyBackspace:
		if len(m.Word) > 0 {
			m.Word = m.Word[:len(m.Word)-1]
		}
	case tea.KeyCtrlU:
		m.Word = nil
	case tea.KeySpace:
		m.Word = append(m.Word, ' ')
	case tea.KeyRunes:
		m.Word = append(m.Word, key.Runes...)
	default:
		return m, nil
	}
	m.read()
	return m, nil
}

func (m ReplModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Name))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("type a word  ⏎ submit  ⌫ erase  ctrl+u clear  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(replPromptStyle.Render("> "))
	b.WriteString(StyleValue.Render(string(m.Word)))
	b.WriteString(replCursorStyle.Render("▏"))
	b.WriteString("\n")

	verdict := StyleError.Render(iconError + " rejected")
	if m.Accepted {
		verdict = StyleSuccess.Render(iconSuccess + " accepted")
	}
	fmt.Fprintf(&b, "%s %s  %s\n\n",
		StyleDim.Render("states"),
		StyleHighlight.Render(formatStates(m.Reached)),
		verdict)

	b.WriteString(transitionTable(m.Automaton, m.Reached))
	b.WriteString("\n")

	for i := len(m.History) - 1; i >= 0; i-- {
		e := m.History[i]
		icon := styleIconError.Render(iconError)
		if e.Accepted {
			icon = styleIconSuccess.Render(iconSuccess)
		}
		b.WriteString(icon + " " + quoteWord(e.Word) + "\n")
	}

	return b.String()
}

// replCommand creates the repl command running the interactive simulator.
func (c *CLI) replCommand() *cobra.Command {
	var word string

	cmd := &cobra.Command{
		Use:   "repl [definition.toml]",
		Short: "Interactively simulate words on an automaton",
		Long: `Interactively simulate words on an automaton.

The set of reached states and the acceptance verdict are updated on every
keystroke, and the reached states are highlighted in the transition table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateWord(word); err != nil {
				return err
			}
			l, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			name := l.Name
			if name == "" {
				name = args[0]
			}

			p := tea.NewProgram(NewReplModel(name, l.Automaton, word), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(ReplModel); ok && fm.Submitted > 0 {
				printDetail("%d words submitted", fm.Submitted)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&word, "word", "w", "", "initial word")

	return cmd
}
