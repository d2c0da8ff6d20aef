package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/automata/pkg/pipeline"
)

// infoCommand creates the info command describing a definition file.
func (c *CLI) infoCommand() *cobra.Command {
	var showTable bool

	cmd := &cobra.Command{
		Use:   "info [definition.toml]",
		Short: "Show counts and properties of an automaton",
		Long: `Show counts and properties of an automaton.

Reports the alphabet, the number of states and transitions, and whether the
automaton is deterministic, complete, uses epsilon transitions, and whether
its language is empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(cmd.Context(), args[0], showTable)
		},
	}

	cmd.Flags().BoolVarP(&showTable, "table", "t", true, "render the transition table")

	return cmd
}

func (c *CLI) runInfo(ctx context.Context, path string, showTable bool) error {
	l, err := c.load(ctx, path)
	if err != nil {
		return err
	}
	a := l.Automaton

	name := l.Name
	if name == "" {
		name = path
	}
	fmt.Fprintln(stdout, StyleTitle.Render(name))
	printKeyValue("alphabet", string(a.Symbols()))
	printKeyValue("states", fmt.Sprint(a.CountStates()))
	printKeyValue("transitions", fmt.Sprint(a.CountTransitions()))
	printKeyValue("initial", formatStates(a.InitialStates()))
	printKeyValue("final", formatStates(a.FinalStates()))
	printKeyValue("valid", yesNo(a.IsValid()))
	printKeyValue("deterministic", yesNo(a.IsDeterministic()))
	printKeyValue("complete", yesNo(a.IsComplete()))
	printKeyValue("epsilon", yesNo(a.HasEpsilonTransition()))
	printKeyValue("empty", yesNo(a.IsLanguageEmpty()))

	if showTable {
		printNewline()
		fmt.Fprintln(stdout, transitionTable(a, nil))
	}
	printNewline()
	printNextStep("Simulate", appName+" repl "+path)
	return nil
}

// load reads a definition without touching the result cache.
func (c *CLI) load(ctx context.Context, path string) (*pipeline.Loaded, error) {
	l, err := pipeline.NewRunner(nil, nil, c.Logger).Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return l, nil
}
