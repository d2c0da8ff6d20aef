package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/automata/pkg/errors"
)

// matchCommand creates the match command testing words for acceptance.
func (c *CLI) matchCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "match [definition.toml] [word...]",
		Short: "Test whether words are accepted",
		Long: `Test whether words are accepted by an automaton.

Each word is read from the initial states without following epsilon
transitions; it is accepted when a final state is reached. Pass "" for the
empty word.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMatch(cmd.Context(), args[0], args[1:], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail unless every word is accepted")

	return cmd
}

func (c *CLI) runMatch(ctx context.Context, path string, words []string, strict bool) error {
	for _, w := range words {
		if err := errors.ValidateWord(w); err != nil {
			return err
		}
	}
	l, err := c.load(ctx, path)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx), "Matched")
	rejected := 0
	for _, w := range words {
		if l.Automaton.Match(w) {
			printSuccess("%s %s", quoteWord(w), StyleSuccess.Render("accepted"))
			continue
		}
		rejected++
		printError("%s %s", quoteWord(w), StyleError.Render("rejected"))
	}
	prog.done(len(words), "word", "words")

	if strict && rejected > 0 {
		return fmt.Errorf("%d of %d words rejected", rejected, len(words))
	}
	return nil
}

// readCommand creates the read command printing the reached state set.
func (c *CLI) readCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read [definition.toml] [word]",
		Short: "Print the states reached after reading a word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[1]
			if err := errors.ValidateWord(word); err != nil {
				return err
			}
			l, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			reached := l.Automaton.ReadString(word)
			if len(reached) == 0 {
				printWarning("%s reaches no state", quoteWord(word))
				return nil
			}
			printInfo("%s reaches %s", quoteWord(word), StyleHighlight.Render(formatStates(reached)))
			return nil
		},
	}
}

// quoteWord renders a word for status lines; the empty word is shown as ε.
func quoteWord(w string) string {
	if w == "" {
		return StyleValue.Render(epsilonLabel)
	}
	return StyleValue.Render(strconv.Quote(w))
}
