package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/automata/pkg/fa"
)

// comparison holds the language relations between two automata.
type comparison struct {
	Disjoint    bool // L(lhs) ∩ L(rhs) = ∅
	LeftInRight bool // L(lhs) ⊆ L(rhs)
	RightInLeft bool // L(rhs) ⊆ L(lhs)
}

// Equivalent reports whether both languages are equal.
func (c comparison) Equivalent() bool { return c.LeftInRight && c.RightInLeft }

func compare(lhs, rhs *fa.Automaton) comparison {
	return comparison{
		Disjoint:    lhs.HasEmptyIntersectionWith(rhs),
		LeftInRight: lhs.IsIncludedIn(rhs),
		RightInLeft: rhs.IsIncludedIn(lhs),
	}
}

// compareCommand creates the compare command relating two languages.
func (c *CLI) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [lhs.toml] [rhs.toml]",
		Short: "Compare the languages of two automata",
		Long: `Compare the languages of two automata.

Reports whether the languages are disjoint, whether each one is included in
the other, and whether they are equal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(cmd.Context(), args[0], args[1])
		},
	}
}

func (c *CLI) runCompare(ctx context.Context, lhsPath, rhsPath string) error {
	lhs, err := c.load(ctx, lhsPath)
	if err != nil {
		return err
	}
	rhs, err := c.load(ctx, rhsPath)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx), "Compared")
	cmp := compare(lhs.Automaton, rhs.Automaton)
	prog.done(2, "automaton", "automata")

	printKeyValue("disjoint", yesNo(cmp.Disjoint))
	printKeyValue("lhs ⊆ rhs", yesNo(cmp.LeftInRight))
	printKeyValue("rhs ⊆ lhs", yesNo(cmp.RightInLeft))
	printKeyValue("equivalent", yesNo(cmp.Equivalent()))
	return nil
}
