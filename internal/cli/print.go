package cli

import (
	"github.com/spf13/cobra"
)

// printCommand creates the print command writing the plain state listing.
func (c *CLI) printCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print [definition.toml]",
		Short: "Print the initial states, final states and transitions",
		Long: `Print the initial states, final states and transitions of an automaton
in the plain listing format also produced by transform and product.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return l.Automaton.PrettyPrint(stdout)
		},
	}
}
