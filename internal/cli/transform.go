package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/automata/pkg/pipeline"
)

// transformCommand creates the transform command applying a unary operation.
func (c *CLI) transformCommand() *cobra.Command {
	var (
		op      string
		noCache bool
		refresh bool
	)

	ops := make([]string, 0)
	for _, o := range pipeline.UnaryOperations() {
		ops = append(ops, string(o))
	}

	cmd := &cobra.Command{
		Use:   "transform [definition.toml]",
		Short: "Apply an operation and print the resulting automaton",
		Long: `Apply an operation to an automaton and print the resulting listing.

Available operations: ` + strings.Join(ops, ", ") + `.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApply(cmd.Context(), pipeline.Options{
				Operation: pipeline.Operation(op),
				Inputs:    args,
				Refresh:   refresh,
			}, noCache)
		},
	}

	cmd.Flags().StringVar(&op, "op", "", "operation: "+strings.Join(ops, ", "))
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute and overwrite the cached result")
	_ = cmd.MarkFlagRequired("op")
	_ = cmd.RegisterFlagCompletionFunc("op", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ops, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// productCommand creates the product command intersecting two automata.
func (c *CLI) productCommand() *cobra.Command {
	var (
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "product [lhs.toml] [rhs.toml]",
		Short: "Print the product automaton of two automata",
		Long: `Print the product automaton, which accepts the intersection of both
languages. Only symbols shared by both alphabets are kept.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApply(cmd.Context(), pipeline.Options{
				Operation: pipeline.OpProduct,
				Inputs:    args,
				Refresh:   refresh,
			}, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute and overwrite the cached result")

	return cmd
}

// runApply runs opts through a pipeline runner and prints the listing.
func (c *CLI) runApply(ctx context.Context, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	spinner := newApplySpinner(ctx, opts)
	spinner.Start()

	res, err := runner.Apply(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	if spinner.Cancelled() {
		return ctx.Err()
	}

	fmt.Fprint(stdout, res.Listing)
	printNewline()
	printSuccess("%s complete", opts.Operation)
	printStats(res.Automaton, res.Cached)
	return nil
}
