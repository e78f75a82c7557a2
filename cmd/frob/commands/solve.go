package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/frob/internal/app"
)

func (c *CLI) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [coins...]",
		Short: "Solve one coin set, or every set in a batch file",
		Example: "  frob solve 6 9 20\n" +
			"  frob solve --file sets.yaml",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			if len(args) == 0 && file == "" {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Solve(cmd.Context(), app.SolveOptions{
				Options: options(cmd),
				File:    file,
			}, args)
		},
	}
	cmd.Flags().StringP("file", "f", "", "Batch file listing named coin sets")
	return cmd
}

func (c *CLI) newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench [coins...]",
		Short: "Compare round-robin and the sieve on a coin set or the samples",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Bench(cmd.Context(), options(cmd), args)
		},
	}
}

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the solver against known Frobenius numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Check(cmd.Context(), options(cmd))
		},
	}
}

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <batch.yaml>",
		Short: "Re-solve a batch file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), options(cmd), args[0])
		},
	}
}
