// Package commands implements the CLI commands for frob.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/frob/internal/app"
	"go.trai.ch/frob/internal/build"
)

// CLI represents the command line interface for frob.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Demo(ctx context.Context, opts app.DemoOptions) error
	Check(ctx context.Context, opts app.Options) error
	Solve(ctx context.Context, opts app.SolveOptions, literals []string) error
	Bench(ctx context.Context, opts app.Options, literals []string) error
	Watch(ctx context.Context, opts app.Options, path string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "frob",
		Short: "Compute Frobenius numbers of coin sets",
		Long: "frob computes the largest amount that cannot be formed from a set of coin values.\n" +
			"Without a subcommand it runs a self-check and solves the sample sets.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			benchmark, _ := cmd.Flags().GetBool("benchmark")
			return c.app.Demo(cmd.Context(), app.DemoOptions{
				Options:   options(cmd),
				Benchmark: benchmark,
			})
		},
	}

	// InitDefaultVersionFlag claims -v unless --verbose already holds it.
	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable diagnostic logging and stage timings")
	flags.Int("threads", 0, "Number of sieve workers, clamped to 1-8 (default: CPU count)")
	flags.Bool("no-parallel", false, "Build the sieve on a single goroutine")
	flags.Bool("json", false, "Write logs as JSON")
	flags.String("config", "", "Path to a frob.yaml file (default: search upwards from the working directory)")
	flags.String("metrics-file", "", "Write Prometheus metrics to this file on exit")
	flags.StringP("output-mode", "o", "auto", "Output colors: auto, color, linear, or plain")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolP("benchmark", "b", false, "Compare round-robin and the sieve on the samples")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newSolveCmd())
	rootCmd.AddCommand(c.newBenchCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options reads the persistent flags shared by every command.
func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	verbose, _ := flags.GetBool("verbose")
	threads, _ := flags.GetInt("threads")
	noParallel, _ := flags.GetBool("no-parallel")
	jsonLogs, _ := flags.GetBool("json")
	configPath, _ := flags.GetString("config")
	metricsFile, _ := flags.GetString("metrics-file")
	outputMode, _ := flags.GetString("output-mode")

	return app.Options{
		Verbose:     verbose,
		Threads:     threads,
		NoParallel:  noParallel,
		JSON:        jsonLogs,
		ConfigPath:  configPath,
		MetricsFile: metricsFile,
		OutputMode:  outputMode,
	}
}
