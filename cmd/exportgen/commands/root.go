// Package commands implements the CLI commands for exportgen.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/exportgen/internal/app"
	"go.trai.ch/exportgen/internal/build"
	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
)

// CLI represents the command line interface for exportgen.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) ([]domain.GenerationResult, error)
	Check(ctx context.Context, opts app.GenerateOptions) error
	Files(ctx context.Context, exportSets []string) ([]domain.GenerationResult, error)
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogger lets the persistent logging flags reconfigure logger.
func WithLogger(logger ports.Logger) Option {
	return func(c *CLI) {
		c.logger = logger
	}
}

// logConfigurer is implemented by loggers whose output format can be switched.
type logConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "exportgen",
		Short:         "Generate import descriptors for installed export sets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show debug logs")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		lc, ok := c.logger.(logConfigurer)
		if !ok {
			return
		}
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		lc.SetJSON(jsonLogs)
		lc.SetVerbose(verbose)
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newFilesCmd())
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
