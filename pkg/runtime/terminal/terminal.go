package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lotto-tools/report-center/pkg/runtime/terminal/commands"
	"github.com/lotto-tools/report-center/pkg/services/fetch"
	"github.com/lotto-tools/report-center/pkg/services/report"
)

// CLI represents the command-line interface
type CLI struct {
	registry  report.Registry
	factories fetch.FactoryRegistry
	output    io.Writer
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry  report.Registry
	Factories fetch.FactoryRegistry
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = report.NewRegistry()
	}

	cli := &CLI{
		registry:  opts.Registry,
		factories: opts.Factories,
		output:    opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report-center",
		Short: "Report center for the payments dashboard",
	}

	cmd.AddCommand(commands.NewRunCmd(cli.registry, cli.factories, NewReporter(cli.output)))
	cmd.AddCommand(commands.NewListCmd(cli.registry, cli.output))

	return cmd
}
