package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	service  commands.Service
	header   *export.HeaderReporter
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Service commands.Service
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		service:  opts.Service,
		header:   export.NewHeaderReporter(opts.Output),
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Sales analytics assistant",
	}

	cmd.AddCommand(commands.NewAskCmd(cli.service, cli.header, cli.reporter))
	cmd.AddCommand(commands.NewRunCmd(cli.service, cli.header, cli.reporter))
	cmd.AddCommand(commands.NewStatsCmd(cli.service))

	return cmd
}
