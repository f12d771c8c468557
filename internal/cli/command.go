package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/filesum/internal/config"
	"github.com/idelchi/filesum/internal/filesum"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.command(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func (c CLI) command(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filesum [flags] [path]",
		Short: "Summarize the files below a directory",
		Long: heredoc.Doc(`
			filesum walks a directory tree and reports:

			  - the number of files per extension, in the order first seen
			  - the largest files, with sizes in whole kilobytes
			  - the oldest files, by last modification time

			Positional Arguments:
			  path   Directory to scan. Defaults to $FILESUM_DIR, then ~/kali-usb-creator-dev.

			Environment:
			  FILESUM_DIR, FILESUM_TOP, FILESUM_DEBUG mirror the path argument and flags.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				cfg.Dir = args[0]
			}

			return logic(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.IntP("top", "t", filesum.DefaultTopN, "Number of largest and oldest files to display")
	flags.Bool("debug", false, "Enable debug output")

	return cmd
}
