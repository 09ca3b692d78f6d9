// Package contact implements the contact subcommands: list, add, delete
// and the layout inspector.
package contact

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/alphaslider/internal/cli"
)

// Commands returns every contact subcommand.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		AddCmd(),
		DeleteCmd(),
		LayoutCmd(),
	}
}

// openCLI reuses the database carried by the context, or opens the one
// named by --db or the config file.
func openCLI(cmd *cobra.Command) (*cli.CLI, error) {
	if c, ok := cli.FromContext(cmd.Context()); ok {
		return c, nil
	}
	path, err := cli.DBPath(cmd)
	if err != nil {
		return nil, err
	}
	return cli.NewCLI(cmd.Context(), path)
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

func formatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

func reportError(f *cli.OutputFormatter, code string, err error) {
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
}
