package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/alphaslider/internal/cli"
	"github.com/thenoetrevino/alphaslider/internal/cli/contact"
	"github.com/thenoetrevino/alphaslider/internal/database"
	"github.com/thenoetrevino/alphaslider/internal/logging"
	"github.com/thenoetrevino/alphaslider/internal/tui"
)

var logFile *os.File

var rootCmd = &cobra.Command{
	Use:   "alphaslider",
	Short: "alphaslider - a contact list with an alphabet index slider",
	Long: `alphaslider shows a sectioned contact list with a row of section
letters on top. Drag across the letters with the mouse to jump through
the list; scroll the list and the letters follow.`,
	Args:               cobra.NoArgs,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
	RunE:               runTUI,
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Contact database path (default ~/.alphaslider/contacts.db)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/alphaslider/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log at debug level")

	rootCmd.AddCommand(contact.Commands()...)
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	dir, err := logging.DefaultDir()
	if err != nil {
		return fmt.Errorf("failed to resolve log directory: %w", err)
	}
	logFile, err = logging.Init(dir, level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path, err := cli.DBPath(cmd)
	if err != nil {
		return err
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}()

	model := tui.InitialModel(ctx, database.NewContactRepo(db), cfg)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		slog.Error("Error running program", "error", err)
		return err
	}
	return nil
}
