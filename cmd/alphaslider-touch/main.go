// Command alphaslider-touch shows the contact list in a window, with the
// slider driven by touch or the left mouse button.
package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/alphaslider/internal/cli"
	"github.com/thenoetrevino/alphaslider/internal/database"
	"github.com/thenoetrevino/alphaslider/internal/logging"
	"github.com/thenoetrevino/alphaslider/internal/touch/game"
)

const (
	windowWidth  = 480
	windowHeight = 800
)

var rootCmd = &cobra.Command{
	Use:          "alphaslider-touch",
	Short:        "Contact list with a touch-driven alphabet slider",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().String("db", "", "Contact database path (default ~/.alphaslider/contacts.db)")
	rootCmd.Flags().String("config", "", "Config file (default $XDG_CONFIG_HOME/alphaslider/config.yaml)")
	rootCmd.Flags().Bool("debug", false, "Log at debug level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	debug, _ := cmd.Flags().GetBool("debug")
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if dir, err := logging.DefaultDir(); err == nil {
		if logFile, err := logging.Init(dir, level); err == nil {
			defer func() { _ = logFile.Close() }()
		}
	}

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	path, err := cli.DBPath(cmd)
	if err != nil {
		return err
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	contacts, err := database.NewContactRepo(db).ListContacts(ctx)
	if err != nil {
		return err
	}

	g, err := game.New(cfg, contacts, windowWidth, windowHeight)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("alphaslider")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Info("starting touch host", "contacts", len(contacts), "sections", g.Controller().Directory().Len())
	return ebiten.RunGame(g)
}
