// Package cli holds the shared plumbing of the contact subcommands:
// database access, output formatting and exit codes.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/alphaslider/internal/config"
	"github.com/thenoetrevino/alphaslider/internal/database"
	"github.com/thenoetrevino/alphaslider/internal/models"
)

// ErrUsage marks errors caused by invalid arguments or flags.
var ErrUsage = errors.New("invalid usage")

// CLI represents the CLI application context
type CLI struct {
	Repo  database.ContactRepository
	db    *sql.DB
	owned bool
}

type contextKey struct{}

// NewCLI opens the contact database at path.
func NewCLI(ctx context.Context, path string) (*CLI, error) {
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		Repo:  database.NewContactRepo(db),
		db:    db,
		owned: true,
	}, nil
}

// WithDB returns a context carrying a CLI over an already open database.
// Commands run with it never close the database.
func WithDB(ctx context.Context, db *sql.DB) context.Context {
	return context.WithValue(ctx, contextKey{}, &CLI{
		Repo: database.NewContactRepo(db),
		db:   db,
	})
}

// FromContext returns the CLI stored by WithDB.
func FromContext(ctx context.Context) (*CLI, bool) {
	c, ok := ctx.Value(contextKey{}).(*CLI)
	return c, ok
}

// Close releases the database if this CLI opened it.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.db.Close()
}

// LoadConfig loads the file named by --config, or the default config.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// DBPath resolves the contact database: the --db flag, then the config
// file's database entry, then the default path.
func DBPath(cmd *cobra.Command) (string, error) {
	if path, err := cmd.Flags().GetString("db"); err == nil && path != "" {
		return path, nil
	}
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return "", err
	}
	if cfg.Database != "" {
		return cfg.Database, nil
	}
	return database.DefaultPath()
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, models.ErrContactNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrEmptyName):
		return ExitValidation
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}
