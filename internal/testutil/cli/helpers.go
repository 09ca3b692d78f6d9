// Package cli provides helpers for testing cobra commands against an
// in-memory contact database.
package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/spf13/cobra"
	appcli "github.com/thenoetrevino/alphaslider/internal/cli"
	"github.com/thenoetrevino/alphaslider/internal/testutil"
)

// SetupCLITest creates an in-memory database holding the given contacts.
func SetupCLITest(t *testing.T, names ...string) *sql.DB {
	t.Helper()
	db := testutil.SetupTestDB(t)
	testutil.AddTestContacts(t, db, names...)
	return db
}

// ExecuteCLICommand executes a CLI command against db and returns its stdout
func ExecuteCLICommand(t *testing.T, db *sql.DB, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), db, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, db *sql.DB, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if db == nil {
		t.Fatal("db cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)
	cmd.SetContext(appcli.WithDB(ctx, db))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	return output, err
}
