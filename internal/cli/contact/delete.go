package contact

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/alphaslider/internal/cli"
	"github.com/thenoetrevino/alphaslider/internal/models"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	f := formatter(cmd)

	id, err := strconv.Atoi(args[0])
	if err != nil {
		err = fmt.Errorf("%w: contact ID must be a number, got %q", cli.ErrUsage, args[0])
		reportError(f, "INVALID_ID", err)
		return err
	}

	c, err := openCLI(cmd)
	if err != nil {
		reportError(f, "INITIALIZATION_ERROR", err)
		return err
	}
	defer closeCLI(c)

	contact, err := c.Repo.GetContact(cmd.Context(), id)
	if err == nil {
		err = c.Repo.DeleteContact(cmd.Context(), id)
	}
	if err != nil {
		code := "CONTACT_DELETE_ERROR"
		if errors.Is(err, models.ErrContactNotFound) {
			code = "NOT_FOUND"
		}
		reportError(f, code, err)
		return err
	}

	if printed, err := f.Success(contact); printed || err != nil {
		return err
	}

	fmt.Printf("Deleted contact [%d] %s\n", contact.ID, contact.Name)
	return nil
}
