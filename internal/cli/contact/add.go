package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/alphaslider/internal/models"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME...",
		Short: "Add a contact",
		Long:  "Add a contact. Multiple arguments are joined into one name.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAdd,
	}

	cmd.Flags().String("detail", "", "Secondary line shown under the name")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	f := formatter(cmd)
	detail, _ := cmd.Flags().GetString("detail")

	c, err := openCLI(cmd)
	if err != nil {
		reportError(f, "INITIALIZATION_ERROR", err)
		return err
	}
	defer closeCLI(c)

	contact, err := c.Repo.AddContact(cmd.Context(), strings.Join(args, " "), detail)
	if err != nil {
		code := "CONTACT_CREATE_ERROR"
		if errors.Is(err, models.ErrEmptyName) {
			code = "VALIDATION_ERROR"
		}
		reportError(f, code, err)
		return err
	}

	if printed, err := f.Success(contact); printed || err != nil {
		return err
	}

	fmt.Printf("Added contact [%d] %s\n", contact.ID, contact.Name)
	return nil
}
