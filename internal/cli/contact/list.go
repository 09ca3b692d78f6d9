package contact

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/alphaslider/internal/directory"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts by section",
		Long:  "List all contacts grouped into the sections shown by the slider.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().String("alphabet", "", "Fixed section labels, one per character (default: derived from names)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	f := formatter(cmd)

	c, err := openCLI(cmd)
	if err != nil {
		reportError(f, "INITIALIZATION_ERROR", err)
		return err
	}
	defer closeCLI(c)

	contacts, err := c.Repo.ListContacts(cmd.Context())
	if err != nil {
		reportError(f, "CONTACT_FETCH_ERROR", err)
		return err
	}

	alphabet, _ := cmd.Flags().GetString("alphabet")
	var labels []string
	for _, r := range alphabet {
		labels = append(labels, string(r))
	}
	dir := directory.Build(contacts, labels, 1)

	if f.Quiet {
		for _, contact := range contacts {
			fmt.Printf("%d\n", contact.ID)
		}
		return nil
	}
	if printed, err := f.Success(dir.Sections()); printed || err != nil {
		return err
	}

	// Human-readable output
	if len(contacts) == 0 {
		fmt.Println("No contacts found")
		return nil
	}

	fmt.Printf("Found %d contacts in %d sections:\n", len(contacts), dir.Len())
	for _, section := range dir.Sections() {
		fmt.Printf("\n%s\n", section.Title)
		for _, contact := range section.Contacts {
			if contact.Detail != "" {
				fmt.Printf("  [%d] %s - %s\n", contact.ID, contact.Name, contact.Detail)
			} else {
				fmt.Printf("  [%d] %s\n", contact.ID, contact.Name)
			}
		}
	}
	return nil
}
