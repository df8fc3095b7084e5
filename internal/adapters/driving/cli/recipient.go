package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
)

var (
	recipientAddName  string
	recipientAddTitle string
	recipientAddAddr  string
)

var recipientCmd = &cobra.Command{
	Use:   "recipient",
	Short: "Manage saved recipient profiles",
	Long: `Saved recipients are reusable addressee profiles.

Profiles are stored alongside the draft and can be applied to the
draft or referenced when batch-merging.`,
	RunE: runRecipientList,
}

var recipientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a recipient profile",
	RunE:  runRecipientAdd,
}

var recipientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved recipient profiles",
	RunE:  runRecipientList,
}

var recipientRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Delete a saved recipient profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipientRemove,
}

func init() {
	recipientAddCmd.Flags().StringVar(&recipientAddName, "name", "", "recipient name (required)")
	recipientAddCmd.Flags().StringVar(&recipientAddTitle, "title", "", "recipient title")
	recipientAddCmd.Flags().StringVar(&recipientAddAddr, "address", "", "recipient address")
	//nolint:errcheck // Flag exists, MarkFlagRequired cannot fail here
	recipientAddCmd.MarkFlagRequired("name")

	recipientCmd.AddCommand(recipientAddCmd)
	recipientCmd.AddCommand(recipientListCmd)
	recipientCmd.AddCommand(recipientRemoveCmd)
	rootCmd.AddCommand(recipientCmd)
}

func runRecipientAdd(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	saved, err := draftService.SaveRecipient(cmd.Context(), domain.Recipient{
		Name:    recipientAddName,
		Title:   recipientAddTitle,
		Address: recipientAddAddr,
	})
	if err != nil {
		return fmt.Errorf("saving recipient: %w", err)
	}

	cmd.Printf("Saved recipient %s (%s).\n", saved.Recipient.Name, saved.ID)
	return nil
}

func runRecipientList(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	recipients, err := draftService.ListRecipients(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing recipients: %w", err)
	}

	if len(recipients) == 0 {
		cmd.Println("No saved recipients.")
		return nil
	}

	cmd.Println("Saved Recipients")
	cmd.Println("================")
	for _, r := range recipients {
		cmd.Printf("  %s  %s", r.ID, r.Recipient.Name)
		if r.Recipient.Title != "" {
			cmd.Printf(" (%s)", r.Recipient.Title)
		}
		cmd.Println()
	}
	return nil
}

func runRecipientRemove(cmd *cobra.Command, args []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	if err := draftService.RemoveRecipient(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no recipient with id %s", args[0])
		}
		return fmt.Errorf("removing recipient: %w", err)
	}

	cmd.Println("Recipient removed.")
	return nil
}
