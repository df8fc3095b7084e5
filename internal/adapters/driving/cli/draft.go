package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
)

var (
	draftSetType           string
	draftSetSubject        string
	draftSetBody           string
	draftSetBodyFile       string
	draftSetRecipientName  string
	draftSetRecipientTitle string
	draftSetRecipientAddr  string
	draftSetSignatoryRef   string
	draftSetSignatoryName  string
	draftSetSignatoryTitle string
	draftSetSignatoryOrg   string
	draftSetFontSize       int
	draftSetLineSpacing    float64

	draftExportFormat string
	draftExportOut    string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Work on the current draft",
	Long: `Inspect and edit the draft under edit.

The draft lives in memory while editing and is persisted as a snapshot
on save. Body edits accumulate into undo checkpoints; undo is
one-directional and bounded.`,
	RunE: runDraftShow,
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current draft",
	RunE:  runDraftShow,
}

var draftSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update draft fields",
	Long: `Update one or more draft fields and save the result.

Body text can be given inline with --body or read from a file with
--body-file. Setting a custom signatory name deactivates any reference
signatory, and vice versa.`,
	RunE: runDraftSet,
}

var draftUndoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Restore the previous body checkpoint",
	RunE:  runDraftUndo,
}

var draftSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the draft snapshot",
	RunE:  runDraftSave,
}

var draftLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Restore the draft from its saved snapshot",
	RunE:  runDraftLoad,
}

var draftResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the draft and its saved snapshot",
	RunE:  runDraftReset,
}

var draftExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the draft to a file",
	Long: `Validate the draft and render it in the requested format.

The body must be non-blank and a custom signatory must carry a name.`,
	RunE: runDraftExport,
}

var draftGoalCmd = &cobra.Command{
	Use:   "goal [words]",
	Short: "Show or set the word-count goal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDraftGoal,
}

var draftPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Send the draft to template storage",
	Long:  `Stores the draft as a reusable remote template and prints its id.`,
	RunE:  runDraftPush,
}

func init() {
	draftSetCmd.Flags().StringVar(&draftSetType, "type", "", "document type (business, cover, resignation, reference, complaint, thank_you, custom)")
	draftSetCmd.Flags().StringVar(&draftSetSubject, "subject", "", "subject line")
	draftSetCmd.Flags().StringVar(&draftSetBody, "body", "", "body text")
	draftSetCmd.Flags().StringVar(&draftSetBodyFile, "body-file", "", "read body text from file")
	draftSetCmd.Flags().StringVar(&draftSetRecipientName, "recipient-name", "", "recipient name")
	draftSetCmd.Flags().StringVar(&draftSetRecipientTitle, "recipient-title", "", "recipient title")
	draftSetCmd.Flags().StringVar(&draftSetRecipientAddr, "recipient-address", "", "recipient address")
	draftSetCmd.Flags().StringVar(&draftSetSignatoryRef, "signatory-ref", "", "reference signatory profile id")
	draftSetCmd.Flags().StringVar(&draftSetSignatoryName, "signatory-name", "", "custom signatory name")
	draftSetCmd.Flags().StringVar(&draftSetSignatoryTitle, "signatory-title", "", "custom signatory title")
	draftSetCmd.Flags().StringVar(&draftSetSignatoryOrg, "signatory-company", "", "custom signatory company")
	draftSetCmd.Flags().IntVar(&draftSetFontSize, "font-size", 0, "body font size in points (9-14)")
	draftSetCmd.Flags().Float64Var(&draftSetLineSpacing, "line-spacing", 0, "line spacing multiplier (1.0-2.5)")

	draftExportCmd.Flags().StringVarP(&draftExportFormat, "format", "f", "txt", "output format (txt, html, docx)")
	draftExportCmd.Flags().StringVarP(&draftExportOut, "out", "o", "", "output file (default draft.<format>)")

	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftSetCmd)
	draftCmd.AddCommand(draftUndoCmd)
	draftCmd.AddCommand(draftSaveCmd)
	draftCmd.AddCommand(draftLoadCmd)
	draftCmd.AddCommand(draftResetCmd)
	draftCmd.AddCommand(draftExportCmd)
	draftCmd.AddCommand(draftGoalCmd)
	draftCmd.AddCommand(draftPushCmd)
	rootCmd.AddCommand(draftCmd)
}

func runDraftShow(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	draft := draftService.Current()

	cmd.Println("Current Draft")
	cmd.Println("=============")
	cmd.Printf("  Type: %s\n", draft.DocumentType.Description())
	if draft.Subject != "" {
		cmd.Printf("  Subject: %s\n", draft.Subject)
	}
	if draft.Recipient.Name != "" {
		cmd.Printf("  Recipient: %s\n", draft.Recipient.Name)
	}
	switch {
	case draft.Signatory.IsCustom():
		cmd.Printf("  Signatory: %s\n", draft.Signatory.Custom.Name)
	case draft.Signatory.ReferenceID != "":
		cmd.Printf("  Signatory: %s (reference)\n", draft.Signatory.ReferenceID)
	}
	cmd.Printf("  Formatting: %dpt / %.2f spacing\n", draft.Formatting.FontSize, draft.Formatting.LineSpacing)
	cmd.Println()

	words := draftService.WordCount()
	cmd.Printf("  Words: %d", words)
	if goal, err := draftService.WordGoal(cmd.Context()); err == nil && goal > 0 {
		cmd.Printf(" / %d goal", goal)
	}
	cmd.Println()
	cmd.Printf("  Undo depth: %d\n", draftService.UndoDepth())

	if at, ok := draftService.LastSavedAt(); ok {
		cmd.Printf("  Last saved: %s\n", at.Format("2006-01-02 15:04:05"))
	} else {
		cmd.Println("  Last saved: never")
	}
	if recents, err := draftService.RecentDocumentTypes(cmd.Context()); err == nil && len(recents) > 0 {
		cmd.Printf("  Recent types: %s\n", strings.Join(recents, ", "))
	}
	if draftService.HasUnsavedWork() {
		cmd.Println("  Unsaved changes: yes")
	}

	if !draft.IsBlank() {
		cmd.Println()
		cmd.Println(draft.BodyText)
	}
	return nil
}

//nolint:gocyclo // Flag-by-flag field application reads clearer flat
func runDraftSet(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	if draftSetType != "" {
		if err := draftService.SetDocumentType(domain.DocumentType(draftSetType)); err != nil {
			return fmt.Errorf("invalid document type %q", draftSetType)
		}
		cmd.Printf("Type set to: %s\n", domain.DocumentType(draftSetType).Description())
	}
	if cmd.Flags().Changed("subject") {
		draftService.SetSubject(draftSetSubject)
	}

	if draftSetBody != "" && draftSetBodyFile != "" {
		return errors.New("use either --body or --body-file, not both")
	}
	if draftSetBodyFile != "" {
		data, err := os.ReadFile(draftSetBodyFile)
		if err != nil {
			return fmt.Errorf("reading body file: %w", err)
		}
		draftService.SetBody(string(data))
	} else if cmd.Flags().Changed("body") {
		draftService.SetBody(draftSetBody)
	}

	if draftSetRecipientName != "" || draftSetRecipientTitle != "" || draftSetRecipientAddr != "" {
		rec := draftService.Current().Recipient
		if draftSetRecipientName != "" {
			rec.Name = draftSetRecipientName
		}
		if draftSetRecipientTitle != "" {
			rec.Title = draftSetRecipientTitle
		}
		if draftSetRecipientAddr != "" {
			rec.Address = draftSetRecipientAddr
		}
		draftService.SetRecipient(rec)
	}

	if draftSetSignatoryRef != "" && draftSetSignatoryName != "" {
		return errors.New("use either --signatory-ref or --signatory-name, not both")
	}
	if draftSetSignatoryRef != "" {
		draftService.SetSignatoryReference(draftSetSignatoryRef)
	} else if draftSetSignatoryName != "" {
		draftService.SetCustomSignatory(domain.CustomSignatory{
			Name:    draftSetSignatoryName,
			Title:   draftSetSignatoryTitle,
			Company: draftSetSignatoryOrg,
		})
	}

	if draftSetFontSize != 0 || draftSetLineSpacing != 0 {
		f := draftService.Current().Formatting
		if draftSetFontSize != 0 {
			f.FontSize = draftSetFontSize
		}
		if draftSetLineSpacing != 0 {
			f.LineSpacing = draftSetLineSpacing
		}
		if err := draftService.SetFormatting(f); err != nil {
			return fmt.Errorf("formatting out of bounds: font size %d-%d, line spacing %.1f-%.1f",
				domain.MinFontSize, domain.MaxFontSize, domain.MinLineSpacing, domain.MaxLineSpacing)
		}
	}

	if err := draftService.Save(cmd.Context()); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	cmd.Println("Draft updated.")
	return nil
}

func runDraftUndo(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	restored, err := draftService.Undo()
	if err != nil {
		if errors.Is(err, domain.ErrNothingToUndo) {
			cmd.Println("Nothing to undo.")
			return nil
		}
		return fmt.Errorf("undo failed: %w", err)
	}

	cmd.Printf("Restored previous checkpoint (%d characters, %d left).\n",
		len(restored), draftService.UndoDepth())
	return nil
}

func runDraftSave(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	if err := draftService.Save(cmd.Context()); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	cmd.Println("Draft saved.")
	return nil
}

func runDraftLoad(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	err := draftService.Load(cmd.Context())
	switch {
	case errors.Is(err, domain.ErrNotFound):
		cmd.Println("No saved draft found.")
		return nil
	case errors.Is(err, domain.ErrCorruptSnapshot):
		cmd.Println("Saved draft could not be read; starting from defaults.")
		return nil
	case err != nil:
		return fmt.Errorf("loading draft: %w", err)
	}

	cmd.Println("Draft loaded.")
	return nil
}

func runDraftReset(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	if err := draftService.Reset(cmd.Context()); err != nil {
		return fmt.Errorf("resetting draft: %w", err)
	}
	cmd.Println("Draft reset to defaults.")
	return nil
}

func runDraftExport(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	data, err := draftService.Export(cmd.Context(), draftExportFormat)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyBody):
			return errors.New("cannot export an empty draft")
		case errors.Is(err, domain.ErrSignatoryUnnamed):
			return errors.New("custom signatory needs a name before export")
		case errors.Is(err, domain.ErrRendererUnavailable):
			return fmt.Errorf("no renderer for format %q", draftExportFormat)
		default:
			return fmt.Errorf("export failed: %w", err)
		}
	}

	out := draftExportOut
	if out == "" {
		out = "draft." + draftExportFormat
	}
	if err := os.WriteFile(out, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	cmd.Printf("Exported to %s (%d bytes).\n", out, len(data))
	return nil
}

func runDraftPush(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	id, err := draftService.PushTemplate(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrTemplateSyncUnavailable) {
			return errors.New("template storage is not configured")
		}
		return fmt.Errorf("pushing template: %w", err)
	}

	cmd.Printf("Template stored as %s.\n", id)
	return nil
}

func runDraftGoal(cmd *cobra.Command, args []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	ctx := cmd.Context()
	if len(args) == 0 {
		goal, err := draftService.WordGoal(ctx)
		if err != nil {
			return fmt.Errorf("reading word goal: %w", err)
		}
		if goal == 0 {
			cmd.Println("No word-count goal set.")
			return nil
		}
		cmd.Printf("Goal: %d words (%d written).\n", goal, draftService.WordCount())
		return nil
	}

	goal, err := strconv.Atoi(args[0])
	if err != nil || goal < 0 {
		return fmt.Errorf("invalid goal %q", args[0])
	}
	if err := draftService.SetWordGoal(ctx, goal); err != nil {
		return fmt.Errorf("setting word goal: %w", err)
	}
	cmd.Printf("Word-count goal set to %d.\n", goal)
	return nil
}
