package main

import (
	"fmt"

	"github.com/2beens/notesbox/internal/notes"

	"github.com/spf13/cobra"
)

var (
	updateTitle string
	updateBody  string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace the title and body of a note",
	Long:  `Replace the title and body of a note. Updating a missing note does nothing.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		updated, err := store().Update(cmd.Context(), &notes.Note{
			ID:    id,
			Title: updateTitle,
			Body:  updateBody,
		})
		if err != nil {
			return fmt.Errorf("update note: %w", err)
		}

		if jsonOutput {
			return printJSON(cmd, updated)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "updated:%s\n", updated.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New note title")
	updateCmd.Flags().StringVar(&updateBody, "body", "", "New note body")
}
