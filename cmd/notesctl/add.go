package main

import (
	"fmt"

	"github.com/2beens/notesbox/internal/notes"

	"github.com/spf13/cobra"
)

var (
	addTitle string
	addBody  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		added, err := store().Add(cmd.Context(), notes.NewNote(addTitle, addBody))
		if err != nil {
			return fmt.Errorf("add note: %w", err)
		}

		if jsonOutput {
			return printJSON(cmd, added)
		}

		fmt.Fprintln(cmd.OutOrStdout(), added.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title")
	addCmd.Flags().StringVar(&addBody, "body", "", "Note body")
}
