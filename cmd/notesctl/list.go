package main

import (
	"fmt"

	"github.com/2beens/notesbox/internal/notes"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		allNotes, err := store().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}

		if jsonOutput {
			if allNotes == nil {
				allNotes = []notes.Note{}
			}
			return printJSON(cmd, notes.NotesListResponse{
				Notes: allNotes,
				Total: len(allNotes),
			})
		}

		for _, n := range allNotes {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", n.ID, n.Title, n.Body)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
