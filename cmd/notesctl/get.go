package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a note by its id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		note, err := store().Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}
		if note == nil {
			return fmt.Errorf("note %s not found", id)
		}

		if jsonOutput {
			return printJSON(cmd, note)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", note.Title, note.Body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
