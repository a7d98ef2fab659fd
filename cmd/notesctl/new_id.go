package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var newIDCmd = &cobra.Command{
	Use:   "new-id",
	Short: "Generate a fresh note id (document backends only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store().NewID()
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd, map[string]any{"id": id})
		}

		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newIDCmd)
}
