package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validIDCmd = &cobra.Command{
	Use:   "valid-id [id]",
	Short: "Check whether a string is a well-formed id for the backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		valid := store().IsValidID(args[0])

		if jsonOutput {
			return printJSON(cmd, map[string]bool{"valid": valid})
		}

		fmt.Fprintln(cmd.OutOrStdout(), valid)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validIDCmd)
}
