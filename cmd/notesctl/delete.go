package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteAll bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note, or every note with --all",
	Args: func(cmd *cobra.Command, args []string) error {
		if deleteAll {
			return cobra.NoArgs(cmd, args)
		}
		if len(args) != 1 {
			return errors.New("expected a note id, or --all")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if deleteAll {
			if err := store().DeleteAll(cmd.Context()); err != nil {
				return fmt.Errorf("delete all notes: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted:all")
			return nil
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := store().Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted:%s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "Delete every note")
}
