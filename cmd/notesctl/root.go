package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/notesbox/internal/config"
	"github.com/2beens/notesbox/internal/logging"
	"github.com/2beens/notesbox/internal/notes"
	"github.com/2beens/notesbox/internal/storage"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	env        string
	configPath string
	jsonOutput bool
	verbose    bool

	// swapped in tests
	openStorage = storage.Open

	notesStorage *storage.Storage
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Manage notes directly in the configured store backend",
	Long: `notesctl talks to the same store backend as the notes service
(memory, sql, pgxpool, gorm, mongo or redis), selected by the config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(cmd.ErrOrStderr())
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(logging.GetLevel("warn"))
		}

		cfg, err := config.Load(env, configPath)
		if err != nil {
			return err
		}

		notesStorage, err = openStorage(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStorage()
	},
}

func closeStorage() error {
	if notesStorage == nil {
		return nil
	}
	err := notesStorage.Close()
	notesStorage = nil
	return err
}

func store() notes.Store {
	return notesStorage.Store
}

// parseID checks the raw id against the backend's id scheme.
func parseID(raw string) (notes.ID, error) {
	if !store().IsValidID(raw) {
		return nil, fmt.Errorf("%w: %q", notes.ErrInvalidID, raw)
	}
	return store().ParseID(raw)
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// PersistentPostRunE is skipped when a command fails
		if closeErr := closeStorage(); closeErr != nil {
			log.Errorf("close storage: %s", closeErr)
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment [prod | production | dev | development | test | testing]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
