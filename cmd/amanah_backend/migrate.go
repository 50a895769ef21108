package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/amanah_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func newMigrateCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			_, closeStore, err := openStore(cmd.Context(), cfg, logger, true)
			if err != nil {
				return err
			}
			closeStore()
			return nil
		},
	}
}
