package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/amanah_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/core/services"
	"github.com/SscSPs/amanah_ledger/internal/platform/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// halalSeed is the layout of the halal universe file.
type halalSeed struct {
	Symbols []domain.HalalSymbol `yaml:"symbols"`
}

func newSeedHalalCmd(logger *slog.Logger) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed-halal",
		Short: "Upsert the approved symbol universe from a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if file == "" {
				file = cfg.HalalSeedFile
			}
			if file == "" {
				return fmt.Errorf("no seed file: pass --file or set HALAL_SEED_FILE")
			}

			repos, closeStore, err := openStore(cmd.Context(), cfg, logger, cfg.RunMigrations)
			if err != nil {
				return err
			}
			defer closeStore()

			halal := services.NewHalalService(repos.HalalRepo)
			_, err = seedHalalFromFile(cmd.Context(), halal, file, logger)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the halal symbols YAML file")
	return cmd
}

func seedHalalFromFile(ctx context.Context, halal portssvc.HalalCatalogSvc, path string, logger *slog.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open halal seed file: %w", err)
	}
	defer f.Close()

	symbols, err := parseHalalSeed(f)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	n, err := halal.SeedSymbols(ctx, symbols)
	if err != nil {
		return 0, err
	}
	logger.Info("Halal universe seeded", slog.String("file", path), slog.Int("symbols", n))
	return n, nil
}

func parseHalalSeed(r io.Reader) ([]domain.HalalSymbol, error) {
	var seed halalSeed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		return nil, err
	}
	return seed.Symbols, nil
}
