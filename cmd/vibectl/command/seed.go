package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"vibescore/internal/catalog"
	"vibescore/internal/config"
	"vibescore/internal/service"
	"vibescore/internal/storage/postgres"
)

func newSeedCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert the event catalog into Postgres",
		Long: `Upsert the event catalog into Postgres. Connection settings come
from the same environment and .env file as the server. Events are matched
by id, so running seed twice is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

			events, err := catalog.Load(path)
			if err != nil {
				return err
			}

			cfg, err := config.Load(ctx)
			if err != nil {
				return fmt.Errorf("config.Load: %w", err)
			}
			storage, err := postgres.NewPostgres(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer storage.Pool.Close()

			n, err := service.NewEventAdminService(storage.Events(), nil, logger).Seed(ctx, events)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d events from %s\n", n, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", defaultCatalog, "catalog YAML file")
	return cmd
}
