package cli

import (
	"fmt"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"swayn-kiosk/internal/content"
	pgloader "swayn-kiosk/internal/infra/postgres"
	infraredis "swayn-kiosk/internal/infra/redis"
)

// NewSeedCmd stores a catalog in Postgres and drops its cached copy.
func NewSeedCmd(configPath *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store a YAML catalog (default: the built-in one) in Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, logger, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}

			catalog := content.Default()
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if catalog, err = content.Parse(data); err != nil {
					return err
				}
			}

			if err := runMigrationsWithConfig(ctx, cfg, logger); err != nil {
				return err
			}
			pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer pool.Close()

			if err := pgloader.NewCatalogLoader(pool).SaveCatalog(ctx, catalog); err != nil {
				return err
			}
			logger.Info("catalog seeded", "catalog", catalog.ID, "questions", len(catalog.Questions))

			if cfg.Redis.Addr != "" {
				client := redis.NewClient(&redis.Options{
					Addr:     cfg.Redis.Addr,
					Password: cfg.Redis.Password,
					DB:       cfg.Redis.DB,
				})
				defer client.Close()
				if err := infraredis.NewCatalogRepository(client, nil, 0).Invalidate(ctx, catalog.ID); err != nil {
					logger.Warn("could not drop cached catalog", "catalog", catalog.ID, "error", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML catalog to seed")
	return cmd
}
