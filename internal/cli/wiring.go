package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"swayn-kiosk/internal/app"
	"swayn-kiosk/internal/config"
	"swayn-kiosk/internal/content"
	"swayn-kiosk/internal/infra/file"
	"swayn-kiosk/internal/infra/memory"
	pgloader "swayn-kiosk/internal/infra/postgres"
	infraredis "swayn-kiosk/internal/infra/redis"
)

// deps holds the infrastructure one command needs. close releases it.
type deps struct {
	cfg      config.Config
	logger   *slog.Logger
	redis    *redis.Client
	pool     *pgxpool.Pool
	catalogs app.CatalogRepository
	visits   app.VisitRegistry
}

func loadConfig(path string) (config.Config, *slog.Logger, error) {
	return loadConfigTo(path, os.Stderr)
}

// loadConfigTo reads the config and installs the default logger writing to w.
func loadConfigTo(path string, w io.Writer) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}
	logger := config.NewLogger(cfg, w)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func buildDeps(ctx context.Context, cfg config.Config, logger *slog.Logger) (*deps, error) {
	d := &deps{cfg: cfg, logger: logger}

	if cfg.Redis.Addr != "" {
		d.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var loader memory.CatalogLoader
	switch cfg.Catalog.Source {
	case config.SourceFile:
		loader = file.NewCatalogLoader(cfg.Catalog.Path)
	case config.SourcePostgres:
		if cfg.Postgres.URL == "" {
			d.close()
			return nil, fmt.Errorf("catalog.source %q needs postgres.url", config.SourcePostgres)
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			d.close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		d.pool = pool
		loader = pgloader.NewCatalogLoader(pool)
	default:
		loader = memory.NewStaticCatalogLoader(content.Default())
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	if d.redis != nil {
		d.catalogs = infraredis.NewCatalogRepository(d.redis, loader, catalogTTL)
		d.visits = infraredis.NewVisitRegistry(d.redis, config.TTLDuration(cfg.Redis.TTL, 10*time.Minute))
	} else {
		d.catalogs = memory.NewCatalogRepository(loader, catalogTTL)
		d.visits = memory.NewVisitRegistry()
	}
	logger.Debug("infrastructure ready", "catalog_source", cfg.Catalog.Source, "redis", d.redis != nil)
	return d, nil
}

func (d *deps) catalogID() string {
	if d.cfg.Catalog.ID != "" {
		return d.cfg.Catalog.ID
	}
	return content.DefaultCatalogID
}

func (d *deps) settings() app.Settings {
	t := d.cfg.Timing
	return app.Settings{
		Timing: app.Timing{
			PageExit:     config.TTLDuration(t.PageExit, 0),
			PageEnter:    config.TTLDuration(t.PageEnter, 0),
			AnswerSettle: config.TTLDuration(t.AnswerSettle, 0),
			IntroStep:    config.TTLDuration(t.IntroStep, 0),
		},
		Playlist: d.cfg.Audio.Playlist,
		Muted:    d.cfg.Audio.Muted,
	}
}

func (d *deps) service() *app.Service {
	return app.NewService(d.visits, d.catalogs, d.settings(), d.logger)
}

func (d *deps) close() {
	if d.pool != nil {
		d.pool.Close()
	}
	if d.redis != nil {
		_ = d.redis.Close()
	}
}
