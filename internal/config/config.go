package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Catalog sources understood by catalog.source.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Server struct {
		Port string `yaml:"port" env:"KIOSK_SERVER_PORT"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr" env:"KIOSK_REDIS_ADDR"`
		Password string `yaml:"password" env:"KIOSK_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"KIOSK_REDIS_DB"`
		TTL      string `yaml:"ttl" env:"KIOSK_REDIS_TTL"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url" env:"KIOSK_POSTGRES_URL"`
	} `yaml:"postgres"`
	Catalog struct {
		ID     string `yaml:"id" env:"KIOSK_CATALOG_ID"`
		Source string `yaml:"source" env:"KIOSK_CATALOG_SOURCE"`
		Path   string `yaml:"path" env:"KIOSK_CATALOG_PATH"`
		TTL    string `yaml:"ttl" env:"KIOSK_CATALOG_TTL"`
	} `yaml:"catalog"`
	Timing struct {
		PageExit     string `yaml:"page_exit" env:"KIOSK_TIMING_PAGE_EXIT"`
		PageEnter    string `yaml:"page_enter" env:"KIOSK_TIMING_PAGE_ENTER"`
		AnswerSettle string `yaml:"answer_settle" env:"KIOSK_TIMING_ANSWER_SETTLE"`
		IntroStep    string `yaml:"intro_step" env:"KIOSK_TIMING_INTRO_STEP"`
	} `yaml:"timing"`
	Audio struct {
		Muted    bool     `yaml:"muted" env:"KIOSK_AUDIO_MUTED"`
		Playlist []string `yaml:"playlist" env:"KIOSK_AUDIO_PLAYLIST" envSeparator:","`
	} `yaml:"audio"`
	Log struct {
		Level  string `yaml:"level" env:"KIOSK_LOG_LEVEL"`
		Format string `yaml:"format" env:"KIOSK_LOG_FORMAT"`
	} `yaml:"log"`
}

// Load reads YAML config from path, then applies KIOSK_* environment
// overrides. A missing file is not an error; the kiosk runs on defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = SourceEmbedded
	}
	switch cfg.Catalog.Source {
	case SourceEmbedded, SourcePostgres:
	case SourceFile:
		if cfg.Catalog.Path == "" {
			return cfg, fmt.Errorf("catalog.source %q needs catalog.path", SourceFile)
		}
	default:
		return cfg, fmt.Errorf("unknown catalog.source %q", cfg.Catalog.Source)
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// NewLogger builds the process logger from log.level and log.format.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
