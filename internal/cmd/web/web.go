// Package web parses web command configuration and starts the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/vinylcourses/coursehub/internal/platform/cmd"
	"github.com/vinylcourses/coursehub/internal/platform/logging"
	"github.com/vinylcourses/coursehub/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"COURSEHUB_WEB_HTTP_ADDR"             envDefault:"localhost:8086"`
	APIBaseURL          string        `env:"COURSEHUB_WEB_API_BASE_URL"          envDefault:"http://localhost:8080"`
	SessionKey          string        `env:"COURSEHUB_WEB_SESSION_KEY"`
	CachePath           string        `env:"COURSEHUB_WEB_CACHE_PATH"`
	CatalogTTL          time.Duration `env:"COURSEHUB_WEB_CATALOG_TTL"           envDefault:"5m"`
	CategoryOrderFile   string        `env:"COURSEHUB_WEB_CATEGORY_ORDER_FILE"`
	TrustForwardedProto bool          `env:"COURSEHUB_WEB_TRUST_FORWARDED_PROTO"`
	LogLevel            string        `env:"COURSEHUB_LOG_LEVEL"                 envDefault:"info"`
	LogFormat           string        `env:"COURSEHUB_LOG_FORMAT"                envDefault:"text"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "interests API base URL")
	fs.StringVar(&cfg.CachePath, "cache-path", cfg.CachePath, "SQLite catalog cache path (empty disables the cache)")
	fs.DurationVar(&cfg.CatalogTTL, "catalog-ttl", cfg.CatalogTTL, "how long a cached catalog is served")
	fs.StringVar(&cfg.CategoryOrderFile, "category-order", cfg.CategoryOrderFile, "YAML file declaring category display order")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "honor X-Forwarded-Proto")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.SessionKey == "" {
		return Config{}, fmt.Errorf("COURSEHUB_WEB_SESSION_KEY is required")
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	logger := logging.New(cfg.LogLevel, cfg.LogFormat).WithField("service", entrypoint.ServiceWeb)
	options := entrypoint.RunOptions{Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, options, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			APIBaseURL:          cfg.APIBaseURL,
			SessionKey:          cfg.SessionKey,
			CachePath:           cfg.CachePath,
			CatalogTTL:          cfg.CatalogTTL,
			CategoryOrderFile:   cfg.CategoryOrderFile,
			TrustForwardedProto: cfg.TrustForwardedProto,
			Logger:              logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
