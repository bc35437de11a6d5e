package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lepinkainen/marvelgo/internal/config"
	"github.com/lepinkainen/marvelgo/pkg/cache"
	"github.com/lepinkainen/marvelgo/pkg/marvel"
)

// openCache builds the configured cache backend. A nil cache means caching is off.
func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	opts := []cache.Option{
		cache.WithExpireDays(cfg.CacheExpireDays),
		cache.WithLogger(slog.Default()),
	}

	switch cfg.CacheBackend {
	case config.BackendNone:
		return nil, nil
	case config.BackendSQLite:
		return cache.NewSQLite(cfg.CacheDBFile, opts...)
	case config.BackendMemory:
		return cache.NewMemory(cfg.CacheSize, opts...), nil
	case config.BackendBadger:
		return cache.NewBadger(cfg.CacheDBFile, opts...)
	case config.BackendPostgres:
		if cfg.CacheDSN == "" {
			return nil, fmt.Errorf("cache.dsn is required for the postgres backend")
		}
		return cache.NewPostgres(ctx, cfg.CacheDSN, opts...)
	case config.BackendDynamoDB:
		return cache.NewDynamoDBFromEnv(ctx, cfg.CacheTable, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.CacheBackend)
	}
}

// newSession builds a Session from configuration. The returned close func
// releases the cache.
func newSession(ctx context.Context) (*marvel.Session, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	c, err := openCache(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache: %w", err)
	}
	closeCache := func() {
		if c == nil {
			return
		}
		if err := c.Close(); err != nil {
			slog.Warn("Failed to close cache", "error", err)
		}
	}

	opts := []marvel.Option{
		marvel.WithBaseURL(cfg.BaseURL),
		marvel.WithTimeout(cfg.Timeout),
		marvel.WithLogger(slog.Default()),
	}
	if c != nil {
		opts = append(opts, marvel.WithCache(c))
	}

	s, err := marvel.New(cfg.PublicKey, cfg.PrivateKey, opts...)
	if err != nil {
		closeCache()
		return nil, nil, err
	}
	return s, closeCache, nil
}
