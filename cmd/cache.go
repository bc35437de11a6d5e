package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lepinkainen/marvelgo/internal/config"
	"github.com/lepinkainen/marvelgo/pkg/cache"
)

// CacheCmd groups cache maintenance subcommands.
type CacheCmd struct {
	Sweep CacheSweepCmd `cmd:"" help:"Delete expired cache entries"`
	Clear CacheClearCmd `cmd:"" help:"Delete every cache entry"`
}

// CacheSweepCmd deletes expired entries.
type CacheSweepCmd struct{}

func (c *CacheSweepCmd) Run() error {
	return withCache("sweep", func(c cache.Cache) error { return c.Sweep() })
}

// CacheClearCmd deletes every entry.
type CacheClearCmd struct{}

func (c *CacheClearCmd) Run() error {
	return withCache("clear", func(c cache.Cache) error { return c.Clear() })
}

func withCache(op string, fn func(c cache.Cache) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c, err := openCache(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if c == nil {
		slog.Info("Caching is disabled, nothing to do", "op", op)
		return nil
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Warn("Failed to close cache", "error", err)
		}
	}()

	if err := fn(c); err != nil {
		return fmt.Errorf("cache %s: %w", op, err)
	}
	slog.Info("Cache maintenance complete", "op", op, "backend", cfg.CacheBackend)
	return nil
}
