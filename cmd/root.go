package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/marvelgo/internal/config"
	"github.com/spf13/viper"
)

// CLI represents the complete command structure for the marvelgo application
type CLI struct {
	// Global flags
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	Format   string `short:"F" help:"Output format" enum:"json,yaml" default:"json"`
	BaseURL  string `help:"Marvel API base URL (overrides marvel.base_url)"`

	// Cache flags
	CacheBackend    string `help:"Cache backend: sqlite, memory, badger, postgres, dynamodb or none (overrides cache.backend)"`
	CacheDBFile     string `help:"Path to the SQLite cache file or Badger directory (overrides cache.dbfile)"`
	CacheExpireDays int    `help:"Days a cached response stays valid, 0 keeps it forever (overrides cache.expire_days)" default:"-1"`

	Get     GetCmd     `cmd:"" help:"Fetch a single resource by id"`
	List    ListCmd    `cmd:"" help:"List resources matching query parameters"`
	Related RelatedCmd `cmd:"" help:"List resources related to another resource"`
	Cache   CacheCmd   `cmd:"" help:"Maintain the response cache"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo)
	if err := config.InitConfig(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("marvelgo"),
		kong.Description("Query the Marvel Comics API with a local response cache."),
		kong.UsageOnError(),
	)

	initLogging(parseLevel(cli.LogLevel))
	updateGlobalConfig(&cli)

	if err := ctx.Run(&cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// updateGlobalConfig copies flags that were set into viper.
func updateGlobalConfig(cli *CLI) {
	if cli.BaseURL != "" {
		viper.Set(config.KeyBaseURL, cli.BaseURL)
	}
	if cli.CacheBackend != "" {
		viper.Set(config.KeyCacheBackend, cli.CacheBackend)
	}
	if cli.CacheDBFile != "" {
		viper.Set(config.KeyCacheDBFile, cli.CacheDBFile)
	}
	if cli.CacheExpireDays >= 0 {
		viper.Set(config.KeyCacheExpireDays, cli.CacheExpireDays)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func initLogging(level slog.Level) {
	// Logs go to stderr so command output on stdout stays machine readable.
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
