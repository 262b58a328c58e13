// Package cli implements the gitfolio command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cemremete/gitfolio/pkg/buildinfo"
	"github.com/cemremete/gitfolio/pkg/cache"
	"github.com/cemremete/gitfolio/pkg/github"
	"github.com/cemremete/gitfolio/pkg/portfolio"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gitfolio"

	// settingsFile is the settings filename inside the config directory.
	settingsFile = "settings.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gitfolio",
		Short:        "Gitfolio turns a GitHub account into a portfolio site",
		Long:         `Gitfolio fetches a GitHub account's public repositories and generates a self-contained HTML portfolio, with template variants, SEO metadata, and custom colors.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.seoCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Fetch Options & Aggregator Factory
// =============================================================================

// fetchOpts holds the flags shared by every command that talks to GitHub.
type fetchOpts struct {
	token   string // API token (falls back to GITHUB_TOKEN)
	noCache bool   // skip the snapshot cache entirely
	redis   string // redis address for the snapshot cache
	refresh bool   // ignore a cached snapshot, refetch
}

// addFetchFlags registers the shared fetch flags on a command.
func addFetchFlags(cmd *cobra.Command, opts *fetchOpts) {
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the snapshot cache")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for the snapshot cache (host:port)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached snapshot and refetch")
}

// newAggregator wires the client, snapshot store, and aggregator for CLI use.
func (c *CLI) newAggregator(cmd *cobra.Command, opts *fetchOpts) (*portfolio.Aggregator, *portfolio.SnapshotStore) {
	token := opts.token
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	var clientOpts []github.Option
	if token != "" {
		clientOpts = append(clientOpts, github.WithToken(token))
	}
	client := github.NewClient(clientOpts...)

	store := portfolio.NewSnapshotStore(c.newCache(cmd, opts), c.Logger)
	if opts.refresh {
		store.Clear(cmd.Context())
	}
	return portfolio.NewAggregator(client, store, c.Logger), store
}

func (c *CLI) newCache(cmd *cobra.Command, opts *fetchOpts) cache.Cache {
	if opts.noCache {
		return cache.NewNullCache()
	}
	if opts.redis != "" {
		rc, err := cache.NewRedisCache(cmd.Context(), opts.redis)
		if err != nil {
			c.Logger.Warn("redis unavailable, falling back to file cache", "err", err)
		} else {
			return rc
		}
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/gitfolio/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/gitfolio/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadSettings reads the persisted settings, falling back to defaults when
// no config directory is available.
func (c *CLI) loadSettings() portfolio.Settings {
	dir, err := configDir()
	if err != nil {
		return portfolio.DefaultSettings()
	}
	return portfolio.LoadSettings(filepath.Join(dir, settingsFile), c.Logger)
}

// parseFeatured parses a comma-separated repository list.
func parseFeatured(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
