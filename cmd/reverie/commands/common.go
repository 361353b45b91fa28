// Package commands implements the reverie subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/reverie/internal/config"
)

// Global is shared by all subcommands.
type Global struct {
	// Out receives user-facing output; nil means stdout.
	Out io.Writer
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"reverie.yaml" env:"REVERIE_CONFIG"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build        BuildCmd        `cmd:"" help:"Generate theme, translations, post data, RSS feed and sitemap"`
	Init         InitCmd         `cmd:"" help:"Initialize a new configuration file"`
	Migrate      MigrateCmd      `cmd:"" help:"Convert posts from another blog engine into MDX"`
	Themes       ThemesCmd       `cmd:"" help:"List themes or print a theme stylesheet"`
	Translations TranslationsCmd `cmd:"" help:"Print or check the UI string tables"`
	Stats        StatsCmd        `cmd:"" help:"Show word count and reading time for a post"`
}

// AfterApply runs after flag parsing; sets up logging before any config is read.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	setupLogging(c.Verbose, config.LoggingConfig{Level: config.LogLevelInfo, Format: config.LogFormatText})
	return nil
}

// loadConfig reads root.Config and reapplies logging from its logging section.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	setupLogging(root.Verbose, cfg.Logging)
	return cfg, nil
}

func setupLogging(verbose bool, lc config.LoggingConfig) {
	level := lc.Level.Slog()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if lc.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
