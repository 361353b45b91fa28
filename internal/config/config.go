// Package config loads the reverie configuration file and resolves the site settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/reverie/internal/foundation"
	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
	"git.home.luguber.info/inful/reverie/internal/i18n"
	"git.home.luguber.info/inful/reverie/internal/theme"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "reverie.yaml"

// Config is the on-disk configuration.
type Config struct {
	Settings SiteSettings      `yaml:"site"`
	Social   map[string]string `yaml:"social,omitempty"`
	Content  ContentConfig     `yaml:"content"`
	Output   OutputConfig      `yaml:"output"`
	Feed     FeedConfig        `yaml:"feed"`
	Logging  LoggingConfig     `yaml:"logging"`

	site Site
}

// SiteSettings is the raw site section before validation.
type SiteSettings struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	URL         string `yaml:"url"`
	Language    string `yaml:"language"`
	Theme       string `yaml:"theme"`
	Email       string `yaml:"email,omitempty"`
}

// ContentConfig locates the posts.
type ContentConfig struct {
	Directory string `yaml:"directory"`
}

// OutputConfig controls where generated files go.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"`
}

// FeedConfig controls the RSS channel.
type FeedConfig struct {
	Path       string `yaml:"path"`
	TTL        int    `yaml:"ttl"`
	Stylesheet string `yaml:"stylesheet,omitempty"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	if err := cfg.resolve(); err != nil {
		panic(fmt.Sprintf("default configuration does not resolve: %v", err))
	}
	return cfg
}

// Load reads, expands and validates a configuration file.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		slog.Warn("Could not load environment file", slog.String("error", err.Error()))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, foundationerrors.ConfigError("configuration file not found").
				WithContext("path", path).
				WithCause(err).
				Build()
		}
		return nil, foundationerrors.FileSystemError("read configuration file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return Parse(data)
}

// Parse decodes configuration YAML, expanding ${VAR} references first.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "invalid configuration YAML").
			Fatal().
			Build()
	}
	applyDefaults(&cfg)
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Settings.URL == "" {
		cfg.Settings.URL = "https://example.com"
	}
	if cfg.Settings.Language == "" {
		cfg.Settings.Language = string(i18n.English)
	}
	if cfg.Settings.Theme == "" {
		cfg.Settings.Theme = theme.Default
	}
	if cfg.Content.Directory == "" {
		cfg.Content.Directory = "src/content/blog"
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "dist"
	}
	if cfg.Feed.Path == "" {
		cfg.Feed.Path = "rss.xml"
	}
	if cfg.Feed.TTL <= 0 {
		cfg.Feed.TTL = 60
	}
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
}

// FeedExtensions are the file extensions accepted for feed.path.
var FeedExtensions = []string{".xml", ".rss"}

var configValidators = foundation.NewValidatorChain(
	foundation.Field(func(c *Config) string { return strings.ToLower(path.Ext(c.Feed.Path)) },
		foundation.OneOf("feed.path extension", FeedExtensions)),
)

func (c *Config) resolve() error {
	if strings.Contains(c.Feed.Path, "..") {
		return foundationerrors.ConfigError("feed path must stay inside the output directory").
			WithContext("path", c.Feed.Path).
			Build()
	}
	if err := configValidators.Validate(c).ToError(); err != nil {
		return err
	}
	site, err := NewSite(c.Settings, c.Social)
	if err != nil {
		return err
	}
	c.site = site
	return nil
}

// Site returns the resolved site settings.
func (c *Config) Site() Site {
	return c.site
}

// Init writes an example configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return foundationerrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	example := Default()
	example.Settings.Title = "Reverie"
	example.Settings.Description = "Personal thoughts, stories, and life reflections"
	example.Settings.Author = "Your Name"
	example.Settings.Email = "${REVERIE_EMAIL}"
	example.Social = map[string]string{
		"twitter": "https://twitter.com",
		"github":  "https://github.com",
		"email":   "hello@example.com",
	}
	example.Output.Clean = true
	example.Feed.Stylesheet = "/rss/pretty-feed-v3.xsl"

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "write configuration file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}
