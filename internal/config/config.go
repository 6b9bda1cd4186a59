// Package config loads hitlist settings with viper.
//
// Settings come from ~/.hitlist/config.toml (or the --config flag),
// overridden by HITLIST_* environment variables, e.g.
// HITLIST_SOURCE_ENDPOINT or HITLIST_DATA_HISTORY.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HITLIST"

// Item sources.
const (
	SourceHN     = "hn"
	SourceGitHub = "github"
)

// History backends.
const (
	HistorySQLite = "sqlite"
	HistoryMemory = "memory"
	HistoryOff    = "off"
)

// Defaults.
const (
	DefaultEndpoint    = "https://hn.algolia.com/api/v1/search"
	DefaultHitsPerPage = 20
	DefaultTimeout     = "10s"
	DefaultRateLimit   = 2.0
)

// SourceConfig controls the item source.
type SourceConfig struct {
	Kind        string  `mapstructure:"kind"`       // hn or github
	Token       string  `mapstructure:"token"`      // github only
	GitHubURL   string  `mapstructure:"github_url"` // github only, empty for api.github.com
	Endpoint    string  `mapstructure:"endpoint"`
	HitsPerPage int     `mapstructure:"hits_per_page"`
	Timeout     string  `mapstructure:"timeout"`    // duration string, e.g., "10s"
	RateLimit   float64 `mapstructure:"rate_limit"` // requests per second, 0 disables
}

// UIConfig controls presentation defaults.
type UIConfig struct {
	DefaultSort   string `mapstructure:"default_sort"` // NONE, TITLE, AUTHOR, COMMENT, POINT
	RememberState bool   `mapstructure:"remember_state"`
}

// DataConfig controls where local data lives.
type DataConfig struct {
	Dir     string `mapstructure:"dir"`
	History string `mapstructure:"history"` // sqlite, memory or off
}

// Config is the top-level configuration structure.
type Config struct {
	Source SourceConfig `mapstructure:"source"`
	UI     UIConfig     `mapstructure:"ui"`
	Data   DataConfig   `mapstructure:"data"`
}

// HomeDir returns ~/.hitlist.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".hitlist"), nil
}

// SetDefaults registers every key with v so environment overrides
// reach keys that are absent from the config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("source.kind", SourceHN)
	v.SetDefault("source.token", "")
	v.SetDefault("source.github_url", "")
	v.SetDefault("source.endpoint", DefaultEndpoint)
	v.SetDefault("source.hits_per_page", DefaultHitsPerPage)
	v.SetDefault("source.timeout", DefaultTimeout)
	v.SetDefault("source.rate_limit", DefaultRateLimit)
	v.SetDefault("ui.default_sort", "")
	v.SetDefault("ui.remember_state", true)
	v.SetDefault("data.dir", "")
	v.SetDefault("data.history", HistorySQLite)
}

// Load reads the config file into a Config. An explicit file must exist;
// otherwise a missing ~/.hitlist/config.toml is not an error. It returns
// the file used, or "" when none was read.
func Load(v *viper.Viper, file string) (Config, string, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if dir, err := HomeDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	var cfg Config
	used := ""
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return cfg, "", fmt.Errorf("reading config: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, used, fmt.Errorf("parsing config: %w", err)
	}
	cfg.FillDefaults()
	return cfg, used, cfg.Validate()
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	c.Source.Kind = strings.ToLower(strings.TrimSpace(c.Source.Kind))
	if c.Source.Kind == "" {
		c.Source.Kind = SourceHN
	}
	if strings.TrimSpace(c.Source.Endpoint) == "" {
		c.Source.Endpoint = DefaultEndpoint
	}
	if c.Source.HitsPerPage <= 0 {
		c.Source.HitsPerPage = DefaultHitsPerPage
	}
	if c.Source.Timeout == "" {
		c.Source.Timeout = DefaultTimeout
	}
	if c.Source.RateLimit < 0 {
		c.Source.RateLimit = 0
	}
	if c.Data.Dir == "" {
		if dir, err := HomeDir(); err == nil {
			c.Data.Dir = filepath.Join(dir, "data")
		}
	}
	c.Data.History = strings.ToLower(strings.TrimSpace(c.Data.History))
	if c.Data.History == "" {
		c.Data.History = HistorySQLite
	}
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.DefaultSortKey(); err != nil {
		return fmt.Errorf("ui.default_sort: %w", err)
	}
	switch c.Source.Kind {
	case SourceHN, SourceGitHub:
	default:
		return fmt.Errorf("%w: source.kind %q (want hn or github)", domain.ErrInvalidInput, c.Source.Kind)
	}
	switch c.Data.History {
	case HistorySQLite, HistoryMemory, HistoryOff:
	default:
		return fmt.Errorf("%w: data.history %q (want sqlite, memory or off)", domain.ErrInvalidInput, c.Data.History)
	}
	return nil
}

// TimeoutDuration parses Source.Timeout.
func (c Config) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Source.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: source.timeout %q: %v", domain.ErrInvalidInput, c.Source.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: source.timeout must be positive", domain.ErrInvalidInput)
	}
	return d, nil
}

// DefaultSortKey parses UI.DefaultSort.
func (c Config) DefaultSortKey() (domain.SortKey, error) {
	return domain.ParseSortKey(c.UI.DefaultSort)
}
