package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, used, err := Load(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, "", used)
	assert.Equal(t, DefaultEndpoint, cfg.Source.Endpoint)
	assert.Equal(t, DefaultHitsPerPage, cfg.Source.HitsPerPage)
	assert.Equal(t, DefaultRateLimit, cfg.Source.RateLimit)
	assert.True(t, cfg.UI.RememberState)
	assert.Equal(t, HistorySQLite, cfg.Data.History)
	assert.Equal(t, filepath.Join(home, ".hitlist", "data"), cfg.Data.Dir)
	assert.Equal(t, SourceHN, cfg.Source.Kind)
}

func TestLoad_GitHubSource(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HITLIST_SOURCE_TOKEN", "ghp_test")
	path := writeConfig(t, `
[source]
kind = "GitHub"
github_url = "https://ghe.example.com/api/v3/"
`)

	cfg, _, err := Load(viper.New(), path)

	require.NoError(t, err)
	assert.Equal(t, SourceGitHub, cfg.Source.Kind)
	assert.Equal(t, "ghp_test", cfg.Source.Token)
	assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.Source.GitHubURL)
}

func TestLoad_HomeConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".hitlist")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[source]\nhits_per_page = 7\n"), 0600))

	cfg, used, err := Load(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), used)
	assert.Equal(t, 7, cfg.Source.HitsPerPage)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
[source]
endpoint = "http://localhost:9999/search"
hits_per_page = 50
timeout = "3s"
rate_limit = 0

[ui]
default_sort = "point"
remember_state = false

[data]
dir = "/tmp/hitlist-data"
history = "Memory"
`)

	cfg, used, err := Load(viper.New(), path)

	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "http://localhost:9999/search", cfg.Source.Endpoint)
	assert.Equal(t, 50, cfg.Source.HitsPerPage)
	assert.Equal(t, 0.0, cfg.Source.RateLimit)
	assert.False(t, cfg.UI.RememberState)
	assert.Equal(t, "/tmp/hitlist-data", cfg.Data.Dir)
	assert.Equal(t, HistoryMemory, cfg.Data.History)

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)

	key, err := cfg.DefaultSortKey()
	require.NoError(t, err)
	assert.Equal(t, domain.SortPoint, key)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HITLIST_SOURCE_ENDPOINT", "http://env.test/search")
	t.Setenv("HITLIST_DATA_HISTORY", "off")

	cfg, _, err := Load(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, "http://env.test/search", cfg.Source.Endpoint)
	assert.Equal(t, HistoryOff, cfg.Data.History)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad timeout", content: "[source]\ntimeout = \"soon\"\n"},
		{name: "negative timeout", content: "[source]\ntimeout = \"-1s\"\n"},
		{name: "bad sort", content: "[ui]\ndefault_sort = \"POINTS\"\n"},
		{name: "bad history", content: "[data]\nhistory = \"redis\"\n"},
		{name: "bad source kind", content: "[source]\nkind = \"reddit\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(viper.New(), writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestFillDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	cfg := Config{Source: SourceConfig{HitsPerPage: -1, RateLimit: -5}, Data: DataConfig{History: " SQLITE "}}

	cfg.FillDefaults()

	assert.Equal(t, DefaultEndpoint, cfg.Source.Endpoint)
	assert.Equal(t, DefaultHitsPerPage, cfg.Source.HitsPerPage)
	assert.Equal(t, DefaultTimeout, cfg.Source.Timeout)
	assert.Equal(t, 0.0, cfg.Source.RateLimit)
	assert.Equal(t, HistorySQLite, cfg.Data.History)
	assert.Equal(t, filepath.Join("/home/tester", ".hitlist", "data"), cfg.Data.Dir)
}
