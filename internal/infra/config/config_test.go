package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9594", cfg.HTTP.Address)
	require.Equal(t, "data/qa-database.json", cfg.KnowledgeBase.BundledPath)
	require.Equal(t, 5.0, cfg.FAQ.Weights.KeywordSubstring)
	require.Equal(t, 20.0, cfg.FAQ.Weights.LengthDivisor)
	require.Zero(t, cfg.FAQ.MinConfidence)
	require.False(t, cfg.Admin.Enabled)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":7000"
knowledgeBase:
  dataDir: /srv/faq
  reloadInterval: 1m
faq:
  minConfidence: 0.5
  weights:
    keywordSubstring: 6
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DATA_DIR", "/override")
	t.Setenv("KB_VALKEY_ENABLED", "true")
	t.Setenv("KB_VALKEY_ADDR", "localhost:6379")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.HTTP.Address)
	require.Equal(t, "/override", cfg.KnowledgeBase.DataDir)
	require.Equal(t, time.Minute, cfg.KnowledgeBase.ReloadInterval)
	require.Equal(t, 0.5, cfg.FAQ.MinConfidence)
	require.Equal(t, 6.0, cfg.FAQ.Weights.KeywordSubstring)
	require.Equal(t, 3.0, cfg.FAQ.Weights.PromptSubstring)
	require.True(t, cfg.KnowledgeBase.Valkey.Enabled)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty address", mutate: func(c *Config) { c.HTTP.Address = "" }},
		{name: "negative threshold", mutate: func(c *Config) { c.FAQ.MinConfidence = -1 }},
		{name: "zero length divisor", mutate: func(c *Config) { c.FAQ.Weights.LengthDivisor = 0 }},
		{name: "valkey without addr", mutate: func(c *Config) { c.KnowledgeBase.Valkey.Enabled = true }},
		{name: "object storage without bucket", mutate: func(c *Config) {
			c.KnowledgeBase.ObjectStorage.Enabled = true
			c.KnowledgeBase.ObjectStorage.Endpoint = "http://minio:9000"
		}},
		{name: "short admin secret", mutate: func(c *Config) {
			c.Admin.Enabled = true
			c.Admin.Secret = "short"
		}},
		{name: "unsafe table name", mutate: func(c *Config) {
			c.KnowledgeBase.Postgres.DSN = "postgres://localhost/faq"
			c.KnowledgeBase.Postgres.Table = "faq; drop table x"
		}},
		{name: "metrics path", mutate: func(c *Config) { c.Metrics.Path = "metrics" }},
	}

	require.NoError(t, defaultConfig().Validate())
	for _, tc := range cases {
		cfg := defaultConfig()
		tc.mutate(cfg)
		require.Error(t, cfg.Validate(), tc.name)
	}
}
