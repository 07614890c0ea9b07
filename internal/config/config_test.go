package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
guardian:
  api_key: test-key
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultServerAddress, cfg.Server.Address)
	assert.Equal(t, DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, DefaultIdleTimeout, cfg.Server.IdleTimeout)
	assert.Equal(t, DefaultGuardianBaseURL, cfg.Guardian.BaseURL)
	assert.Equal(t, DefaultPageSize, cfg.Guardian.PageSize)
	assert.Equal(t, DefaultRequestDelay, cfg.Guardian.RequestDelay)
	assert.Equal(t, DefaultRequestTimeout, cfg.Guardian.RequestTimeout)
	assert.Equal(t, DefaultContentDir, cfg.Store.ContentDir)
	assert.False(t, cfg.Debug)
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("GUARDIAN_API_KEY", "env-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Guardian.APIKey)
	assert.Equal(t, DefaultGuardianBaseURL, cfg.Guardian.BaseURL)
}

func TestLoadFileValues(t *testing.T) {
	path := writeConfig(t, `
debug: true
server:
  address: ":9000"
guardian:
  api_key: file-key
  page_size: 25
  request_delay: 250ms
store:
  content_dir: /var/lib/sixer/articles
admin:
  allowed_emails:
    - admin@example.com
    - editor@example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, "file-key", cfg.Guardian.APIKey)
	assert.Equal(t, 25, cfg.Guardian.PageSize)
	assert.Equal(t, "/var/lib/sixer/articles", cfg.Store.ContentDir)
	assert.Equal(t, []string{"admin@example.com", "editor@example.com"}, cfg.Admin.AllowedEmails)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
guardian:
  api_key: file-key
  base_url: https://file.example.com
store:
  content_dir: /from/file
`)

	t.Setenv("GUARDIAN_API_KEY", "env-key")
	t.Setenv("GUARDIAN_BASE_URL", "https://env.example.com")
	t.Setenv("CONTENT_DIR", "/from/env")
	t.Setenv("ADMIN_EMAILS", "one@example.com, two@example.com, ")
	t.Setenv("SIXER_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Guardian.APIKey)
	assert.Equal(t, "https://env.example.com", cfg.Guardian.BaseURL)
	assert.Equal(t, "/from/env", cfg.Store.ContentDir)
	assert.Equal(t, []string{"one@example.com", "two@example.com"}, cfg.Admin.AllowedEmails)
	assert.Equal(t, ":7070", cfg.Server.Address)
}

func TestAppDebugParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("GUARDIAN_API_KEY", "test-key")
			t.Setenv("APP_DEBUG", tt.value)

			cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Debug)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Guardian: GuardianConfig{
				APIKey:   "key",
				BaseURL:  DefaultGuardianBaseURL,
				PageSize: DefaultPageSize,
			},
			Store: StoreConfig{ContentDir: DefaultContentDir},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing api key", func(c *Config) { c.Guardian.APIKey = "" }, "api_key"},
		{"missing base url", func(c *Config) { c.Guardian.BaseURL = "" }, "base_url"},
		{"page size zero", func(c *Config) { c.Guardian.PageSize = 0 }, "page_size"},
		{"page size over provider max", func(c *Config) { c.Guardian.PageSize = 51 }, "page_size"},
		{"missing content dir", func(c *Config) { c.Store.ContentDir = "" }, "content_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "guardian: [not a mapping")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
