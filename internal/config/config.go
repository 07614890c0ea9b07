// Package config loads and validates the sixer service configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultServerAddress is the default listen address
	DefaultServerAddress = ":8090"
	// DefaultReadTimeout is the default HTTP read timeout
	DefaultReadTimeout = 10 * time.Second
	// DefaultWriteTimeout is the default HTTP write timeout
	DefaultWriteTimeout = 30 * time.Second
	// DefaultIdleTimeout is the default HTTP idle timeout
	DefaultIdleTimeout = 60 * time.Second

	// DefaultGuardianBaseURL is the Guardian content API endpoint
	DefaultGuardianBaseURL = "https://content.guardianapis.com"
	// DefaultPageSize is the maximum page size the provider allows
	DefaultPageSize = 50
	// DefaultRequestDelay is the politeness delay between page requests
	DefaultRequestDelay = 100 * time.Millisecond
	// DefaultRequestTimeout is the per-request timeout for provider calls
	DefaultRequestTimeout = 15 * time.Second

	// DefaultContentDir is where article files are stored
	DefaultContentDir = "content/articles"
)

type Config struct {
	Debug    bool           `yaml:"debug"` // Controls log level and format
	Server   ServerConfig   `yaml:"server"`
	Guardian GuardianConfig `yaml:"guardian"`
	Store    StoreConfig    `yaml:"store"`
	Admin    AdminConfig    `yaml:"admin"`
}

type ServerConfig struct {
	Address      string        `yaml:"address"`       // e.g., ":8090"
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // Default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout"` // Default: 30s
	IdleTimeout  time.Duration `yaml:"idle_timeout"`  // Default: 60s
}

type GuardianConfig struct {
	BaseURL        string        `yaml:"base_url"`
	APIKey         string        `yaml:"api_key"`
	PageSize       int           `yaml:"page_size"`       // Provider maximum is 50
	RequestDelay   time.Duration `yaml:"request_delay"`   // Sleep between page requests
	RequestTimeout time.Duration `yaml:"request_timeout"` // Per HTTP request
}

type StoreConfig struct {
	ContentDir string `yaml:"content_dir"`
}

type AdminConfig struct {
	// AllowedEmails is the identity allow-list for admin actions.
	AllowedEmails []string `yaml:"allowed_emails"`
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Guardian.APIKey == "" {
		return errors.New("guardian.api_key is required")
	}
	if c.Guardian.BaseURL == "" {
		return errors.New("guardian.base_url is required")
	}
	if c.Guardian.PageSize <= 0 || c.Guardian.PageSize > DefaultPageSize {
		return fmt.Errorf("guardian.page_size must be between 1 and %d, got %d",
			DefaultPageSize, c.Guardian.PageSize)
	}
	if c.Store.ContentDir == "" {
		return errors.New("store.content_dir is required")
	}
	return nil
}

// setDefaults sets default values for configuration fields
func setDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = DefaultServerAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Guardian.BaseURL == "" {
		cfg.Guardian.BaseURL = DefaultGuardianBaseURL
	}
	if cfg.Guardian.PageSize == 0 {
		cfg.Guardian.PageSize = DefaultPageSize
	}
	if cfg.Guardian.RequestDelay == 0 {
		cfg.Guardian.RequestDelay = DefaultRequestDelay
	}
	if cfg.Guardian.RequestTimeout == 0 {
		cfg.Guardian.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Store.ContentDir == "" {
		cfg.Store.ContentDir = DefaultContentDir
	}
}

// overrideWithEnvVars overrides configuration with environment variables
func overrideWithEnvVars(cfg *Config) {
	if apiKey := os.Getenv("GUARDIAN_API_KEY"); apiKey != "" {
		cfg.Guardian.APIKey = apiKey
	}
	if baseURL := os.Getenv("GUARDIAN_BASE_URL"); baseURL != "" {
		cfg.Guardian.BaseURL = baseURL
	}
	if contentDir := os.Getenv("CONTENT_DIR"); contentDir != "" {
		cfg.Store.ContentDir = contentDir
	}
	if emails := os.Getenv("ADMIN_EMAILS"); emails != "" {
		cfg.Admin.AllowedEmails = splitAndTrim(emails)
	}
	if port := os.Getenv("SIXER_PORT"); port != "" {
		cfg.Server.Address = ":" + port
	}
	if appDebug := os.Getenv("APP_DEBUG"); appDebug != "" {
		cfg.Debug = parseBool(appDebug)
	}
}

// Load reads the configuration file, applies defaults and environment
// overrides, and validates the result. A missing file is not an error:
// defaults plus environment variables are enough to run.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parse config: %w", unmarshalErr)
		}
	case os.IsNotExist(err):
		// Fall through to defaults + env
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	setDefaults(&cfg)
	overrideWithEnvVars(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// parseBool parses a string value as a boolean.
// Returns true for "true", "1", "yes" (case-insensitive), false otherwise.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// splitAndTrim splits a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
