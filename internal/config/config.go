// ABOUTME: Configuration loading and parsing for mcp-gateway
// ABOUTME: Supports YAML files with environment variable expansion and validation

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete mcp-gateway configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Sessions SessionsConfig `yaml:"sessions"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds server address configuration
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
}

// SessionsConfig holds session and broadcast tuning
type SessionsConfig struct {
	HistoryLimit     int           `yaml:"history_limit"`
	BroadcastTimeout time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	BroadcastTimeoutRaw string `yaml:"broadcast_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultHistoryLimit bounds per-session message history when unconfigured.
const DefaultHistoryLimit = 256

// DefaultBroadcastTimeout caps how long a broadcast waits per recipient.
const DefaultBroadcastTimeout = 250 * time.Millisecond

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyDefaults fills optional fields that were left unset.
func (c *Config) applyDefaults() {
	if c.Sessions.HistoryLimit == 0 {
		c.Sessions.HistoryLimit = DefaultHistoryLimit
	}
	if c.Sessions.BroadcastTimeout == 0 {
		c.Sessions.BroadcastTimeout = DefaultBroadcastTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}

	if c.Sessions.HistoryLimit < 0 {
		return fmt.Errorf("sessions.history_limit must not be negative")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	if cfg.Sessions.BroadcastTimeoutRaw != "" {
		d, err := time.ParseDuration(cfg.Sessions.BroadcastTimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing broadcast_timeout %q: %w", cfg.Sessions.BroadcastTimeoutRaw, err)
		}
		cfg.Sessions.BroadcastTimeout = d
	}
	return nil
}
