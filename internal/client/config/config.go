package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/versioncheck/internal/logging"
)

// Config holds runtime settings for the version-check console.
//
// The env tags name the VC_* variables read by cleanenv; durations there use
// time.ParseDuration syntax ("15s", "24h").
type Config struct {
	APIBaseURL     string        `env:"VC_API_BASE_URL"`
	RequestTimeout time.Duration `env:"VC_REQUEST_TIMEOUT"`

	AccessTokenMaxAge  time.Duration `env:"VC_ACCESS_TOKEN_MAX_AGE"`
	RefreshTokenMaxAge time.Duration `env:"VC_REFRESH_TOKEN_MAX_AGE"`
	UserEmailMaxAge    time.Duration `env:"VC_USER_EMAIL_MAX_AGE"`

	DatabasePath string `env:"VC_DATABASE_PATH"`

	LogLevel  string `env:"VC_LOG_LEVEL"`
	LogFormat string `env:"VC_LOG_FORMAT"`

	SentryDSN   string `env:"VC_SENTRY_DSN"`
	Environment string `env:"VC_ENVIRONMENT"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.AccessTokenMaxAge = time.Hour
	c.RefreshTokenMaxAge = 24 * time.Hour
	c.UserEmailMaxAge = 24 * time.Hour
	c.DatabasePath = "data/console.db"
	c.LogLevel = "info"
	c.LogFormat = logging.FormatConsole
	c.SentryDSN = ""
	c.Environment = "development"
}

// LoadConfig builds a Config from defaults, then a dotenv file, a JSON file,
// VC_* environment variables and finally the command-line flags in args.
// Later sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotenv(args); err != nil {
		return nil, fmt.Errorf("dotenv: %w", err)
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the console cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api base url %q", c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.AccessTokenMaxAge <= 0 || c.RefreshTokenMaxAge <= 0 || c.UserEmailMaxAge <= 0 {
		return fmt.Errorf("credential max ages must be positive")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is empty")
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
