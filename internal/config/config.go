// Package config loads the dashboard's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Identity provider names accepted in IDENTITY_PROVIDER.
const (
	ProviderJWT    = "jwt"
	ProviderKratos = "kratos"
)

// minSecretLen is the shortest JWT_SECRET accepted.
const minSecretLen = 32

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// AllowedEmails are the only addresses admitted to the dashboard.
	AllowedEmails []string `env:"ALLOWED_EMAILS" envSeparator:","`

	IdentityProvider string        `env:"IDENTITY_PROVIDER" envDefault:"jwt"`
	ProviderTimeout  time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"3s"`
	SessionCookie    string        `env:"SESSION_COOKIE" envDefault:"amastore_session"`
	JWTSecret        string        `env:"JWT_SECRET"`
	JWTSecretFile    string        `env:"JWT_SECRET_FILE"`
	TokenTTL         time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	KratosURL        string        `env:"KRATOS_URL"`

	// Identity provider pages linked from the entry page and the account menu.
	LoginURL    string `env:"LOGIN_URL" envDefault:"/api/auth/login"`
	RegisterURL string `env:"REGISTER_URL" envDefault:"/api/auth/register"`
	LogoutURL   string `env:"LOGOUT_URL" envDefault:"/api/auth/logout"`

	StaticDir       string        `env:"STATIC_DIR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.AllowedEmails = normalizeEmails(cfg.AllowedEmails)

	if cfg.JWTSecret == "" && cfg.JWTSecretFile != "" {
		content, err := os.ReadFile(cfg.JWTSecretFile)
		if err != nil {
			return nil, fmt.Errorf("read JWT_SECRET_FILE: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: PORT must be between 1 and 65535, got %d", ErrInvalidConfig, c.Port)
	}
	if len(c.AllowedEmails) == 0 {
		return fmt.Errorf("%w: ALLOWED_EMAILS must list at least one address", ErrInvalidConfig)
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("%w: PROVIDER_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig)
	}

	switch c.IdentityProvider {
	case ProviderJWT:
		if len(c.JWTSecret) < minSecretLen {
			return fmt.Errorf("%w: JWT_SECRET must be at least %d bytes", ErrInvalidConfig, minSecretLen)
		}
		if c.SessionCookie == "" {
			return fmt.Errorf("%w: SESSION_COOKIE cannot be empty", ErrInvalidConfig)
		}
		if c.TokenTTL <= 0 {
			return fmt.Errorf("%w: TOKEN_TTL must be positive", ErrInvalidConfig)
		}
	case ProviderKratos:
		if c.KratosURL == "" {
			return fmt.Errorf("%w: KRATOS_URL is required for the kratos provider", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown IDENTITY_PROVIDER %q", ErrInvalidConfig, c.IdentityProvider)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: LOG_FORMAT must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// normalizeEmails trims list entries and drops blanks. Entries are otherwise
// kept as written; matching against sessions stays exact.
func normalizeEmails(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
