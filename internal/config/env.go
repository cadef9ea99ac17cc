package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/i18n"
)

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr        string   `env:"COMPOUND_ADDR"          envDefault:":8080"`
	Environment string   `env:"COMPOUND_ENV"`
	DefaultLang string   `env:"COMPOUND_DEFAULT_LANG"  envDefault:"ko"`
	MaxPeriods  int      `env:"COMPOUND_MAX_PERIODS"   envDefault:"1000"`
	CORSOrigins []string `env:"COMPOUND_CORS_ORIGINS"  envDefault:"*" envSeparator:","`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads ServerConfig from the environment and validates it.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// Validate checks the parsed values and fills empty ones with defaults.
func (c *ServerConfig) Validate() error {
	c.DefaultLang = strings.TrimSpace(c.DefaultLang)
	if c.DefaultLang == "" {
		c.DefaultLang = i18n.Code(i18n.DefaultTag())
	}
	if !i18n.IsSupportedCode(c.DefaultLang) {
		return fmt.Errorf("COMPOUND_DEFAULT_LANG %q is not supported (use ko, en or ja)", c.DefaultLang)
	}
	if c.MaxPeriods <= 0 {
		c.MaxPeriods = domain.DefaultMaxPeriods
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = ":8080"
	}
	return nil
}

// IsProduction reports whether the server runs in release mode.
func (c ServerConfig) IsProduction() bool {
	mode := strings.ToLower(strings.TrimSpace(c.Environment))
	return mode == "production" || mode == "prod"
}
