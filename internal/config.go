package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SandboxURL           = "https://sandbox.asaas.com"
	DefaultProductionURL = "https://api.asaas.com"

	DefaultTimeout = 30 * time.Second
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type APIConfig struct {
	AccessToken   string        `mapstructure:"access_token" validate:"required"`
	Production    bool          `mapstructure:"production"`
	ProductionURL string        `mapstructure:"production_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

// BaseURL picks the host the gateway talks to. The sandbox host is fixed;
// the production host can be overridden for API-compatible deployments.
func (c *APIConfig) BaseURL() string {
	if !c.Production {
		return SandboxURL
	}
	if c.ProductionURL != "" {
		return c.ProductionURL
	}
	return DefaultProductionURL
}

func (c *APIConfig) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// LoadConfigFromEnv builds a Config purely from environment variables, for
// deployments without a config file.
func LoadConfigFromEnv() *Config {
	return &Config{
		API: APIConfig{
			AccessToken:   getEnv("ASAAS_ACCESS_TOKEN", ""),
			Production:    getEnvAsBool("ASAAS_PRODUCTION", false),
			ProductionURL: getEnv("ASAAS_PRODUCTION_URL", ""),
			Timeout:       getEnvAsDuration("ASAAS_TIMEOUT", DefaultTimeout),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.API.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("api config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *APIConfig) Validate() error {
	if c.AccessToken == "" {
		return errors.New("access_token is required")
	}
	if c.ProductionURL != "" {
		u, err := url.Parse(c.ProductionURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid production_url %q", c.ProductionURL)
		}
	}
	if c.Timeout < 0 {
		return errors.New("timeout cannot be negative")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Level)
	}
	switch c.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", c.Format)
	}
	return nil
}
