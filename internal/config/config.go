package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider exposes read-only access to the application configuration.
type Provider interface {
	GetAddr() string
	GetAppEnv() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetContentDir() string
	GetContentWatch() bool
	GetTracingEnabled() bool
	GetZipkinURL() string
	GetServiceName() string
	IsDevelopment() bool
}

// Config holds all configuration for the application.
type Config struct {
	Addr           string `env:"APP_ADDR" envDefault:":8080"`
	AppEnv         string `env:"APP_ENV" envDefault:"development"`
	AppBaseURL     string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	SessionSecret  string `env:"SESSION_SECRET"`
	ContentDir     string `env:"CONTENT_DIR"`
	ContentWatch   bool   `env:"CONTENT_WATCH" envDefault:"false"`
	TracingEnabled bool   `env:"TRACING_ENABLED" envDefault:"false"`
	ZipkinURL      string `env:"ZIPKIN_URL" envDefault:"http://localhost:9411/api/v2/spans"`
	ServiceName    string `env:"SERVICE_NAME" envDefault:"hidaya-landing"`
}

// devSessionSecret is only used outside production when SESSION_SECRET is unset.
const devSessionSecret = "hidaya-development-session-secret"

// New loads configuration from a .env file, if present, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads configuration from the current environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.SessionSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("SESSION_SECRET must be set when APP_ENV=%s", cfg.AppEnv)
		}
		cfg.SessionSecret = devSessionSecret
	}

	return &cfg, nil
}

func (c *Config) GetAddr() string          { return c.Addr }
func (c *Config) GetAppEnv() string        { return c.AppEnv }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetContentDir() string    { return c.ContentDir }
func (c *Config) GetContentWatch() bool    { return c.ContentWatch && c.ContentDir != "" }
func (c *Config) GetTracingEnabled() bool  { return c.TracingEnabled }
func (c *Config) GetZipkinURL() string     { return c.ZipkinURL }
func (c *Config) GetServiceName() string   { return c.ServiceName }

// IsDevelopment reports whether the app runs in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "" || c.AppEnv == "development" || c.AppEnv == "test"
}
