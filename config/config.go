package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// MinSecretKeyLen is the shortest accepted JWT signing secret.
const MinSecretKeyLen = 32

type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Database Configuration
	Postgres PostgresConfig

	// Authentication & Security Configuration
	JWT    JWTConfig
	Admin  AdminConfig
	Cookie CookieConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig names the deployment, it tags every log entry as "env"
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// HTTPServerConfig is the configuration for the HTTP listener
type HTTPServerConfig struct {
	Host         string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port         int           `env:"HTTP_PORT" envDefault:"17170"`
	Mode         string        `env:"HTTP_MODE" envDefault:"release"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	// CORSOrigins is a comma separated list, empty disables cross-origin access.
	CORSOrigins []string `env:"HTTP_CORS_ORIGINS" envSeparator:","`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for the user directory database
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DBNAME" envDefault:"lldap"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// JWTConfig is the configuration for the JWT
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// AdminConfig is the built-in administrator account
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD"`
}

// CookieConfig is the configuration for the cookies set on /authorize
type CookieConfig struct {
	Domain string `env:"COOKIE_DOMAIN"`
	Secure bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Enabled reports whether both webhook parts are set.
func (d DiscordConfig) Enabled() bool {
	return d.WebhookID != "" && d.WebhookToken != ""
}

// Load loads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads the environment without validating, for callers that still
// override fields before calling Validate.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields that have no usable default.
func (cfg *Config) Validate() error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < MinSecretKeyLen {
		return fmt.Errorf("JWT_SECRET_KEY must be at least %d characters", MinSecretKeyLen)
	}

	if cfg.Admin.Username == "" {
		return fmt.Errorf("ADMIN_USERNAME must not be empty")
	}
	if cfg.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}

	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("HTTP_PORT %d is out of range", cfg.HTTPServer.Port)
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}

	return nil
}
