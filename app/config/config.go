// Package config loads the service configuration from the environment.
//
// Variables use the ESTATE_ prefix and a double underscore between nesting
// levels, so ESTATE_SERVER__PORT sets server.port. JWT_SECRET_KEY is also
// read without the prefix. A .env file in the working directory is loaded
// first when present.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix = "ESTATE_"
	// SecretEnv is the unprefixed variable holding the token secret.
	SecretEnv = "JWT_SECRET_KEY"
)

type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
	Auth     AuthConfig     `koanf:"auth" validate:"required"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	RequestTimeout  time.Duration `koanf:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type DatabaseConfig struct {
	Driver   string `koanf:"driver" validate:"oneof=badger postgres"`
	Path     string `koanf:"path" validate:"required_if=Driver badger"`
	URL      string `koanf:"url" validate:"required_if=Driver postgres"`
	MaxConns int32  `koanf:"max_conns" validate:"gte=0"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

type AuthConfig struct {
	JWTSecretKey string `koanf:"jwt_secret_key" validate:"required"`
	CookieName   string `koanf:"cookie_name" validate:"required"`
}

var defaults = map[string]any{
	"primary.env":             "development",
	"server.port":             8800,
	"server.read_timeout":     10 * time.Second,
	"server.write_timeout":    10 * time.Second,
	"server.idle_timeout":     60 * time.Second,
	"server.request_timeout":  5 * time.Second,
	"server.shutdown_timeout": 10 * time.Second,
	"database.driver":         "badger",
	"database.path":           "data/badger",
	"database.max_conns":      10,
	"logging.level":           "info",
	"logging.format":          "json",
	"auth.cookie_name":        "token",
}

// Load reads defaults, then the environment, and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("could not set default %s: %w", key, err)
		}
	}

	err := k.Load(env.Provider(SecretEnv, ".", func(s string) string {
		if s == SecretEnv {
			return "auth.jwt_secret_key"
		}
		return ""
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", SecretEnv, err)
	}

	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// envKey maps ESTATE_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
