package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process settings for cmd/server. The core packages take none.
type Config struct {
	Addr            string        `env:"OASIS_ADDR" envDefault:":8080"`
	StoreBackend    string        `env:"OASIS_STORE_BACKEND" envDefault:"sqlite"`
	SQLitePath      string        `env:"OASIS_SQLITE_PATH" envDefault:"./data/oasis.db"`
	MigrationsDir   string        `env:"OASIS_MIGRATIONS_DIR"`
	BadgerDir       string        `env:"OASIS_BADGER_DIR" envDefault:"./data/badger"`
	StoreKey        string        `env:"OASIS_STORE_KEY" envDefault:"oasis_app_data_v1"`
	StorePassphrase string        `env:"OASIS_STORE_PASSPHRASE"`
	SessionSecret   string        `env:"OASIS_SESSION_SECRET" envDefault:"oasis-dev-secret"`
	SessionTTL      time.Duration `env:"OASIS_SESSION_TTL" envDefault:"2h"`
	LegacySnapshot  string        `env:"OASIS_LEGACY_SNAPSHOT"`
	CORSOrigin      string        `env:"OASIS_CORS_ORIGIN" envDefault:"*"`
	DefaultLocale   string        `env:"OASIS_DEFAULT_LOCALE" envDefault:"pt"`
	StaticDir       string        `env:"OASIS_STATIC_DIR"`
	Commit          string        `env:"OASIS_COMMIT"`
	BuildTime       string        `env:"OASIS_BUILD_TIME"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads an optional .env file at dotenvPath, then parses the environment.
// Variables already set in the environment win over the file.
func Load(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	switch cfg.StoreBackend {
	case "sqlite", "badger", "memory":
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	return cfg, nil
}

// DefaultSessionSecret signs session tokens when OASIS_SESSION_SECRET is unset.
// It is public, so tokens signed with it can be forged.
const DefaultSessionSecret = "oasis-dev-secret"

// Warnings lists settings that work but should not reach production.
func (c Config) Warnings() []string {
	var out []string
	if c.SessionSecret == "" || c.SessionSecret == DefaultSessionSecret {
		out = append(out, "[CONFIG] OASIS_SESSION_SECRET is not set; session tokens are signed with the development default")
	}
	return out
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
