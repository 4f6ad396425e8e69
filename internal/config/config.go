package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rpggio/docseed/internal/repository"
	"gopkg.in/yaml.v3"
)

// Config defines seeder configuration.
type Config struct {
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
}

// StoreConfig selects and addresses the document store.
type StoreConfig struct {
	// Type is "sqlite" or "mongodb".
	Type string `yaml:"type" env:"DOCSEED_STORE_TYPE"`
	// URI is a file path for sqlite and a connection string for mongodb.
	URI      string        `yaml:"uri" env:"DOCSEED_STORE_URI"`
	Database string        `yaml:"database" env:"DOCSEED_STORE_DATABASE"`
	Timeout  time.Duration `yaml:"timeout" env:"DOCSEED_STORE_TIMEOUT"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"DOCSEED_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Type:     repository.StoreSQLite,
			URI:      "docseed.db",
			Database: "mend",
			Timeout:  10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from defaults, an optional YAML file and environment
// variables, in that order. An empty path falls back to DOCSEED_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("DOCSEED_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the CLI cannot act on.
func (c Config) Validate() error {
	switch c.Store.Type {
	case repository.StoreSQLite, repository.StoreMongoDB:
	default:
		return fmt.Errorf("%w: %q", repository.ErrUnknownStore, c.Store.Type)
	}
	if c.Store.URI == "" {
		return fmt.Errorf("store uri is required")
	}
	if c.Store.Type == repository.StoreMongoDB && c.Store.Database == "" {
		return fmt.Errorf("store database is required for mongodb")
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("store timeout must be positive, got %s", c.Store.Timeout)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
