package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	DefaultBcryptCost = 10
	DefaultConfigName = "lexseed.config"
)

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
	Log      Log      `json:"log" mapstructure:"log"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Seed struct {
	DataFile   string `json:"data_file,omitempty" mapstructure:"data_file"` // empty = embedded demo dataset
	BcryptCost int    `json:"bcrypt_cost,omitempty" mapstructure:"bcrypt_cost"`
}

type Log struct {
	Level       string `json:"level,omitempty" mapstructure:"level"`
	Development bool   `json:"development,omitempty" mapstructure:"development"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Provider == "" {
		c.Database.Provider = "postgresql"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DATABASE_URL"
	}
	if c.Seed.BcryptCost == 0 {
		c.Seed.BcryptCost = DefaultBcryptCost
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	// bcrypt accepts 4..31
	if c.Seed.BcryptCost < 4 || c.Seed.BcryptCost > 31 {
		return fmt.Errorf("seed.bcrypt_cost must be between 4 and 31, got %d", c.Seed.BcryptCost)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", c.Log.Level)
	}

	return nil
}
