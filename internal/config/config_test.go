package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", cfg.Database.Provider)
	}

	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", cfg.Database.URLEnv)
	}

	if cfg.Seed.BcryptCost != DefaultBcryptCost {
		t.Errorf("Expected bcrypt cost %d, got %d", DefaultBcryptCost, cfg.Seed.BcryptCost)
	}

	if cfg.Seed.DataFile != "" {
		t.Errorf("Expected empty data file, got '%s'", cfg.Seed.DataFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, DefaultConfigName+".json")
	content := `{
		"database": {"provider": "sqlite", "url_env": "LEXSEED_DB"},
		"seed": {"bcrypt_cost": 6, "data_file": "fixtures/demo.yaml"},
		"log": {"level": "debug", "development": true}
	}`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Provider != "sqlite" {
		t.Errorf("Expected sqlite provider, got '%s'", cfg.Database.Provider)
	}
	if cfg.Seed.BcryptCost != 6 {
		t.Errorf("Expected bcrypt cost 6, got %d", cfg.Seed.BcryptCost)
	}
	if cfg.Seed.DataFile != "fixtures/demo.yaml" {
		t.Errorf("Expected data file 'fixtures/demo.yaml', got '%s'", cfg.Seed.DataFile)
	}
	if !cfg.Log.Development || cfg.Log.Level != "debug" {
		t.Errorf("Expected development debug logging, got %+v", cfg.Log)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"sqlite3 provider", func(c *Config) { c.Database.Provider = "sqlite3" }, false},
		{"mysql provider", func(c *Config) { c.Database.Provider = "mysql" }, false},
		{"mongodb provider", func(c *Config) { c.Database.Provider = "mongodb" }, true},
		{"cost too low", func(c *Config) { c.Seed.BcryptCost = 3 }, true},
		{"cost too high", func(c *Config) { c.Seed.BcryptCost = 32 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := &Config{Database: Database{URLEnv: "LEXSEED_TEST_DATABASE_URL"}}

	t.Setenv("LEXSEED_TEST_DATABASE_URL", "")
	if _, err := cfg.GetDatabaseURL(); err == nil {
		t.Error("Expected error for missing database URL")
	}

	t.Setenv("LEXSEED_TEST_DATABASE_URL", "postgres://localhost/lexseed")
	url, err := cfg.GetDatabaseURL()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if url != "postgres://localhost/lexseed" {
		t.Errorf("Expected URL to round-trip, got '%s'", url)
	}
}
