package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the working directory.
const FileName = "dashseed.config.json"

// DefaultSQLitePath is used when no URL is configured for SQLite.
const DefaultSQLitePath = "dashboard2.db"

var SupportedProviders = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URL      string `json:"url,omitempty" mapstructure:"url"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Seed struct {
	RandomSeed int64  `json:"random_seed" mapstructure:"random_seed"` // 0 = time based
	Profile    string `json:"profile,omitempty" mapstructure:"profile"`
	BatchSize  int    `json:"batch_size" mapstructure:"batch_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Database: Database{
			Provider: "sqlite",
			URL:      DefaultSQLitePath,
			URLEnv:   "DATABASE_URL",
		},
		Seed: Seed{
			BatchSize: 100,
		},
	}
}

// Load reads the config from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "sqlite"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Database.URL == "" && cfg.IsSQLite() {
		cfg.Database.URL = DefaultSQLitePath
	}
	if cfg.Seed.BatchSize <= 0 {
		cfg.Seed.BatchSize = 100
	}

	return &cfg, nil
}

// GetDatabaseURL prefers the environment variable named by url_env over the
// configured url.
func (c *Config) GetDatabaseURL() (string, error) {
	if dbURL := os.Getenv(c.Database.URLEnv); dbURL != "" {
		return dbURL, nil
	}
	if c.Database.URL != "" {
		return c.Database.URL, nil
	}
	return "", fmt.Errorf("database URL not found: set database.url or the %s environment variable", c.Database.URLEnv)
}

func (c *Config) IsSQLite() bool {
	return c.Database.Provider == "sqlite" || c.Database.Provider == "sqlite3"
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range SupportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, SupportedProviders)
	}

	if c.Seed.BatchSize <= 0 {
		return fmt.Errorf("seed.batch_size must be positive, got %d", c.Seed.BatchSize)
	}

	if c.Seed.Profile != "" {
		if _, err := os.Stat(c.Seed.Profile); err != nil {
			return fmt.Errorf("seed.profile %s: %w", c.Seed.Profile, err)
		}
	}

	return nil
}

// WriteFile writes cfg as indented JSON. An existing file is left alone.
func (c *Config) WriteFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
