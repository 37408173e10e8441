package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"ohrid/internal/planner"
)

const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	CatalogFile     = "file"
	CatalogPostgres = "postgres"
)

// Config is the top-level application configuration.
type Config struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`
	// Timezone is the IANA zone used for rotation and "today".
	Timezone string `yaml:"timezone"`

	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`

	// ShareBaseURL prefixes share links; empty means only the token is returned.
	ShareBaseURL string `yaml:"share_base_url"`
	// RotationCron refreshes the cached venue listing.
	RotationCron string `yaml:"rotation_cron"`
}

type StorageConfig struct {
	// Driver is one of sqlite, postgres, memory.
	Driver      string `yaml:"driver"`
	SQLitePath  string `yaml:"sqlite_path"`
	PostgresURL string `yaml:"postgres_url"`
	Key         string `yaml:"key"`
}

type CatalogConfig struct {
	// Source is file or postgres.
	Source     string `yaml:"source"`
	VenuesPath string `yaml:"venues_path"`
	EventsPath string `yaml:"events_path"`
}

func DefaultConfig() *Config {
	return &Config{
		Port:     "8080",
		LogLevel: "info",
		Timezone: "Europe/Skopje",
		Storage: StorageConfig{
			Driver:     StorageSQLite,
			SQLitePath: "data/planner.db",
			Key:        planner.DefaultStorageKey,
		},
		Catalog: CatalogConfig{
			Source:     CatalogFile,
			VenuesPath: "data/venues.json",
			EventsPath: "data/events.json",
		},
		RotationCron: "*/15 * * * *",
	}
}

// Normalize fills zero values from the defaults and folds unknown drivers back to them.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Port == "" {
		c.Port = d.Port
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageSQLite, StoragePostgres, StorageMemory:
	default:
		c.Storage.Driver = d.Storage.Driver
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = d.Storage.SQLitePath
	}
	if c.Storage.Key == "" {
		c.Storage.Key = d.Storage.Key
	}

	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	switch c.Catalog.Source {
	case CatalogFile, CatalogPostgres:
	default:
		c.Catalog.Source = d.Catalog.Source
	}
	if c.Catalog.VenuesPath == "" {
		c.Catalog.VenuesPath = d.Catalog.VenuesPath
	}
	if c.Catalog.EventsPath == "" {
		c.Catalog.EventsPath = d.Catalog.EventsPath
	}
	if c.RotationCron == "" {
		c.RotationCron = d.RotationCron
	}
}

// Load reads the YAML file at path (a missing file means defaults), then .env, then
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	// .env is optional
	_ = godotenv.Load()

	cfg.applyEnv(os.LookupEnv)
	cfg.Normalize()
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set("PORT", &c.Port)
	set("LOG_LEVEL", &c.LogLevel)
	set("TIMEZONE", &c.Timezone)
	set("STORAGE_DRIVER", &c.Storage.Driver)
	set("SQLITE_PATH", &c.Storage.SQLitePath)
	set("POSTGRES_URL", &c.Storage.PostgresURL)
	set("CATALOG_SOURCE", &c.Catalog.Source)
	set("VENUES_PATH", &c.Catalog.VenuesPath)
	set("EVENTS_PATH", &c.Catalog.EventsPath)
	set("SHARE_BASE_URL", &c.ShareBaseURL)
	set("ROTATION_CRON", &c.RotationCron)
}

// PathFromEnv returns CONFIG_PATH or config.yaml.
func PathFromEnv() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}
