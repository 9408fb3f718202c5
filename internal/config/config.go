package config

import (
	"os"

	"liarspoker-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Liar's Poker server
type Config struct {
	loaded bool

	// PGDSN enables the PostgreSQL session store; empty means in-memory
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`

	// DebugSolo lets a single ready player start and advance a game.
	// Development affordance only; keep off in production.
	DebugSolo bool `yaml:"debugSolo" envconfig:"debug_solo"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	c := Config{
		MigrationsPath: "./sql",
	}
	c.Log.Level = "info"

	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration from the yaml file, if present, with
// environment overrides on top
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("LP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("lp", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
