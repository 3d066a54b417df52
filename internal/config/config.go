package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"bigtwo-server/internal/util"
)

// Config provides configuration for the bigtwo tools
type Config struct {
	loaded bool
	Log    LogConfig   `yaml:"log"`
	Table  TableConfig `yaml:"table"`
}

// LogConfig configures logrus
type LogConfig struct {
	// Level is any level logrus.ParseLevel accepts. Empty keeps the logrus default
	Level string `yaml:"level" envconfig:"level"`
	// Format is "text" or "json"
	Format string `yaml:"format" envconfig:"format"`
}

// TableConfig provides the defaults for new tables
type TableConfig struct {
	HistoryLimit int `yaml:"historyLimit" envconfig:"history_limit"`
}

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Table: TableConfig{
			HistoryLimit: 0,
		},
	}
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

// Load will load the configuration
// The YAML file is optional. Environment variables prefixed with BIGTWO_ take precedence
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BIGTWO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bigtwo", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
