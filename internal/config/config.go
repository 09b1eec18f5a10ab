package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigT holds the workspace-wide settings. Values come from an optional
// saasbench.conf TOML file; everything has a working default.
type ConfigT struct {
	DefaultOwner            string `toml:"default_owner"`
	MaxClustersPerWorkspace int    `toml:"max_clusters_per_workspace"`
	WorkflowDir             string `toml:"workflow_dir"`
	LogLevel                string `toml:"log_level"`
}

var cfg = defaultConfig()

func defaultConfig() *ConfigT {
	return &ConfigT{
		DefaultOwner:            "admin",
		MaxClustersPerWorkspace: 100,
		WorkflowDir:             "workflows/databricks",
		LogLevel:                "info",
	}
}

// Config returns the active configuration.
func Config() *ConfigT {
	return cfg
}

// Load reads a TOML config file and replaces the active configuration.
// Missing keys keep their defaults.
func Load(path string) error {
	c := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return err
	}
	cfg = c
	return nil
}

// Reset restores the default configuration. Used by tests.
func Reset() {
	cfg = defaultConfig()
}
