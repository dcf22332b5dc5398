// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		OutputDir        string `yaml:"output_dir"`
		Workers          int    `yaml:"workers"`
		Checks           string `yaml:"checks"`
		CompressedSuffix string `yaml:"compressed_suffix"`
		NoColor          bool   `yaml:"no_color"`
		Debug            bool   `yaml:"debug"`
	} `yaml:"defaults"`

	// Logging settings
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.OutputDir = "path_processed"
	config.Defaults.Workers = 10
	config.Defaults.Checks = "all"
	config.Defaults.CompressedSuffix = ".gz"
	config.Defaults.NoColor = false
	config.Defaults.Debug = false
	config.Logging.Level = "info"
	config.Logging.Format = "console"

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Defaults.Workers < 1 {
		return nil, fmt.Errorf("invalid worker count %d: must be at least 1", config.Defaults.Workers)
	}
	if config.Defaults.CompressedSuffix == "" {
		return nil, fmt.Errorf("compressed_suffix must not be empty")
	}

	return config, nil
}

// LoadConfigOrDefault loads the configuration file, falling back to the
// built-in defaults when the file is missing or malformed.
func LoadConfigOrDefault(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// FindConfigFile looks for a config file in standard locations
func FindConfigFile() string {
	// Check current directory first
	candidates := []string{
		"logsift.yaml",
		"logsift.yml",
		".logsift.yaml",
		".logsift.yml",
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}

	// Check the user's home directory
	if home, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(home, ".logsift", "config.yaml")
		if fileExists(homeConfig) {
			return homeConfig
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
