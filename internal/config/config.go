// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Upload  UploadConfig  `yaml:"upload"`
	Extract ExtractConfig `yaml:"extract"`
	Chart   ChartConfig   `yaml:"chart"`
}

// ServerConfig for the HTTP server
type ServerConfig struct {
	Bind string `yaml:"bind"`
}

// UploadConfig bounds incoming logs
type UploadConfig struct {
	MaxSizeMB int64 `yaml:"max_size_mb"`
}

// ExtractConfig for the log extractor. An explicitly empty unit_suffixes
// list disables suffix stripping; leaving it out selects the defaults.
type ExtractConfig struct {
	BytePolicy   string   `yaml:"byte_policy"`
	UnitSuffixes []string `yaml:"unit_suffixes"`
	Allow        []string `yaml:"allow"`
	Block        []string `yaml:"block"`
}

// ChartConfig for rendered images
type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Bind: ":8080"},
		Upload:  UploadConfig{MaxSizeMB: 64},
		Extract: ExtractConfig{BytePolicy: "lenient"},
		Chart:   ChartConfig{Width: 1000, Height: 420},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// fill empty values
	if cfg.Server.Bind == "" {
		cfg.Server.Bind = ":8080"
	}
	if cfg.Upload.MaxSizeMB <= 0 {
		cfg.Upload.MaxSizeMB = 64
	}
	if cfg.Extract.BytePolicy == "" {
		cfg.Extract.BytePolicy = "lenient"
	}
	if cfg.Chart.Width <= 0 {
		cfg.Chart.Width = 1000
	}
	if cfg.Chart.Height <= 0 {
		cfg.Chart.Height = 420
	}

	return cfg, nil
}
