// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles generator configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the betterproto.yaml generator configuration file.
type Config struct {
	Version  int    `yaml:"version"`
	Runtime  string `yaml:"runtime,omitempty"`  // Python module the generated code imports
	Renderer string `yaml:"renderer,omitempty"` // output renderer name
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		Runtime:  "betterproto",
		Renderer: "python",
	}
}

// Load reads a Config from a file path. Fields left empty in the file keep
// their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Renderer == "" {
		return errors.New("renderer must not be empty")
	}
	return nil
}
