// Package config handles configuration loading and shared data structures.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default locations of the Natural Earth countries dataset and the
// front-end asset produced from it.
const (
	DefaultInput     = "data/ne_110m_admin_0_countries/ne_110m_admin_0_countries.shp"
	DefaultOutput    = "../js/public/data/ne_110m_admin_0_countries.json"
	DefaultNameField = "NAME"
)

// Config represents the root configuration file structure.
type Config struct {
	Datasets []Dataset `yaml:"datasets"`
}

// Dataset describes a single shapefile to GeoJSON conversion.
type Dataset struct {
	Name      string `yaml:"name,omitempty"`
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	NameField string `yaml:"name_field,omitempty"` // DBF attribute copied to properties.name
}

// Default returns the built-in configuration: the countries dataset only.
func Default() *Config {
	return &Config{
		Datasets: []Dataset{{
			Name:      "countries",
			Input:     DefaultInput,
			Output:    DefaultOutput,
			NameField: DefaultNameField,
		}},
	}
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// normalize fills defaults and rejects datasets without paths.
func (c *Config) normalize() error {
	if len(c.Datasets) == 0 {
		return errors.New("no datasets configured")
	}

	for i := range c.Datasets {
		ds := &c.Datasets[i]
		if ds.Input == "" || ds.Output == "" {
			return fmt.Errorf("dataset %d: input and output are required", i)
		}
		if ds.NameField == "" {
			ds.NameField = DefaultNameField
		}
		if ds.Name == "" {
			ds.Name = ds.Input
		}
	}

	return nil
}
