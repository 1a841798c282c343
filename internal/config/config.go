// Package config loads an optional YAML file with default run settings.
// Command-line flags always take precedence over file values.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds run defaults that would otherwise be given as flags.
type Config struct {
	Intervals []string `mapstructure:"intervals"` // e.g. ["100m", "1mi"]
	Use2D     bool     `mapstructure:"use_2d"`
	GeoJSON   string   `mapstructure:"geojson"` // output path, empty = no export
}

// Load reads and decodes the file at path. A missing or malformed file is
// an error: the path was given explicitly, so silence would hide a typo.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}
