package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/orbit-defense/engine"
)

// ErrConfigPath is returned when no config file path is given
var ErrConfigPath = errors.New("config path is empty")

// Config is the simulation tuning set
type Config = engine.Config

// DefaultConfig returns tuning seeded from parameter
func DefaultConfig() Config {
	return engine.DefaultConfig()
}

// LoadConfig overlays a YAML file on the defaults
// Keys absent from the file keep their default value; call Validate before use
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, ErrConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
