package game

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a TOML config file on top of DefaultConfig. Keys absent from
// the file keep their default; an [[assets]] list replaces the default
// assets entirely. Unknown keys are an error.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML from r on top of DefaultConfig.
func Decode(r io.Reader) (Config, error) {
	// Lists are replaced rather than merged with the defaults.
	defaults := DefaultConfig()
	cfg := defaults
	cfg.Assets = nil
	cfg.Simulation.Strategies = nil

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Assets == nil {
		cfg.Assets = defaults.Assets
	}
	if cfg.Simulation.Strategies == nil {
		cfg.Simulation.Strategies = defaults.Simulation.Strategies
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
