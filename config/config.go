package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/motif/constants"
	"gopkg.in/yaml.v3"
)

// Config holds sequencer defaults and CLI settings
type Config struct {
	Tempo             int    `yaml:"tempo"`
	TicksPerWholeNote int    `yaml:"ticksPerWholeNote"`
	Instrument        int    `yaml:"instrument"`
	Port              string `yaml:"port,omitempty"`
	OutputDir         string `yaml:"outputDir,omitempty"`
	Addr              string `yaml:"addr,omitempty"`
}

// Default returns a config with the standard defaults
func Default() *Config {
	return &Config{
		Tempo:             constants.DefaultTempo,
		TicksPerWholeNote: constants.DefaultTicksPerWholeNote,
		Instrument:        0,
		OutputDir:         constants.GetOutputDir(),
		Addr:              constants.DefaultAddr,
	}
}

// Load reads the config at path, or returns defaults if the file does not exist.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values the sequencer treats as preconditions
func (c *Config) Validate() error {
	if c.Tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %d", c.Tempo)
	}
	if c.TicksPerWholeNote <= 0 || c.TicksPerWholeNote%4 != 0 {
		return fmt.Errorf("ticksPerWholeNote must be a positive multiple of 4, got %d", c.TicksPerWholeNote)
	}
	if c.Instrument < 0 || c.Instrument >= constants.MaxInstruments {
		return fmt.Errorf("instrument out of range: %d", c.Instrument)
	}
	return nil
}

// Save writes the config to path, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
