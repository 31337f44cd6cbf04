// Package config loads the YAML configuration shared by the demo and the
// simulator.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"interaction3d/internal/input"
	"interaction3d/internal/interaction"
	"interaction3d/internal/logging"
)

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Detector DetectorConfig `yaml:"detector"`
	Input    InputConfig    `yaml:"input"`
	// Items is the item catalog path, relative to the config file.
	Items string `yaml:"items"`
	// Scene is the scene file path, relative to the config file.
	Scene string `yaml:"scene"`

	dir string
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type DetectorConfig struct {
	Mode          string  `yaml:"mode"`
	Range         float32 `yaml:"range"`
	Radius        float32 `yaml:"radius"`
	Action        string  `yaml:"action"`
	HoldCancel    string  `yaml:"hold_cancel"`
	RefreshPrompt bool    `yaml:"refresh_prompt"`
}

type InputConfig struct {
	Bindings map[string][]string `yaml:"bindings"`
}

// Default returns the configuration used for keys a file leaves out.
func Default() Config {
	d := interaction.DefaultConfig()
	return Config{
		Logging: LoggingConfig{Level: "info", Encoding: "console"},
		Detector: DetectorConfig{
			Mode:          d.Mode.String(),
			Range:         d.Range,
			Radius:        d.Radius,
			Action:        d.Action,
			HoldCancel:    d.HoldCancel.String(),
			RefreshPrompt: d.RefreshPrompt,
		},
		Input: InputConfig{
			Bindings: map[string][]string{d.Action: {"E"}},
		},
	}
}

// Load reads and validates a config file. Keys missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes and validates a config document.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := c.Interaction(); err != nil {
		return err
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// Interaction converts the detector section into a tracker config.
func (c *Config) Interaction() (interaction.Config, error) {
	mode, err := interaction.ParseMode(c.Detector.Mode)
	if err != nil {
		return interaction.Config{}, err
	}
	policy, err := interaction.ParseHoldCancelPolicy(c.Detector.HoldCancel)
	if err != nil {
		return interaction.Config{}, err
	}
	ic := interaction.Config{
		Mode:          mode,
		Range:         c.Detector.Range,
		Radius:        c.Detector.Radius,
		Action:        c.Detector.Action,
		HoldCancel:    policy,
		RefreshPrompt: c.Detector.RefreshPrompt,
	}
	if err := ic.Validate(); err != nil {
		return interaction.Config{}, err
	}
	return ic, nil
}

// Bindings resolves the input section's key names.
func (c *Config) Bindings() (input.Bindings, error) {
	if len(c.Input.Bindings) == 0 {
		return input.DefaultBindings(), nil
	}
	return input.ParseBindings(c.Input.Bindings)
}

// LoggerOptions returns the logger options.
func (c *Config) LoggerOptions() logging.Options {
	return logging.Options{Level: c.Logging.Level, Encoding: c.Logging.Encoding}
}

// ItemsPath resolves Items against the config file's directory.
func (c *Config) ItemsPath() string {
	return c.resolve(c.Items)
}

// ScenePath resolves Scene against the config file's directory.
func (c *Config) ScenePath() string {
	return c.resolve(c.Scene)
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}
