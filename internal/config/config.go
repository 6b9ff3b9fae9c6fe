// Package config loads the host runner settings from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
)

// Rate is a frequency written as "100Hz" or "4.5kHz".
type Rate struct {
	physic.Frequency
}

// UnmarshalYAML parses a frequency string; an empty string means the default.
func (r *Rate) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		r.Frequency = 0
		return nil
	}
	if err := r.Frequency.Set(s); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	return nil
}

// MarshalYAML writes the frequency in the form UnmarshalYAML reads.
func (r Rate) MarshalYAML() (any, error) {
	if r.Frequency == 0 {
		return "", nil
	}
	return r.Frequency.String(), nil
}

// Window configures the desktop preview window.
type Window struct {
	Scale int    `yaml:"scale"`
	Title string `yaml:"title,omitempty"`
}

// Preview configures the websocket frame feed.
type Preview struct {
	Addr string `yaml:"addr"` // e.g. 127.0.0.1:8080, empty disables the feed
	FPS  int    `yaml:"fps"`
}

// Config is the host runner configuration file.
type Config struct {
	Headless    bool   `yaml:"headless"`
	TickRate    Rate   `yaml:"tick_rate"`
	RefreshRate Rate   `yaml:"refresh_rate"`
	Ticks       uint64 `yaml:"ticks"` // 0 runs until interrupted
	Seed        uint64 `yaml:"seed"`  // 0 picks a random seed
	LogLevel    string `yaml:"log_level"`

	Window  Window  `yaml:"window"`
	Preview Preview `yaml:"preview"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Window:   Window{Scale: 8},
		Preview:  Preview{FPS: 30},
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path as YAML.
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate rejects settings the runners cannot honour.
func (c *Config) Validate() error {
	if c.TickRate.Frequency < 0 {
		return fmt.Errorf("tick_rate %s is negative", c.TickRate.Frequency)
	}
	if c.RefreshRate.Frequency < 0 {
		return fmt.Errorf("refresh_rate %s is negative", c.RefreshRate.Frequency)
	}
	if c.Window.Scale < 0 {
		return fmt.Errorf("window.scale %d is negative", c.Window.Scale)
	}
	if c.Preview.FPS < 0 {
		return fmt.Errorf("preview.fps %d is negative", c.Preview.FPS)
	}
	return nil
}
