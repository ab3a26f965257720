// Package config loads scrollpanel settings from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"scrollpanel/internal/linebuf"

	"gopkg.in/yaml.v3"
)

// Defaults for the bordered demo.
const (
	DefaultText       = "Some text.\nNothing much.\n"
	DefaultTitle      = "This is a title"
	DefaultBackground = "#FFFACD" // lemonchiffon
)

// Config is the full set of settings. Zero fields take defaults.
type Config struct {
	Capacity int            `yaml:"capacity"`
	LogFile  string         `yaml:"log_file"`
	LogLevel string         `yaml:"log_level"`
	Panels   []PanelConfig  `yaml:"panels"`
	Bordered BorderedConfig `yaml:"bordered"`
}

// PanelConfig describes one scroll panel and what feeds it.
// An empty Command feeds the panel from the demo generator.
type PanelConfig struct {
	Name     string   `yaml:"name"`
	Command  []string `yaml:"command"`
	Dir      string   `yaml:"dir"`
	Interval Duration `yaml:"interval"`
}

// BorderedConfig describes the single static panel of the bordered app.
type BorderedConfig struct {
	Text       string `yaml:"text"`
	Title      string `yaml:"title"`
	TitleAlign string `yaml:"title_align"`
	Background string `yaml:"background"`
}

// Duration is a time.Duration written as "250ms" in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in settings. No panels are listed; callers
// fill in demo panels when Panels is empty.
func Default() Config {
	return Config{
		Capacity: linebuf.DefaultCapacity,
		LogFile:  "scrollpanel.log",
		LogLevel: "info",
		Bordered: BorderedConfig{
			Text:       DefaultText,
			Title:      DefaultTitle,
			TitleAlign: "left",
		},
	}
}

// Load reads path over Default. An empty path returns Default unchanged;
// a named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values a YAML file can get wrong.
func (c Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	seen := make(map[string]bool, len(c.Panels))
	for i, p := range c.Panels {
		if p.Interval < 0 {
			return fmt.Errorf("panels[%d]: negative interval", i)
		}
		if p.Name == "" {
			continue
		}
		if seen[p.Name] {
			return fmt.Errorf("panels[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
