package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version string    `yaml:"version" json:"version"`
	Layout  string    `yaml:"layout" json:"layout"`
	Deck    DeckShape `yaml:"deck" json:"deck"`
	Rules   Rules     `yaml:"rules" json:"rules"`
	Seed    int64     `yaml:"seed" json:"seed"`
	Log     LogConfig `yaml:"log" json:"log"`
}

type DeckShape struct {
	MaxRank int    `yaml:"max_rank" json:"max_rank"`
	Suits   string `yaml:"suits" json:"suits"`
}

type Rules struct {
	// RequireFaceUp makes clicks on face-down tableau cards no-ops.
	RequireFaceUp bool `yaml:"require_face_up" json:"require_face_up"`
}

type LogConfig struct {
	Level       string `yaml:"level" json:"level"`
	Development bool   `yaml:"development" json:"development"`
}

func (d *DeckShape) ApplyDefaults() {
	if d.MaxRank == 0 {
		d.MaxRank = 13
	}
	if d.Suits == "" {
		d.Suits = "SHDC"
	}
}

func (l *LogConfig) ApplyDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
}

func (c *Config) ApplyDefaults() {
	if c.Layout == "" {
		c.Layout = "pyramid"
	}
	c.Deck.ApplyDefaults()
	c.Log.ApplyDefaults()
}

// Validate reports settings no game can be started with.
func (c *Config) Validate() error {
	if c.Deck.MaxRank < 2 {
		return fmt.Errorf("deck.max_rank must be at least 2, got %d", c.Deck.MaxRank)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{Version: "1"}
	c.ApplyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &r, nil
}
