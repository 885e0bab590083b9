// Package config reads the office host's YAML configuration.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	EnvPath = "OFFICE_CONFIG"

	DefaultTickRate    = 60
	DefaultSpeed       = 200.0
	DefaultSprite      = 80.0
	DefaultDoorRadius  = 120.0
	DefaultChairRadius = 60.0
)

type Config struct {
	SpawnTarget string            `yaml:"spawn_target"`
	TickRate    int               `yaml:"tick_rate"`
	Player      PlayerConfig      `yaml:"player"`
	Interaction InteractionConfig `yaml:"interaction"`
	Bindings    map[string]string `yaml:"bindings"`
	Logging     LoggingConfig     `yaml:"logging"`
	Script      string            `yaml:"script"`
	MetricsAddr string            `yaml:"metrics_addr"`
}

type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`
	SpriteWidth  float64 `yaml:"sprite_width"`
	SpriteHeight float64 `yaml:"sprite_height"`
}

type InteractionConfig struct {
	DoorRadius  float64 `yaml:"door_radius"`
	ChairRadius float64 `yaml:"chair_radius"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

func Default() *Config {
	return &Config{
		TickRate: DefaultTickRate,
		Player: PlayerConfig{
			Speed:        DefaultSpeed,
			SpriteWidth:  DefaultSprite,
			SpriteHeight: DefaultSprite,
		},
		Interaction: InteractionConfig{
			DoorRadius:  DefaultDoorRadius,
			ChairRadius: DefaultChairRadius,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path falls
// back to $OFFICE_CONFIG, and to the defaults alone when that is unset too.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.sanitize()
	return cfg, nil
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// sanitize replaces values the simulation cannot run with by their defaults.
func (c *Config) sanitize() {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if !usable(c.Player.Speed) {
		c.Player.Speed = DefaultSpeed
	}
	if !usable(c.Player.SpriteWidth) || !usable(c.Player.SpriteHeight) {
		c.Player.SpriteWidth, c.Player.SpriteHeight = DefaultSprite, DefaultSprite
	}
	if !usable(c.Interaction.DoorRadius) {
		c.Interaction.DoorRadius = DefaultDoorRadius
	}
	if !usable(c.Interaction.ChairRadius) {
		c.Interaction.ChairRadius = DefaultChairRadius
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format != "json" {
		c.Logging.Format = "console"
	}
}

// FrameSeconds is the dt of one host frame.
func (c *Config) FrameSeconds() float64 {
	return 1 / float64(c.TickRate)
}
