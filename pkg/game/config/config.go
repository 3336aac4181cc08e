// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"mazeparts/pkg/game/state"
)

// Config holds every MAZE_* setting.
type Config struct {
	Level      string `env:"MAZE_LEVEL" envDefault:"levels/1.yaml"`
	Renderer   string `env:"MAZE_RENDERER" envDefault:"ebiten"`
	Locale     string `env:"MAZE_LOCALE" envDefault:"en_GB"`
	LocalesDir string `env:"MAZE_LOCALES_DIR" envDefault:"locales"`

	MoveSpeed        float32 `env:"MAZE_MOVE_SPEED" envDefault:"1.0"`
	TurnSpeed        float32 `env:"MAZE_TURN_SPEED" envDefault:"2.0"`
	MouseSensitivity float32 `env:"MAZE_MOUSE_SENSITIVITY" envDefault:"0.003"`

	// Debug turns possession invariant violations into panics.
	Debug bool `env:"MAZE_DEBUG" envDefault:"false"`
	// Watch reloads the level when its files change.
	Watch bool `env:"MAZE_WATCH" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MoveSpeed <= 0 {
		return Config{}, fmt.Errorf("MAZE_MOVE_SPEED must be positive, got %v", cfg.MoveSpeed)
	}
	return cfg, nil
}

// Settings converts the configuration into game settings
func (c Config) Settings() state.Settings {
	return state.Settings{
		MoveSpeed:        c.MoveSpeed,
		TurnSpeed:        c.TurnSpeed,
		MouseSensitivity: c.MouseSensitivity,
		Debug:            c.Debug,
	}
}
