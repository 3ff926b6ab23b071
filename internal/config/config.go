// Package config loads game settings from TOML files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of a game session and its front ends.
type Config struct {
	Arena   ArenaConfig   `toml:"arena"`
	Session SessionConfig `toml:"session"`
	Ship    ShipConfig    `toml:"ship"`
	Frame   FrameConfig   `toml:"frame"`
	Logging LoggingConfig `toml:"logging"`
	SSH     SSHConfig     `toml:"ssh"`
}

// ArenaConfig is the wrap-around play area in world units.
type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type SessionConfig struct {
	Lives     int `toml:"lives"`
	Asteroids int `toml:"asteroids"` // Spawned by every new game
}

type ShipConfig struct {
	Acceleration float64 `toml:"acceleration"` // Velocity gained per tick of thrust
	FireRate     int     `toml:"fire_rate"`    // Ticks that must pass between shots
}

type FrameConfig struct {
	TargetFPS int `toml:"target_fps"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text", "json" or "logfmt"
}

type SSHConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	HostKeyPath string `toml:"host_key_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Session: SessionConfig{
			Lives:     3,
			Asteroids: 20,
		},
		Ship: ShipConfig{
			Acceleration: 0.1,
			FireRate:     10,
		},
		Frame: FrameConfig{
			TargetFPS: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		SSH: SSHConfig{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: ".ssh/asteroids_ed25519",
		},
	}
}

// Load reads a TOML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv loads the file named by ASTEROIDS_CONFIG (defaults when unset) and
// applies the individual environment overrides.
func FromEnv() (*Config, error) {
	cfg := Default()
	if path := GetEnv("ASTEROIDS_CONFIG", ""); path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}

	cfg.Logging.Level = GetEnv("ASTEROIDS_LOG_LEVEL", cfg.Logging.Level)
	cfg.SSH.Host = GetEnv("SSH_HOST", cfg.SSH.Host)
	cfg.SSH.Port = GetEnv("SSH_PORT", cfg.SSH.Port)
	cfg.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", cfg.SSH.HostKeyPath)
	return cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %vx%v", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Session.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrInvalid, c.Session.Lives)
	case c.Session.Asteroids < 0:
		return fmt.Errorf("%w: asteroids must not be negative, got %d", ErrInvalid, c.Session.Asteroids)
	case c.Ship.FireRate < 0:
		return fmt.Errorf("%w: fire rate must not be negative, got %d", ErrInvalid, c.Ship.FireRate)
	case c.Frame.TargetFPS <= 0:
		return fmt.Errorf("%w: target fps must be positive, got %d", ErrInvalid, c.Frame.TargetFPS)
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// FrameTime is the wall time budget of one frame.
func (f FrameConfig) FrameTime() time.Duration {
	return time.Second / time.Duration(f.TargetFPS)
}
