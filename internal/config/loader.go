package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Every file is decoded on top of the built-in defaults, so a file only needs
// the keys it changes. The result is validated before it is returned.
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("shooter.yaml"),
		filepath.Join("configs", "shooter.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	cfg = DefaultShooterConfig()
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, malformed, or invalid files are skipped.
func tryLoad(path string) (ShooterConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShooterConfig{}, false
	}
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the config describes a playable arena.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("arena: width and height must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("player: width and height must be positive")
	case c.Player.Width > c.Arena.Width:
		return fmt.Errorf("player: width %v does not fit arena width %v", c.Player.Width, c.Arena.Width)
	case c.Bullet.Width <= 0 || c.Bullet.Height <= 0:
		return fmt.Errorf("bullet: width and height must be positive")
	case c.Enemy.Width <= 0 || c.Enemy.Height <= 0:
		return fmt.Errorf("enemy: width and height must be positive")
	case c.Player.Lives == 0:
		return fmt.Errorf("player: lives must be at least 1")
	case c.Player.Speed < 0:
		return fmt.Errorf("player: speed must not be negative")
	case c.Player.Invincibility < 0:
		return fmt.Errorf("player: invincibility must not be negative")
	case c.Bullet.Speed < 0:
		return fmt.Errorf("bullet: speed must not be negative")
	case c.Enemy.Speed < 0:
		return fmt.Errorf("enemy: speed must not be negative")
	case c.Enemy.SpawnInterval <= 0:
		return fmt.Errorf("enemy: spawn_interval must be positive")
	case c.Enemy.SpawnMargin < 0 || 2*c.Enemy.SpawnMargin > c.Arena.Width:
		return fmt.Errorf("enemy: spawn_margin %v does not fit arena width %v", c.Enemy.SpawnMargin, c.Arena.Width)
	case c.Powerup.Enabled && (c.Powerup.Width <= 0 || c.Powerup.Height <= 0):
		return fmt.Errorf("powerup: width and height must be positive")
	case c.Powerup.Enabled && c.Powerup.Speed < 0:
		return fmt.Errorf("powerup: speed must not be negative")
	case c.Powerup.Enabled && c.Powerup.SpawnInterval <= 0:
		return fmt.Errorf("powerup: spawn_interval must be positive")
	}
	return nil
}
