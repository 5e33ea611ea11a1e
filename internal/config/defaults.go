package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena: ShooterArena{
			Width:  800,
			Height: 600,
		},
		Player: ShooterPlayer{
			Speed:         300,
			Width:         30,
			Height:        30,
			BottomOffset:  50,
			Lives:         3,
			Invincibility: 2.0,
		},
		Bullet: ShooterBullet{
			Speed:        400,
			Width:        5,
			Height:       10,
			MuzzleOffset: 20,
			DespawnY:     -10,
		},
		Enemy: ShooterEnemy{
			Speed:         100,
			Width:         30,
			Height:        30,
			SpawnY:        -20,
			SpawnMargin:   20,
			SpawnInterval: 1.0,
			ExitMargin:    15,
			Reward:        10,
		},
		Powerup: ShooterPowerup{
			Enabled:       false,
			Speed:         80,
			Width:         20,
			Height:        20,
			SpawnInterval: 10.0,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}
