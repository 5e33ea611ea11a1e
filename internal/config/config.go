// Package config provides YAML-based game configuration loading and
// difficulty presets for the shooter.
package config

// ShooterConfig contains all tunable parameters of the shooter simulation.
// Distances are in arena units, speeds in units per second, times in seconds.
type ShooterConfig struct {
	Arena      ShooterArena     `yaml:"arena"`
	Player     ShooterPlayer    `yaml:"player"`
	Bullet     ShooterBullet    `yaml:"bullet"`
	Enemy      ShooterEnemy     `yaml:"enemy"`
	Powerup    ShooterPowerup   `yaml:"powerup"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterArena defines the logical playfield.
type ShooterArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShooterPlayer defines the player's ship.
type ShooterPlayer struct {
	Speed         float64 `yaml:"speed"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BottomOffset  float64 `yaml:"bottom_offset"` // Distance from arena bottom to ship center
	Lives         uint32  `yaml:"lives"`
	Invincibility float64 `yaml:"invincibility"` // Immunity window after a hit
}

// ShooterBullet defines player projectiles.
type ShooterBullet struct {
	Speed        float64 `yaml:"speed"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MuzzleOffset float64 `yaml:"muzzle_offset"` // Spawn distance above ship center
	DespawnY     float64 `yaml:"despawn_y"`     // Bullets above this y are removed
}

// ShooterEnemy defines descending enemies and their spawn cadence.
type ShooterEnemy struct {
	Speed         float64 `yaml:"speed"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnY        float64 `yaml:"spawn_y"`
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Keep-out distance from the side walls
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	ExitMargin    float64 `yaml:"exit_margin"`    // Distance below the arena that counts as escaped
	Reward        uint32  `yaml:"reward"`         // Score per kill
}

// ShooterPowerup defines the optional powerup drops.
// Powerups fall and despawn but have no pickup effect.
type ShooterPowerup struct {
	Enabled       bool    `yaml:"enabled"`
	Speed         float64 `yaml:"speed"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnInterval float64 `yaml:"spawn_interval"`
}

// DifficultyConfig records which preset produced the config.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty strings yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
