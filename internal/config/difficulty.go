package config

// presetScaling holds the static adjustments a preset applies to a loaded config.
// Values are multipliers relative to the loaded config, except Lives which replaces it.
type presetScaling struct {
	Lives         uint32
	EnemySpeed    float64
	SpawnInterval float64
}

var presetTable = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {Lives: 5, EnemySpeed: 0.75, SpawnInterval: 1.5},
	DifficultyNormal: {Lives: 0, EnemySpeed: 1.0, SpawnInterval: 1.0},
	DifficultyHard:   {Lives: 2, EnemySpeed: 1.5, SpawnInterval: 0.6},
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
// Presets only set starting parameters; nothing changes during a run.
// DifficultyFixed resets the whole config to the built-in defaults so runs
// are comparable regardless of local config files. An empty preset is a no-op.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		*cfg = DefaultShooterConfig()
		cfg.Difficulty.Preset = DifficultyFixed
		return
	}

	scale, ok := presetTable[preset]
	if !ok {
		return
	}
	if scale.Lives > 0 {
		cfg.Player.Lives = scale.Lives
	}
	cfg.Enemy.Speed *= scale.EnemySpeed
	cfg.Enemy.SpawnInterval *= scale.SpawnInterval
	cfg.Difficulty.Preset = preset
}
