package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Spawner creates enemies and powerups above the top edge at random
// horizontal positions. Cadence is fixed; only placement is random.
type Spawner struct {
	arena   config.ShooterArena
	enemy   config.ShooterEnemy
	powerup config.ShooterPowerup
	rng     *rand.Rand
}

// NewSpawner creates a spawner drawing positions from rng.
func NewSpawner(cfg config.ShooterConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		arena:   cfg.Arena,
		enemy:   cfg.Enemy,
		powerup: cfg.Powerup,
		rng:     rng,
	}
}

// randomX returns a uniform x in [margin, width-margin).
func (s *Spawner) randomX(margin float64) float64 {
	span := s.arena.Width - 2*margin
	return margin + s.rng.Float64()*span
}

// SpawnEnemy creates an enemy descending at the configured speed.
func (s *Spawner) SpawnEnemy() Entity {
	pos := core.V(s.randomX(s.enemy.SpawnMargin), s.enemy.SpawnY)
	return NewEntity(pos, core.V(0, s.enemy.Speed), s.enemy.Width, s.enemy.Height)
}

// SpawnPowerup creates a falling powerup. Powerups share the enemy spawn margin.
func (s *Spawner) SpawnPowerup() Entity {
	pos := core.V(s.randomX(s.enemy.SpawnMargin), s.enemy.SpawnY)
	return NewEntity(pos, core.V(0, s.powerup.Speed), s.powerup.Width, s.powerup.Height)
}

// Cadence is a fixed-rate timer: it fires once each time the accumulated
// time reaches the interval, then restarts from zero.
type Cadence struct {
	Interval float64
	Elapsed  float64
}

// Advance accumulates dt and reports whether the cadence fired.
func (c *Cadence) Advance(dt float64) bool {
	c.Elapsed += dt
	if c.Elapsed >= c.Interval {
		c.Elapsed = 0
		return true
	}
	return false
}
