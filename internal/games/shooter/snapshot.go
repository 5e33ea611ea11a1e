package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Snapshot is a read-only view of a session after a tick, for rendering.
// Entity lists keep the session's order.
type Snapshot struct {
	Arena      core.RectF
	Player     core.RectF
	Invincible bool
	Bullets    []core.RectF
	Enemies    []core.RectF
	Powerups   []core.RectF
	Score      uint32
	Lives      uint32
	Kills      uint32
	GameOver   bool
	Elapsed    float64
}

// Snapshot returns the current state of the run.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Arena:      core.RectF{W: s.cfg.Arena.Width, H: s.cfg.Arena.Height},
		Player:     s.player.Bounds(),
		Invincible: s.player.IsInvincible(),
		Bullets:    boundsOf(s.bullets),
		Enemies:    boundsOf(s.enemies),
		Powerups:   boundsOf(s.powerups),
		Score:      s.score,
		Lives:      s.player.Lives,
		Kills:      s.kills,
		GameOver:   s.gameOver,
		Elapsed:    s.elapsed,
	}
}

func boundsOf(list []Entity) []core.RectF {
	out := make([]core.RectF, len(list))
	for i, e := range list {
		out[i] = e.Bounds()
	}
	return out
}
