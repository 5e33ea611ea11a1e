package shooter

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Session holds one run of the shooter: the player, every live entity and
// the run counters. It is driven by Tick and the key handlers, and is not
// safe for concurrent use.
type Session struct {
	cfg     config.ShooterConfig
	rng     *rand.Rand
	spawner *Spawner

	player   Player
	bullets  []Entity
	enemies  []Entity
	powerups []Entity

	score    uint32
	kills    uint32
	gameOver bool
	elapsed  float64

	enemyTimer   Cadence
	powerupTimer Cadence

	events []core.Event
}

// NewSession validates cfg and starts a fresh run.
// Enemy placement draws from rng, which is kept across restarts.
func NewSession(cfg config.ShooterConfig, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("shooter: %w", err)
	}
	if rng == nil {
		return nil, errors.New("shooter: nil random source")
	}
	return newSession(cfg, rng), nil
}

func newSession(cfg config.ShooterConfig, rng *rand.Rand) *Session {
	ship := NewEntity(
		core.V(cfg.Arena.Width/2, cfg.Arena.Height-cfg.Player.BottomOffset),
		core.Vec2{},
		cfg.Player.Width, cfg.Player.Height,
	)
	return &Session{
		cfg:          cfg,
		rng:          rng,
		spawner:      NewSpawner(cfg, rng),
		player:       newPlayer(ship, cfg.Player.Lives, cfg.Player.Invincibility),
		bullets:      make([]Entity, 0, 32),
		enemies:      make([]Entity, 0, 16),
		enemyTimer:   Cadence{Interval: cfg.Enemy.SpawnInterval},
		powerupTimer: Cadence{Interval: cfg.Powerup.SpawnInterval},
	}
}

// Tick advances the simulation by dt seconds. Nothing moves once the run is over.
func (s *Session) Tick(dt float64) {
	if s.gameOver || dt <= 0 {
		return
	}

	s.player.Update(dt)
	s.movePlayer(dt)
	s.moveBullets(dt)
	s.moveEnemies(dt)
	s.resolveHits()

	s.bullets = compact(s.bullets)
	s.enemies = compact(s.enemies)

	if s.enemyTimer.Advance(dt) {
		s.enemies = append(s.enemies, s.spawner.SpawnEnemy())
	}
	if s.cfg.Powerup.Enabled {
		s.tickPowerups(dt)
	}

	s.elapsed += dt
}

// movePlayer integrates the ship and keeps it fully inside the arena horizontally.
func (s *Session) movePlayer(dt float64) {
	p := &s.player
	p.Integrate(dt)
	p.Pos.X = core.ClampF(p.Pos.X, p.Half.X, s.cfg.Arena.Width-p.Half.X)
}

func (s *Session) moveBullets(dt float64) {
	for i := range s.bullets {
		b := &s.bullets[i]
		b.Integrate(dt)
		if b.Pos.Y < s.cfg.Bullet.DespawnY {
			b.Alive = false
		}
	}
	s.bullets = compact(s.bullets)
}

// moveEnemies integrates enemies and resolves their two ways of hurting the
// player: escaping past the bottom edge, or touching the ship.
func (s *Session) moveEnemies(dt float64) {
	exitY := s.cfg.Arena.Height + s.cfg.Enemy.ExitMargin
	for i := range s.enemies {
		e := &s.enemies[i]
		e.Integrate(dt)

		switch {
		case e.Pos.Y > exitY:
			e.Alive = false
			s.damagePlayer()
		case !s.player.IsInvincible() && s.player.Overlaps(*e):
			e.Alive = false
			s.damagePlayer()
		}
	}
}

func (s *Session) damagePlayer() {
	if !s.player.TakeDamage() {
		return
	}
	s.emit(core.EventPlayerHit)
	if s.player.Lives == 0 && !s.gameOver {
		s.gameOver = true
		s.emit(core.EventGameOver)
	}
}

// resolveHits pairs bullets with enemies. Each bullet destroys at most the
// first live enemy it overlaps, scanning enemies in order.
func (s *Session) resolveHits() {
	for bi := range s.bullets {
		b := &s.bullets[bi]
		if !b.Alive {
			continue
		}
		for ei := range s.enemies {
			e := &s.enemies[ei]
			if !e.Alive || !b.Overlaps(*e) {
				continue
			}
			b.Alive = false
			e.Alive = false
			s.score += s.cfg.Enemy.Reward
			s.kills++
			s.emit(core.EventEnemyKilled)
			break
		}
	}
}

// tickPowerups moves and spawns powerups. They have no effect on the player.
func (s *Session) tickPowerups(dt float64) {
	exitY := s.cfg.Arena.Height + s.cfg.Enemy.ExitMargin
	for i := range s.powerups {
		p := &s.powerups[i]
		p.Integrate(dt)
		if p.Pos.Y > exitY {
			p.Alive = false
		}
	}
	s.powerups = compact(s.powerups)

	if s.powerupTimer.Advance(dt) {
		s.powerups = append(s.powerups, s.spawner.SpawnPowerup())
	}
}

// OnKeyDown handles a key press. While the run is over only restart is accepted.
func (s *Session) OnKeyDown(a core.Action) {
	if s.gameOver {
		if a == core.ActionRestart {
			s.OnRestart()
		}
		return
	}

	switch a {
	case core.ActionLeft:
		s.player.Vel.X = -s.cfg.Player.Speed
	case core.ActionRight:
		s.player.Vel.X = s.cfg.Player.Speed
	case core.ActionFire:
		s.fire()
	}
}

// OnKeyUp handles a key release. Releasing either direction stops the ship,
// even if the opposite direction is still held.
func (s *Session) OnKeyUp(a core.Action) {
	if s.gameOver {
		return
	}
	if a == core.ActionLeft || a == core.ActionRight {
		s.player.Vel.X = 0
	}
}

// fire launches one bullet from the ship's muzzle. There is no cooldown.
func (s *Session) fire() {
	bc := s.cfg.Bullet
	pos := s.player.Pos.Sub(core.V(0, bc.MuzzleOffset))
	s.bullets = append(s.bullets, NewEntity(pos, core.V(0, -bc.Speed), bc.Width, bc.Height))
	s.emit(core.EventFired)
}

// OnRestart replaces the whole run with a fresh one using the same config.
func (s *Session) OnRestart() {
	*s = *newSession(s.cfg, s.rng)
	s.emit(core.EventRestarted)
}

func (s *Session) emit(t core.EventType) {
	s.events = append(s.events, core.Event{Type: t})
}

// DrainEvents returns the events recorded since the last call and clears them.
func (s *Session) DrainEvents() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// Score returns the current score.
func (s *Session) Score() uint32 { return s.score }

// Lives returns the player's remaining lives.
func (s *Session) Lives() uint32 { return s.player.Lives }

// Kills returns the number of enemies destroyed this run.
func (s *Session) Kills() uint32 { return s.kills }

// GameOver reports whether the run has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Elapsed returns the simulated seconds played this run.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.ShooterConfig { return s.cfg }
