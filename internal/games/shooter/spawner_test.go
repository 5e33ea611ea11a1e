package shooter

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func TestSpawnEnemyPlacement(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	sp := NewSpawner(cfg, rand.New(rand.NewSource(3)))

	for i := 0; i < 500; i++ {
		e := sp.SpawnEnemy()
		if e.Pos.X < 20 || e.Pos.X > 780 {
			t.Fatalf("x = %v outside [20, 780]", e.Pos.X)
		}
		if e.Pos.Y != -20 {
			t.Fatalf("y = %v, expected -20", e.Pos.Y)
		}
		if e.Vel.X != 0 || e.Vel.Y != 100 {
			t.Fatalf("vel = %+v, expected (0, 100)", e.Vel)
		}
		if e.Half.X != 15 || e.Half.Y != 15 || !e.Alive {
			t.Fatalf("enemy = %+v, expected live 30x30", e)
		}
	}
}

func TestSpawnerDeterministicWithSeed(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	a := NewSpawner(cfg, rand.New(rand.NewSource(42)))
	b := NewSpawner(cfg, rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		if a.SpawnEnemy().Pos != b.SpawnEnemy().Pos {
			t.Fatalf("spawn %d differs with the same seed", i)
		}
	}
}

func TestSpawnPowerup(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	sp := NewSpawner(cfg, rand.New(rand.NewSource(5)))

	p := sp.SpawnPowerup()
	if p.Vel.Y != cfg.Powerup.Speed || p.Half.X != cfg.Powerup.Width/2 {
		t.Errorf("powerup = %+v", p)
	}
}

func TestCadenceFixedRate(t *testing.T) {
	c := Cadence{Interval: 1.0}

	if c.Advance(0.5) {
		t.Error("should not fire at 0.5s")
	}
	if !c.Advance(0.5) {
		t.Error("should fire when reaching the interval")
	}
	if c.Elapsed != 0 {
		t.Errorf("elapsed = %v, expected reset to 0", c.Elapsed)
	}
	if c.Advance(0.75) {
		t.Error("should not fire before a full interval passes again")
	}
}

func TestSessionSpawnsEnemyEveryInterval(t *testing.T) {
	s := newTestSession(t, config.DefaultShooterConfig())

	for i := 0; i < 3; i++ {
		s.Tick(0.25)
	}
	if len(s.enemies) != 0 {
		t.Fatalf("enemies = %d before the first interval", len(s.enemies))
	}
	s.Tick(0.25)
	if len(s.enemies) != 1 {
		t.Fatalf("enemies = %d after 1s, expected 1", len(s.enemies))
	}
	for i := 0; i < 4; i++ {
		s.Tick(0.25)
	}
	if len(s.enemies) != 2 {
		t.Errorf("enemies = %d after 2s, expected 2", len(s.enemies))
	}
}
