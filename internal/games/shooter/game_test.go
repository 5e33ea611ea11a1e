package shooter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

func newTestGame(t *testing.T, cfg config.ShooterConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 1})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

func TestShooterRegistered(t *testing.T) {
	if !registry.Exists("shooter") {
		t.Fatal("shooter should register itself")
	}
	g, err := registry.Create("shooter")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "shooter" || g.Title() != "Space Shooter" {
		t.Errorf("ID %q Title %q", g.ID(), g.Title())
	}
}

func TestStepUsesTickRate(t *testing.T) {
	g := newTestGame(t, quietConfig())

	res := g.Step(press(core.ActionFire))
	if !res.Has(core.EventFired) {
		t.Error("fire press should surface EventFired")
	}
	b := g.Session().bullets[0]
	if !near(b.Pos.Y, 530-400.0/20) {
		t.Errorf("bullet y = %v after one 1/20s tick", b.Pos.Y)
	}
	if !near(res.State.Elapsed, 0.05) {
		t.Errorf("elapsed = %v, expected 0.05", res.State.Elapsed)
	}
}

func TestStepAppliesEdgesInOrder(t *testing.T) {
	g := newTestGame(t, quietConfig())

	f := core.NewInputFrame()
	f.Press(core.ActionRight)
	f.Release(core.ActionRight)
	g.Step(f)
	if g.Session().player.Vel.X != 0 {
		t.Error("press then release should leave the ship stopped")
	}

	f.Clear()
	f.Release(core.ActionLeft)
	f.Press(core.ActionLeft)
	g.Step(f)
	if g.Session().player.Vel.X != -300 {
		t.Errorf("release then press should leave the ship moving, vel %v", g.Session().player.Vel.X)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, quietConfig())

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause press should pause")
	}
	elapsed := res.State.Elapsed

	res = g.Step(press(core.ActionFire))
	if res.State.Elapsed != elapsed || len(g.Session().bullets) != 0 {
		t.Error("paused game should not simulate or accept fire")
	}

	res = g.Step(press(core.ActionPause))
	if res.State.Paused || res.State.Elapsed <= elapsed {
		t.Error("second pause press should resume")
	}
}

func TestRestartThroughStep(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Lives = 1
	g := newTestGame(t, cfg)
	addEnemy(g.Session(), 400, 550)

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || !res.Has(core.EventGameOver) {
		t.Fatalf("expected game over, state %+v", res.State)
	}

	res = g.Step(press(core.ActionPause))
	if res.State.Paused {
		t.Error("pause should be ignored once the run is over")
	}

	res = g.Step(press(core.ActionRestart))
	if res.State.GameOver || res.State.Lives != 1 || !res.Has(core.EventRestarted) {
		t.Errorf("restart failed: %+v", res.State)
	}
}

func TestRenderPlayfield(t *testing.T) {
	g := newTestGame(t, quietConfig())
	addEnemy(g.Session(), 100, 100)
	g.Step(press(core.ActionFire))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "Kills: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "♥♥♥") {
		t.Errorf("HUD should show three lives: %q", screen.Row(0))
	}
	for _, glyph := range []string{"▲", "▼", "|"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("screen missing %q:\n%s", glyph, out)
		}
	}

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == ShipChar {
				found = true
				if c.Color != core.ColorWhite {
					t.Errorf("ship color = %v", c.Color)
				}
				if y < screen.Height()/2 {
					t.Errorf("ship drawn in the upper half at row %d", y)
				}
			}
		}
	}
	if !found {
		t.Error("ship not drawn")
	}
}

func TestRenderGameOverAndPause(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Lives = 1
	g := newTestGame(t, cfg)

	screen := core.NewScreen(80, 24)
	g.Step(press(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.Step(press(core.ActionPause))
	addEnemy(g.Session(), 400, 550)
	g.Step(core.NewInputFrame())
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Press R to restart") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestRenderWindowTooSmall(t *testing.T) {
	g := newTestGame(t, quietConfig())
	screen := core.NewScreen(20, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestResetFallsBackOnInvalidConfig(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Player.Lives = 0
	g := newTestGame(t, cfg)

	if g.State().Lives != 3 {
		t.Errorf("invalid config should fall back to defaults, lives %d", g.State().Lives)
	}
	if err := g.ConfigErr(); err == nil || !strings.Contains(err.Error(), "lives") {
		t.Errorf("ConfigErr = %v, expected the validation error", err)
	}
}

func TestResetReportsUnreadableConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	defer SetConfigPath("")

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	g := New()
	g.Reset(core.DefaultConfig())
	if g.ConfigErr() == nil {
		t.Fatal("missing config file should be reported")
	}
	if g.State().Lives != 3 {
		t.Errorf("fallback lives = %d, expected defaults", g.State().Lives)
	}

	SetConfigPath("")
	g.Reset(core.DefaultConfig())
	if err := g.ConfigErr(); err != nil {
		t.Errorf("ConfigErr should clear on a clean reset, got %v", err)
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	defer SetDifficultyPreset("")

	SetDifficultyPreset("hard")
	g := New()
	g.Reset(core.DefaultConfig())
	if g.State().Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", g.State().Lives)
	}

	SetDifficultyPreset("bogus")
	g.Reset(core.DefaultConfig())
	if g.State().Lives != 3 {
		t.Errorf("unknown preset should leave defaults, lives %d", g.State().Lives)
	}
}
