// Package shooter implements a vertical arcade shooter: the ship moves along
// the bottom of an 800x600 arena, fires upward and must destroy or dodge the
// enemies descending from the top.
//
// Session is the simulation and knows nothing about terminals. Game adapts a
// Session to the registry.Game interface used by the platform.
package shooter

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Visual characters for rendering
const (
	ShipChar    = '▲'
	BulletChar  = '|'
	EnemyChar   = '▼'
	PowerupChar = '◆'
	LifeChar    = '♥'
	BorderHoriz = '─'
)

// Layout constants
const (
	hudRows    = 2  // Score line plus separator
	minScreenW = 30 // Smallest terminal that still shows the whole arena
	minScreenH = 12
	blinkTicks = 6 // Ship visibility toggles this often while invincible
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the platform's fixed-tick game loop.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ShooterConfig
	fixed   bool // cfg was supplied by the caller and is not reloaded
	session *Session
	paused  bool
	ticks   uint64
	cfgErr  error // why the last Reset fell back to the default config
}

// New creates a shooter that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a shooter that always runs with cfg.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset starts a new run. A config that cannot be loaded or used is
// replaced by the defaults, and the reason is kept for ConfigErr.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfgErr = nil

	if !g.fixed {
		cfg, err := config.LoadShooter(configPath)
		if err != nil {
			g.cfgErr = err
			cfg = config.DefaultShooterConfig()
		}
		config.ApplyShooterPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	session, err := NewSession(g.cfg, rng)
	if err != nil {
		g.cfgErr = err
		g.cfg = config.DefaultShooterConfig()
		session = newSession(g.cfg, rng)
	}

	g.session = session
	g.paused = false
	g.ticks = 0
}

// ConfigErr reports why the last Reset ran with the default config
// instead of the loaded one. It is nil when the config was used as given.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Session returns the running simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Step feeds the frame's key edges to the session in arrival order, then
// advances the simulation by one tick unless paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, ev := range in.Events {
		if ev.Released {
			g.session.OnKeyUp(ev.Action)
			continue
		}
		if ev.Action == core.ActionPause {
			if !g.session.GameOver() {
				g.paused = !g.paused
			}
			continue
		}
		if g.paused {
			continue
		}
		g.session.OnKeyDown(ev.Action)
	}

	if !g.paused {
		g.session.Tick(g.runtime.TickSeconds())
		g.ticks++
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.session.DrainEvents(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    int(s.Score()),
		Lives:    int(s.Lives()),
		Kills:    int(s.Kills()),
		GameOver: s.GameOver(),
		Paused:   g.paused,
		Elapsed:  s.Elapsed(),
	}
}

// Render draws the arena scaled to the screen, below a two-row HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)

	view := newViewport(snap.Arena, dst.Width(), dst.Height()-hudRows, hudRows)
	for _, b := range snap.Powerups {
		view.fill(dst, b, PowerupChar, core.ColorGreen)
	}
	for _, b := range snap.Enemies {
		view.fill(dst, b, EnemyChar, core.ColorRed)
	}
	for _, b := range snap.Bullets {
		view.fill(dst, b, BulletChar, core.ColorYellow)
	}
	if !snap.Invincible || (g.ticks/blinkTicks)%2 == 0 {
		view.fill(dst, snap.Player, ShipChar, core.ColorWhite)
	}

	switch {
	case snap.GameOver:
		drawOverlay(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d | Kills: %d", snap.Score, snap.Kills),
			"Press R to restart")
	case g.paused:
		drawOverlay(dst, core.ColorBrightYellow,
			"PAUSED",
			"Press P to resume")
	}
}

// renderHUD draws score, lives and kills with a separator underneath.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightCyan)

	lives := "Lives: " + strings.Repeat(string(LifeChar), int(snap.Lives))
	x := (dst.Width() - len([]rune(lives))) / 2
	dst.DrawTextColored(x, 0, lives, core.ColorBrightRed)

	kills := fmt.Sprintf("Kills: %d", snap.Kills)
	dst.DrawTextColored(dst.Width()-len(kills)-1, 0, kills, core.ColorGray)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// viewport maps arena coordinates onto a block of screen cells.
type viewport struct {
	sx, sy  float64
	offsetY int
	w, h    int
}

func newViewport(arena core.RectF, w, h, offsetY int) viewport {
	return viewport{
		sx:      float64(w) / arena.W,
		sy:      float64(h) / arena.H,
		offsetY: offsetY,
		w:       w,
		h:       h,
	}
}

// cells returns the cell span covered by r, at least one cell wide and tall.
// The end coordinates are inclusive.
func (v viewport) cells(r core.RectF) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * v.sx))
	y0 = int(math.Floor(r.Y * v.sy))
	x1 = max(x0, int(math.Ceil(r.Right()*v.sx))-1)
	y1 = max(y0, int(math.Ceil(r.Bottom()*v.sy))-1)
	return x0, y0, x1, y1
}

// fill paints the cells covered by r, clipped to the playfield.
func (v viewport) fill(dst *core.Screen, r core.RectF, ch rune, c core.Color) {
	x0, y0, x1, y1 := v.cells(r)
	for y := max(y0, 0); y <= min(y1, v.h-1); y++ {
		for x := max(x0, 0); x <= min(x1, v.w-1); x++ {
			dst.SetCell(x, y+v.offsetY, ch, c)
		}
	}
}

// drawOverlay draws a centered framed message box over the playfield.
func drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}
