package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// helpRows is the height reserved below the playfield for key help.
const helpRows = 1

// configReporter is implemented by games that can fall back to a default config.
type configReporter interface {
	ConfigErr() error
}

// Options carries the optional collaborators of a game Model.
type Options struct {
	Store    *storage.Store // nil disables run recording
	Logger   *log.Logger    // nil discards log output
	Sound    audio.Player   // nil plays nothing
	Player   string         // name recorded with finished runs
	Embedded bool           // Back returns to the caller instead of quitting
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	sound      audio.Player
	keys       GameKeyMap
	help       help.Model
	holds      *HoldTracker
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	player     string
	embedded   bool
	runSaved   bool // Whether the current run has been recorded
	quitting   bool
	backToMenu bool
}

// NewModel creates a Bubble Tea model for the given game and starts a run.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var sound audio.Player = audio.Silent{}
	if opts.Sound != nil {
		sound = opts.Sound
	}

	game.Reset(cfg)
	if r, ok := game.(configReporter); ok {
		if err := r.ConfigErr(); err != nil {
			logger.Warn("using default game config", "game", game.ID(), "err", err)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger.With("game", game.ID()),
		sound:      sound,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		holds:      NewHoldTracker(DefaultHoldTimeout),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		player:     opts.Player,
		embedded:   opts.Embedded,
	}
}

func playfieldHeight(h int) int {
	return max(h-helpRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys feed the hold tracker
// so that their releases can be synthesized later.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		// A repeat of a held key is not a new edge.
		if !m.holds.Held(action) {
			m.inputFrame.Press(action)
			m.holds.Forget(opposite(action))
		}
		// Presses are dropped while paused, so they must not count as held.
		if !m.gameState.Paused {
			m.holds.Press(action, now)
		}
	case core.ActionPause:
		// Held keys are released before pausing, and must be pressed anew after.
		for _, a := range m.holds.ReleaseAll() {
			m.inputFrame.Release(a)
		}
		m.inputFrame.Press(action)
	default:
		m.inputFrame.Press(action)
	}

	return m, nil
}

// opposite returns the other movement direction.
func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

// handleResize follows the terminal size. The arena keeps its own
// coordinates, so the run continues at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	for _, a := range m.holds.Expire(now) {
		m.inputFrame.Release(a)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.sound.Play(result.Events)
	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) handleEvent(ev core.Event) {
	switch ev.Type {
	case core.EventGameOver:
		m.logger.Info("run over", "score", m.gameState.Score, "kills", m.gameState.Kills,
			"elapsed", m.runDuration())
		m.holds.Reset()
		m.saveRun()
	case core.EventRestarted:
		m.logger.Info("run restarted")
		m.runSaved = false
	case core.EventPlayerHit:
		m.logger.Debug("player hit", "lives", m.gameState.Lives)
	case core.EventEnemyKilled:
		m.logger.Debug("enemy killed", "score", m.gameState.Score)
	}
}

func (m Model) runDuration() time.Duration {
	return time.Duration(m.gameState.Elapsed * float64(time.Second)).Round(time.Millisecond)
}

// saveRun records the finished run once. Empty runs are not recorded.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	m.runSaved = true

	run, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    m.gameState.Score,
		Kills:    m.gameState.Kills,
		Duration: m.runDuration(),
	})
	if err != nil {
		m.logger.Error("cannot save run", "err", err)
		return
	}
	m.logger.Debug("run saved", "run_id", run.RunID)
}

// saveScreenshot writes the current playfield to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return err
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// State returns the game state observed at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to leave the game screen.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// View renders the playfield followed by the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
