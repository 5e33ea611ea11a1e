package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update[M tea.Model](t *testing.T, m M, msg tea.Msg) (M, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(M)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out, cmd
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(nil, "shooter", "Space Shooter", testRuntime)

	m, _ = update(t, m, downKey)
	m, cmd := update(t, m, enterKey)
	if m.Selected() != MenuChoiceScores {
		t.Errorf("Selected = %v, expected High Scores", m.Selected())
	}
	if cmd == nil {
		t.Error("standalone menu should quit its program on select")
	}

	embedded := NewMenuModel(nil, "shooter", "Space Shooter", testRuntime)
	embedded.embedded = true
	embedded, cmd = update(t, embedded, enterKey)
	if embedded.Selected() != MenuChoicePlay || cmd != nil {
		t.Errorf("embedded select = %v, cmd %v", embedded.Selected(), cmd)
	}
}

func TestMenuQuitEntry(t *testing.T) {
	m := NewMenuModel(nil, "shooter", "Space Shooter", testRuntime)
	for range 5 {
		m, _ = update(t, m, downKey)
	}
	m, _ = update(t, m, enterKey)
	if !m.IsQuitting() {
		t.Error("selecting Quit should quit")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openStore(t)
	store.SaveScore("shooter", 120)

	m := NewMenuModel(store, "shooter", "Space Shooter", testRuntime)
	view := m.View()
	for _, want := range []string{"S P A C E", "High score: 120", "Play", "High Scores", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardViews(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{GameID: "shooter", Player: "alice", Score: 300, Kills: 30, Duration: 75 * time.Second})
	store.SaveRun(storage.Run{GameID: "shooter", Player: "bob", Score: 100, Kills: 10, Duration: 20 * time.Second})

	m := NewScoreboardModel(store, "shooter", "Space Shooter", 100, 30)
	if len(m.runs) != 2 || m.runs[0].Player != "alice" {
		t.Fatalf("top view runs = %+v", m.runs)
	}
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Space Shooter") || !strings.Contains(view, "Runs: 2") {
		t.Errorf("top view:\n%s", view)
	}
	if !strings.Contains(view, "1:15") {
		t.Errorf("run time should be shown as m:ss:\n%s", view)
	}

	m, _ = update(t, m, tabKey)
	if m.view != ScoreViewRecent || m.runs[0].Player != "bob" {
		t.Errorf("recent view runs = %+v", m.runs)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("recent heading missing")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "shooter", "Space Shooter", 80, 24)
	view := m.View()
	if !strings.Contains(view, "not being recorded") || !strings.Contains(view, "No scores recorded yet") {
		t.Errorf("view:\n%s", view)
	}

	m, cmd := update(t, m, escKey)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("standalone scoreboard should quit its program on back")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		0:                             "0:00",
		9 * time.Second:               "0:09",
		75 * time.Second:              "1:15",
		61*time.Minute + 2*time.Second: "61:02",
	}
	for d, want := range tests {
		if got := formatDuration(d); got != want {
			t.Errorf("formatDuration(%v) = %q, expected %q", d, got, want)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	m, err := NewSessionModel("shooter", openStore(t), testRuntime, "carol", nil)
	if err != nil {
		t.Fatalf("NewSessionModel: %v", err)
	}

	m, cmd := update(t, m, enterKey)
	if m.screen != screenGame || cmd == nil {
		t.Fatalf("Play should start the game loop, screen %v", m.screen)
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view expected")
	}

	m, _ = update(t, m, escKey)
	if m.screen != screenMenu {
		t.Fatalf("esc should return to the menu, screen %v", m.screen)
	}

	m, _ = update(t, m, downKey)
	m, _ = update(t, m, enterKey)
	if m.screen != screenScores {
		t.Fatalf("High Scores should open the scoreboard, screen %v", m.screen)
	}

	m, _ = update(t, m, escKey)
	if m.screen != screenMenu {
		t.Fatalf("back should return to the menu, screen %v", m.screen)
	}

	m, cmd = update(t, m, runeKey("q"))
	if !m.quitting || cmd == nil || m.View() != "" {
		t.Error("q should end the session")
	}
}

func TestSessionUnknownGame(t *testing.T) {
	if _, err := NewSessionModel("nope", nil, testRuntime, "dave", nil); err == nil {
		t.Error("unknown game should be rejected")
	}
}
