package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the simulated duration of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Lives    int     // Remaining lives
	Kills    int     // Enemies destroyed this run
	GameOver bool    // Whether the game has ended
	Paused   bool    // Whether the game is paused
	Elapsed  float64 // Simulated seconds of play this run
}

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventFired       EventType = iota // A projectile was launched
	EventEnemyKilled                  // A projectile destroyed an enemy
	EventPlayerHit                    // The player lost a life
	EventGameOver                     // The run ended
	EventRestarted                    // A fresh run started
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventFired:
		return "fired"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is emitted by a game for the platform (sound, logging).
type Event struct {
	Type EventType
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type occurred during the step.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
