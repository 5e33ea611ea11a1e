package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Laser is a short falling zap played when a bullet is fired.
func Laser(rate beep.SampleRate) beep.Streamer {
	zap := NewSweep(1400, 350, 110*time.Millisecond, WaveSquare, rate)
	return withVolume(NewDecay(zap, 12, rate), 0.15)
}

// Explosion is a noise burst played when an enemy is destroyed.
func Explosion(rate beep.SampleRate) beep.Streamer {
	noise := NewTone(0, 280*time.Millisecond, WaveNoise, rate)
	rumble := NewSweep(120, 40, 280*time.Millisecond, WaveSine, rate)
	mixed := beep.Mix(withVolume(noise, 0.6), withVolume(rumble, 0.4))
	return withVolume(NewDecay(mixed, 9, rate), 0.35)
}

// Hit is a low buzz played when the player loses a life.
func Hit(rate beep.SampleRate) beep.Streamer {
	buzz := NewTone(110, 220*time.Millisecond, WaveSaw, rate)
	return withVolume(NewDecay(buzz, 5, rate), 0.3)
}

// GameOver is three falling notes.
func GameOver(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return NewDecay(NewTone(freq, 220*time.Millisecond, WaveSquare, rate), 4, rate)
	}
	return withVolume(beep.Seq(note(392), note(330), note(262)), 0.2)
}

// Start is two rising notes played when a new run begins.
func Start(rate beep.SampleRate) beep.Streamer {
	return withVolume(beep.Seq(
		NewTone(523, 90*time.Millisecond, WaveSquare, rate),
		NewTone(784, 120*time.Millisecond, WaveSquare, rate),
	), 0.15)
}

// ForEvent returns the sound for a game event, or nil if it has none.
func ForEvent(t core.EventType, rate beep.SampleRate) beep.Streamer {
	switch t {
	case core.EventFired:
		return Laser(rate)
	case core.EventEnemyKilled:
		return Explosion(rate)
	case core.EventPlayerHit:
		return Hit(rate)
	case core.EventGameOver:
		return GameOver(rate)
	case core.EventRestarted:
		return Start(rate)
	default:
		return nil
	}
}
