// Package audio plays synthesized sound effects for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// SampleRate is the output rate for every effect.
const SampleRate = beep.SampleRate(44100)

// Player plays the sound for game events.
type Player interface {
	Play(events []core.Event)
	Close()
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Play([]core.Event) {}
func (Silent) Close()            {}

// speakerOnce guards speaker.Init, which may only run once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// Speaker mixes effects into the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker opens the audio device and starts an empty mixer on it.
func NewSpeaker() (*Speaker, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", speakerErr)
	}

	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the sound of every event that has one.
func (s *Speaker) Play(events []core.Event) {
	if len(events) == 0 {
		return
	}

	var streams []beep.Streamer
	for _, ev := range events {
		if st := ForEvent(ev.Type, SampleRate); st != nil {
			streams = append(streams, st)
		}
	}
	if len(streams) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(streams...)
	speaker.Unlock()
}

// Close silences the mixer. The device stays open for later speakers.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Open returns a Speaker when enabled, falling back to Silent if the
// device cannot be opened. The error reports why sound is off.
func Open(enabled bool) (Player, error) {
	if !enabled {
		return Silent{}, nil
	}
	sp, err := NewSpeaker()
	if err != nil {
		return Silent{}, err
	}
	return sp, nil
}
