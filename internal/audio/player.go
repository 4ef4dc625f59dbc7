// Package audio plays the simulation's sound cues through the system speaker.
// Every cue is synthesized; there are no audio assets.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-defender/internal/core"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player mixes sound cues onto the speaker. It implements core.SoundSink.
// Until Initialize succeeds every Play is dropped.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      float64
	initialized bool
	played      int
}

// NewPlayer creates a player. master scales every cue volume.
func NewPlayer(master float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		master: master,
	}
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue. It never blocks on audio output.
func (p *Player) Play(ev core.SoundEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := Effect(ev.Sound, ev.Volume*p.master, sampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
	p.played++
}

// Played returns the number of cues queued since Initialize.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Cleanup silences everything still playing.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

var _ core.SoundSink = (*Player)(nil)
