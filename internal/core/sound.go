package core

// Sound identifies a sound cue requested by the simulation.
type Sound uint8

const (
	SoundLaser Sound = iota
	SoundOrb
	SoundExplosion
	SoundCapture
	SoundRescue
	SoundWaveBegin
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundOrb:
		return "orb"
	case SoundExplosion:
		return "explosion"
	case SoundCapture:
		return "capture"
	case SoundRescue:
		return "rescue"
	case SoundWaveBegin:
		return "wave"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SoundEvent asks the platform to play a sound at a volume in [0, 1].
type SoundEvent struct {
	Sound  Sound
	Volume float64
}

// SoundSink plays sound events. Implementations must not block the caller.
type SoundSink interface {
	Play(ev SoundEvent)
}

// SilentSink discards every sound.
type SilentSink struct{}

// Play implements SoundSink.
func (SilentSink) Play(SoundEvent) {}
