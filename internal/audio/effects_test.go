package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// drain streams s to the end and returns the number of samples and the
// largest absolute value seen.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			v := buf[j][0]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("sample %d is not finite: %f", total+j, v)
			}
			peak = math.Max(peak, math.Abs(v))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream did not end")
	return 0, 0
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, n, rate.N(100*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("sample %d = %f, want +-1", i, v)
		}
	}
}

func TestEnvelopeFadesInAndOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("streamed %d samples, want 1000", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", samples[500][0])
	}
	if samples[999][0] > 0.02 {
		t.Errorf("last sample = %f, want close to 0", samples[999][0])
	}
}

func TestEffectForEverySound(t *testing.T) {
	sounds := []core.Sound{
		core.SoundLaser, core.SoundOrb, core.SoundExplosion, core.SoundCapture,
		core.SoundRescue, core.SoundWaveBegin, core.SoundGameOver,
	}
	for _, s := range sounds {
		st := Effect(s, 0.3, sampleRate)
		if st == nil {
			t.Errorf("Effect(%s) = nil", s)
			continue
		}
		n, peak := drain(t, st)
		if n == 0 {
			t.Errorf("Effect(%s) is empty", s)
		}
		if peak == 0 {
			t.Errorf("Effect(%s) is silent", s)
		}
	}
	if Effect(core.Sound(200), 1, sampleRate) != nil {
		t.Error("unknown sound should have no effect")
	}
}

func TestEffectZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, Effect(core.SoundLaser, 0, sampleRate))
	if peak != 0 {
		t.Errorf("peak = %f, want 0", peak)
	}
}

func TestPlayerDropsCuesBeforeInitialize(t *testing.T) {
	p := NewPlayer(1)
	p.Play(core.SoundEvent{Sound: core.SoundLaser, Volume: 0.2})
	p.Cleanup()
	if p.Played() != 0 {
		t.Errorf("Played() = %d, want 0", p.Played())
	}
}
