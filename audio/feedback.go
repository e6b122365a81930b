package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/planar/engine"
	"github.com/lixenwraith/planar/events"
)

const sampleRate = beep.SampleRate(44100)

// Feedback plays short tones for editor and collision events.
// Initialization failure puts it in silent mode rather than
// failing the whole program
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewFeedback creates an uninitialized feedback player
func NewFeedback() *Feedback {
	return &Feedback{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer.
// Returns the speaker error so the caller can log it; the
// feedback stays usable (silently) either way
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	if err != nil {
		return err
	}

	speaker.Play(f.mixer)
	f.initialized = true
	return nil
}

// Cleanup silences everything
func (f *Feedback) Cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}
	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()
	f.initialized = false
}

// SetMuted toggles playback without tearing down the speaker
func (f *Feedback) SetMuted(muted bool) {
	f.mu.Lock()
	f.muted = muted
	f.mu.Unlock()
}

// HandleEvent maps event types to tones
func (f *Feedback) HandleEvent(_ *engine.World, ev events.Event) {
	switch ev.Type {
	case events.CollisionStarted:
		f.play(220, 60*time.Millisecond)
	case events.TriggerEnter:
		f.play(440, 40*time.Millisecond)
	case events.ShapeCommitted:
		f.play(660, 30*time.Millisecond)
	case events.ShapeDeleted:
		f.play(165, 50*time.Millisecond)
	}
}

// EventTypes declares the events that produce a tone
func (f *Feedback) EventTypes() []events.Type {
	return []events.Type{
		events.CollisionStarted,
		events.TriggerEnter,
		events.ShapeCommitted,
		events.ShapeDeleted,
	}
}

func (f *Feedback) play(freq float64, duration time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || f.muted {
		return
	}

	streamer := newTone(freq, duration)
	speaker.Lock()
	f.mixer.Add(streamer)
	speaker.Unlock()
}

// tone is a sine burst with a linear release envelope
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func newTone(freq float64, duration time.Duration) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: sampleRate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * t.phase)

		// Fade out over the last quarter to avoid clicks
		release := t.duration / 4
		if remaining := t.duration - t.position; remaining < release {
			val *= float64(remaining) / float64(release)
		}

		samples[i][0] = val * 0.3
		samples[i][1] = val * 0.3

		t.phase += t.freq / float64(sampleRate)
		t.phase = t.phase - math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
